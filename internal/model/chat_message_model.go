package model

import (
	"time"
)

type ChatMessage struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	SessionId uint      `gorm:"not null;index"`
	Sender    string    `gorm:"type:varchar(100);not null"`
	Content   string    `gorm:"type:text;not null"`
	Context   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
