package model

import (
	"time"

	"gorm.io/gorm"
)

type ChatSession struct {
	Id         uint           `gorm:"primaryKey;autoIncrement"`
	UserId     string         `gorm:"type:varchar(255);not null;index"` // User ownership for data isolation
	Name       string         `gorm:"type:text;not null"`
	IsFavorite bool           `gorm:"not null;default:false"`
	CreatedAt  time.Time      `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
