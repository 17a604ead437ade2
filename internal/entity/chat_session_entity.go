package entity

import (
	"time"
)

type ChatSession struct {
	Id         uint
	UserId     string
	Name       string
	IsFavorite bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}
