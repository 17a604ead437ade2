package dto

import (
	"time"
)

// JSON field names follow the external contract (camelCase), not the
// internal column names.

type CreateSessionRequest struct {
	UserId string `json:"userId" validate:"required"`
	Name   string `json:"name" validate:"required"`
}

type SessionResponse struct {
	Id         uint      `json:"id"`
	UserId     string    `json:"userId"`
	Name       string    `json:"name"`
	IsFavorite bool      `json:"isFavorite"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type AddMessageRequest struct {
	Sender  string `json:"sender" validate:"required"`
	Content string `json:"content" validate:"required"`
	Context string `json:"context"`
}

type MessageResponse struct {
	Id        uint      `json:"id"`
	SessionId uint      `json:"sessionId"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Context   string    `json:"context,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Page mirrors the envelope the original API exposed for paginated listings.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}
