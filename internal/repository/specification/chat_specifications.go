package specification

import (
	"gorm.io/gorm"
)

// ByUserID scopes sessions to their owning user.
type ByUserID struct {
	UserID string
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// FavoriteOnly restricts sessions to those flagged as favorite.
type FavoriteOnly struct{}

func (s FavoriteOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_favorite = ?", true)
}

// BySessionID filters messages by their owning session.
type BySessionID struct {
	SessionID uint
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// SessionAlive joins the owning session row and keeps only messages whose
// session has not been soft-deleted. The session is verified live before any
// message query runs; this guards the window where a concurrent delete
// commits in between.
type SessionAlive struct{}

func (s SessionAlive) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Joins("JOIN chat_sessions ON chat_sessions.id = chat_messages.session_id").
		Where("chat_sessions.deleted_at IS NULL")
}
