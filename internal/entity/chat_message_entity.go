package entity

import (
	"time"
)

// ChatMessage references its owning session by id only. The session side
// holds no message list; "messages of a session" is always a query.
type ChatMessage struct {
	Id        uint
	SessionId uint
	Sender    string
	Content   string
	Context   string
	CreatedAt time.Time
}
