package models

import "time"

// SessionInfo summarizes one active conversation.
// CreatedAt is approximated by the first recorded activity; the store keeps
// no separate creation record.
type SessionInfo struct {
	SessionID    string    `json:"session_id"`
	UserID       string    `json:"user_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
	MessageCount int64     `json:"message_count"`
}
