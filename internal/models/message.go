package models

import "time"

// Message senders.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// ChatMessage represents one turn of a conversation stored in Redis.
// Messages are append-only and never edited after creation.
type ChatMessage struct {
	Content   string    `json:"content"`
	Sender    string    `json:"sender"` // "user" or "assistant"
	Timestamp time.Time `json:"timestamp"`
}

// NewUserMessage creates a user turn stamped with the current time.
func NewUserMessage(content string) ChatMessage {
	return ChatMessage{Content: content, Sender: SenderUser, Timestamp: time.Now().UTC()}
}

// NewAssistantMessage creates an assistant turn stamped with the current time.
func NewAssistantMessage(content string) ChatMessage {
	return ChatMessage{Content: content, Sender: SenderAssistant, Timestamp: time.Now().UTC()}
}
