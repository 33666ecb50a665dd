package store

import (
	"context"
	"errors"
	"time"

	"github.com/sindico-pro/sindicopro-sub/internal/models"
)

// ErrUnavailable signals that the backing store cannot be reached. Callers
// surface it as a service error; appends are not retried because a retry
// risks duplicating a message.
var ErrUnavailable = errors.New("session store unavailable")

// Stats aggregates session counts for operational reporting.
type Stats struct {
	TotalSessions int64 `json:"total_sessions"`
	TotalMessages int64 `json:"total_messages"`
}

// Health reports backend reachability and, when obtainable, the backend's
// own diagnostics.
type Health struct {
	Available        bool   `json:"available"`
	Version          string `json:"version,omitempty"`
	UsedMemory       string `json:"used_memory,omitempty"`
	ConnectedClients string `json:"connected_clients,omitempty"`
	Error            string `json:"error,omitempty"`
}

// ConversationStore persists per-session message history with a shared
// expiry policy across all records of a session. userID is optional; when
// present it scopes every key for that session.
type ConversationStore interface {
	// Append adds a message to the session, increments its counter,
	// refreshes last activity and resets the TTL on all three records.
	Append(ctx context.Context, sessionID, userID string, msg models.ChatMessage) error

	// GetConversation returns the session's messages oldest first. Unknown
	// or expired sessions yield an empty slice, not an error.
	GetConversation(ctx context.Context, sessionID, userID string) ([]models.ChatMessage, error)

	// GetRecentContext formats the last limit messages as role-labeled
	// lines for the answer generator.
	GetRecentContext(ctx context.Context, sessionID, userID string, limit int) (string, error)

	// Clear removes all records for the session. Clearing an absent
	// session is not an error.
	Clear(ctx context.Context, sessionID, userID string) error

	// ListSessions enumerates non-expired sessions, optionally scoped to
	// one user.
	ListSessions(ctx context.Context, userID string) ([]models.SessionInfo, error)

	// Stats aggregates session and message totals, optionally scoped to
	// one user.
	Stats(ctx context.Context, userID string) (*Stats, error)

	// HealthCheck verifies backend reachability and gathers diagnostics.
	HealthCheck(ctx context.Context) *Health

	Ping(ctx context.Context) error
	Close() error
}

// DefaultTTL is how long a session survives without activity.
const DefaultTTL = 30 * 24 * time.Hour
