package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sindico-pro/sindicopro-sub/internal/metrics"
	"github.com/sindico-pro/sindicopro-sub/internal/models"
)

// RedisStore persists conversations in Redis. Each session owns three
// related keys (message list, counter, activity timestamp) under a common
// namespace prefix; every append resets the TTL on all three together so
// partial expiry does not occur under normal operation.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection. The backend
// is required: a failed ping here is a fatal startup condition for callers.
func NewRedisStore(ctx context.Context, redisURL, prefix string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &RedisStore{client: client, prefix: prefix, ttl: ttl}, nil
}

// NewRedisStoreWithClient wraps an existing client. Used by tests.
func NewRedisStoreWithClient(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

// Client exposes the underlying connection for components that share it,
// such as the rate limiter.
func (s *RedisStore) Client() *redis.Client {
	return s.client
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ping checks the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// key builds "<prefix><kind>:[<userID>:]<sessionID>".
func (s *RedisStore) key(kind, sessionID, userID string) string {
	if userID != "" {
		return fmt.Sprintf("%s%s:%s:%s", s.prefix, kind, userID, sessionID)
	}
	return fmt.Sprintf("%s%s:%s", s.prefix, kind, sessionID)
}

func (s *RedisStore) messagesKey(sessionID, userID string) string {
	return s.key("messages", sessionID, userID)
}

func (s *RedisStore) countKey(sessionID, userID string) string {
	return s.key("count", sessionID, userID)
}

func (s *RedisStore) activityKey(sessionID, userID string) string {
	return s.key("activity", sessionID, userID)
}

// Append stores one message. LPUSH and INCR are atomic per key, so
// concurrent appends to the same session both land without lost updates;
// the whole batch goes out in a single pipeline round trip.
func (s *RedisStore) Append(ctx context.Context, sessionID, userID string, msg models.ChatMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	messagesKey := s.messagesKey(sessionID, userID)
	countKey := s.countKey(sessionID, userID)
	activityKey := s.activityKey(sessionID, userID)

	pipe := s.client.Pipeline()
	pipe.LPush(ctx, messagesKey, string(data))
	pipe.Incr(ctx, countKey)
	pipe.Set(ctx, activityKey, time.Now().UTC().Format(time.RFC3339Nano), 0)
	pipe.Expire(ctx, messagesKey, s.ttl)
	pipe.Expire(ctx, countKey, s.ttl)
	pipe.Expire(ctx, activityKey, s.ttl)

	start := time.Now()
	_, err = pipe.Exec(ctx)
	metrics.RedisLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// GetConversation returns all messages for a session oldest first.
func (s *RedisStore) GetConversation(ctx context.Context, sessionID, userID string) ([]models.ChatMessage, error) {
	raw, err := s.client.LRange(ctx, s.messagesKey(sessionID, userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// LPUSH stores newest first; walk backwards for chronological order.
	messages := make([]models.ChatMessage, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		var msg models.ChatMessage
		if err := json.Unmarshal([]byte(raw[i]), &msg); err != nil {
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// GetRecentContext formats the last limit messages as alternating
// role-labeled lines for the answer generator.
func (s *RedisStore) GetRecentContext(ctx context.Context, sessionID, userID string, limit int) (string, error) {
	if limit <= 0 {
		return "", nil
	}

	raw, err := s.client.LRange(ctx, s.messagesKey(sessionID, userID), 0, int64(limit)-1).Result()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	lines := make([]string, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		var msg models.ChatMessage
		if err := json.Unmarshal([]byte(raw[i]), &msg); err != nil {
			continue
		}
		role := "Usuário"
		if msg.Sender == models.SenderAssistant {
			role = "Assistente"
		}
		lines = append(lines, role+": "+msg.Content)
	}
	return strings.Join(lines, "\n"), nil
}

// Clear deletes all records for a session. Deleting absent keys is a no-op,
// so Clear is idempotent.
func (s *RedisStore) Clear(ctx context.Context, sessionID, userID string) error {
	err := s.client.Del(ctx,
		s.messagesKey(sessionID, userID),
		s.countKey(sessionID, userID),
		s.activityKey(sessionID, userID),
	).Err()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// ListSessions enumerates non-expired sessions by scanning activity keys.
func (s *RedisStore) ListSessions(ctx context.Context, userID string) ([]models.SessionInfo, error) {
	pattern := s.prefix + "activity:*"
	if userID != "" {
		pattern = s.prefix + "activity:" + userID + ":*"
	}

	sessions := []models.SessionInfo{}
	iter := s.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		activityKey := iter.Val()
		sessionID, keyUserID, ok := s.parseActivityKey(activityKey)
		if !ok {
			continue
		}

		count, err := s.client.Get(ctx, s.countKey(sessionID, keyUserID)).Int64()
		if err != nil && err != redis.Nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}

		lastActivity := time.Now().UTC()
		if stamp, err := s.client.Get(ctx, activityKey).Result(); err == nil {
			if t, err := time.Parse(time.RFC3339Nano, stamp); err == nil {
				lastActivity = t
			}
		}

		sessions = append(sessions, models.SessionInfo{
			SessionID:    sessionID,
			UserID:       keyUserID,
			CreatedAt:    lastActivity, // first recorded activity approximation
			LastActivity: lastActivity,
			MessageCount: count,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return sessions, nil
}

// parseActivityKey extracts session and user ids from
// "<prefix>activity:[<userID>:]<sessionID>".
func (s *RedisStore) parseActivityKey(key string) (sessionID, userID string, ok bool) {
	rest := strings.TrimPrefix(key, s.prefix)
	parts := strings.Split(rest, ":")
	switch {
	case len(parts) == 2 && parts[0] == "activity":
		return parts[1], "", true
	case len(parts) == 3 && parts[0] == "activity":
		return parts[2], parts[1], true
	default:
		return "", "", false
	}
}

// Stats aggregates totals across all non-expired sessions.
func (s *RedisStore) Stats(ctx context.Context, userID string) (*Stats, error) {
	sessions, err := s.ListSessions(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{TotalSessions: int64(len(sessions))}
	for _, info := range sessions {
		stats.TotalMessages += info.MessageCount
	}
	return stats, nil
}

// HealthCheck pings Redis and collects server diagnostics when obtainable.
func (s *RedisStore) HealthCheck(ctx context.Context) *Health {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return &Health{Available: false, Error: err.Error()}
	}

	health := &Health{Available: true}

	// INFO is diagnostics only; reachability already passed.
	info, err := s.client.Info(ctx).Result()
	if err != nil {
		return health
	}
	for _, line := range strings.Split(info, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "redis_version:"):
			health.Version = strings.TrimPrefix(line, "redis_version:")
		case strings.HasPrefix(line, "used_memory_human:"):
			health.UsedMemory = strings.TrimPrefix(line, "used_memory_human:")
		case strings.HasPrefix(line, "connected_clients:"):
			health.ConnectedClients = strings.TrimPrefix(line, "connected_clients:")
		}
	}
	return health
}
