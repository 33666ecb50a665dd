package handlers

import (
	"net/http"

	"github.com/sindico-pro/sindicopro-sub/internal/models"
)

// sessionParams extracts and validates the session_id and user_id query
// parameters, writing a 400 response when they are missing or malformed.
func (h *Handler) sessionParams(w http.ResponseWriter, r *http.Request) (sessionID, userID string, ok bool) {
	sessionID = r.URL.Query().Get("session_id")
	if sessionID == "" {
		h.Error(w, http.StatusBadRequest, "session_id is required")
		return "", "", false
	}
	if !validID(sessionID) {
		h.Error(w, http.StatusBadRequest, "invalid session_id")
		return "", "", false
	}
	userID = r.URL.Query().Get("user_id")
	if !validID(userID) {
		h.Error(w, http.StatusBadRequest, "invalid user_id")
		return "", "", false
	}
	return sessionID, userID, true
}

// HistoryResponse is the payload of GET /api/chat/history.
type HistoryResponse struct {
	SessionID    string               `json:"session_id"`
	UserID       string               `json:"user_id,omitempty"`
	Messages     []models.ChatMessage `json:"messages"`
	MessageCount int                  `json:"message_count"`
}

// GetHistory returns a session's messages in chronological order. Unknown
// or expired sessions return an empty list.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	sessionID, userID, ok := h.sessionParams(w, r)
	if !ok {
		return
	}

	messages, err := h.store.GetConversation(r.Context(), sessionID, userID)
	if err != nil {
		h.storeError(w, err, "fetch conversation")
		return
	}

	h.JSON(w, http.StatusOK, HistoryResponse{
		SessionID:    sessionID,
		UserID:       userID,
		Messages:     messages,
		MessageCount: len(messages),
	})
}

// ClearHistory deletes all records for a session. Clearing an absent
// session succeeds.
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	sessionID, userID, ok := h.sessionParams(w, r)
	if !ok {
		return
	}

	if err := h.store.Clear(r.Context(), sessionID, userID); err != nil {
		h.storeError(w, err, "clear conversation")
		return
	}

	h.JSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"session_id": sessionID,
	})
}

// SessionsResponse is the payload of GET /api/chat/sessions.
type SessionsResponse struct {
	Sessions []models.SessionInfo `json:"sessions"`
	Total    int                  `json:"total"`
}

// ListSessions enumerates active sessions, optionally scoped to one user.
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if !validID(userID) {
		h.Error(w, http.StatusBadRequest, "invalid user_id")
		return
	}

	sessions, err := h.store.ListSessions(r.Context(), userID)
	if err != nil {
		h.storeError(w, err, "list sessions")
		return
	}

	h.JSON(w, http.StatusOK, SessionsResponse{Sessions: sessions, Total: len(sessions)})
}

// Stats reports aggregate session and message totals.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if !validID(userID) {
		h.Error(w, http.StatusBadRequest, "invalid user_id")
		return
	}

	stats, err := h.store.Stats(r.Context(), userID)
	if err != nil {
		h.storeError(w, err, "collect stats")
		return
	}

	h.JSON(w, http.StatusOK, map[string]interface{}{
		"total_sessions": stats.TotalSessions,
		"total_messages": stats.TotalMessages,
		"storage_type":   "redis",
	})
}
