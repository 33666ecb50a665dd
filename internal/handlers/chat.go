package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/sindico-pro/sindicopro-sub/internal/generator"
	"github.com/sindico-pro/sindicopro-sub/internal/metrics"
	"github.com/sindico-pro/sindicopro-sub/internal/models"
	"github.com/sindico-pro/sindicopro-sub/internal/scope"
	"github.com/sindico-pro/sindicopro-sub/internal/store"
)

// ChatRequest is the body of POST /api/chat/message.
type ChatRequest struct {
	Message   string       `json:"message"`
	SessionID string       `json:"session_id,omitempty"`
	UserID    string       `json:"user_id,omitempty"`
	Context   *scope.Hints `json:"context,omitempty"`
}

// ChatData is the payload of a successful chat response.
type ChatData struct {
	Response  string `json:"response"`
	MessageID string `json:"message_id"`
	SessionID string `json:"session_id"`
	InScope   bool   `json:"in_scope"`
	Timestamp string `json:"timestamp"`
}

// ChatResponse wraps the chat payload in the success envelope the frontend
// expects.
type ChatResponse struct {
	Success bool     `json:"success"`
	Data    ChatData `json:"data"`
}

// SendMessage handles one conversation turn: classify, then either refuse
// immediately or generate a reply with recent history and persist both turns.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		h.Error(w, http.StatusBadRequest, "message is required")
		return
	}
	if !validID(req.SessionID) {
		h.Error(w, http.StatusBadRequest, "invalid session_id")
		return
	}
	if !validID(req.UserID) {
		h.Error(w, http.StatusBadRequest, "invalid user_id")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	verdict := scope.Classify(req.Message, req.Context)
	if !verdict.InScope {
		metrics.MessagesClassified.WithLabelValues("out_of_scope").Inc()
		if verdict.Metadata.MatchedPattern != "" {
			metrics.OutOfScopeMatches.WithLabelValues(verdict.Metadata.MatchedPattern).Inc()
		}
		h.logger.Info().
			Str("session_id", sessionID).
			Str("matched_pattern", verdict.Metadata.MatchedPattern).
			Str("confidence", verdict.Metadata.Confidence).
			Msg("message out of scope")

		h.respond(w, verdict.Refusal, sessionID, false)
		return
	}
	metrics.MessagesClassified.WithLabelValues("in_scope").Inc()

	recentContext, err := h.store.GetRecentContext(r.Context(), sessionID, req.UserID, h.contextLimit)
	if err != nil {
		h.storeError(w, err, "fetch recent context")
		return
	}

	reply, err := h.gen.Generate(r.Context(), req.Message, recentContext, req.Context)
	if err != nil {
		// Generation failures never reach the user as errors.
		metrics.GenerationFailures.Inc()
		h.logger.Error().Err(err).Str("session_id", sessionID).Msg("generation failed, using fallback")
		reply = generator.FallbackMessage
	}

	if err := h.store.Append(r.Context(), sessionID, req.UserID, models.NewUserMessage(req.Message)); err != nil {
		h.storeError(w, err, "persist user message")
		return
	}
	metrics.MessagesStored.WithLabelValues(models.SenderUser).Inc()

	if err := h.store.Append(r.Context(), sessionID, req.UserID, models.NewAssistantMessage(reply)); err != nil {
		h.storeError(w, err, "persist assistant message")
		return
	}
	metrics.MessagesStored.WithLabelValues(models.SenderAssistant).Inc()

	h.respond(w, reply, sessionID, true)
}

func (h *Handler) respond(w http.ResponseWriter, text, sessionID string, inScope bool) {
	h.JSON(w, http.StatusOK, ChatResponse{
		Success: true,
		Data: ChatData{
			Response:  text,
			MessageID: ulid.Make().String(),
			SessionID: sessionID,
			InScope:   inScope,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// storeError maps store failures to a service error. No retry happens here:
// retrying an append could duplicate a message.
func (h *Handler) storeError(w http.ResponseWriter, err error, action string) {
	h.logger.Error().Err(err).Msgf("%s failed", action)
	if errors.Is(err, store.ErrUnavailable) {
		h.Error(w, http.StatusServiceUnavailable, "session store unavailable")
		return
	}
	h.Error(w, http.StatusInternalServerError, "internal error")
}
