package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sindico-pro/sindicopro-sub/internal/generator"
	"github.com/sindico-pro/sindicopro-sub/internal/store"
)

const version = "1.0.0"

// defaultContextLimit is how many recent messages feed the generator.
const defaultContextLimit = 10

// Handler contains shared dependencies for all HTTP handlers.
type Handler struct {
	store        store.ConversationStore
	gen          generator.Generator
	logger       zerolog.Logger
	contextLimit int
}

// NewHandler creates a new Handler with the given collaborators.
func NewHandler(st store.ConversationStore, gen generator.Generator, logger zerolog.Logger, contextLimit int) *Handler {
	if contextLimit <= 0 {
		contextLimit = defaultContextLimit
	}
	return &Handler{store: st, gen: gen, logger: logger, contextLimit: contextLimit}
}

// JSON sends a JSON response with the given status code.
func (h *Handler) JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Error sends a JSON error response with the given status code.
func (h *Handler) Error(w http.ResponseWriter, status int, message string) {
	h.JSON(w, status, map[string]string{"error": message})
}

// validID reports whether a caller-supplied identifier is safe to embed in a
// store key. The colon is the key separator: an id containing one would make
// an unscoped session parse as user-scoped during enumeration.
func validID(id string) bool {
	return !strings.Contains(id, ":")
}
