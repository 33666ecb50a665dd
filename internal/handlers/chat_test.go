package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sindico-pro/sindicopro-sub/internal/generator"
	"github.com/sindico-pro/sindicopro-sub/internal/scope"
	"github.com/sindico-pro/sindicopro-sub/internal/store"
)

// stubGenerator records calls and returns a fixed reply or error.
type stubGenerator struct {
	reply       string
	err         error
	calls       int
	lastContext string
}

func (g *stubGenerator) Generate(_ context.Context, _, recentContext string, _ *scope.Hints) (string, error) {
	g.calls++
	g.lastContext = recentContext
	return g.reply, g.err
}

func newTestHandler(t *testing.T, gen generator.Generator) (*Handler, *store.RedisStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	st := store.NewRedisStoreWithClient(client, "sindico_pro:", 0)
	return NewHandler(st, gen, zerolog.Nop(), 10), st
}

func postMessage(t *testing.T, h *Handler, body string) (*httptest.ResponseRecorder, ChatResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat/message", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.SendMessage(rec, req)

	var resp ChatResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	}
	return rec, resp
}

func TestSendMessageInScope(t *testing.T) {
	gen := &stubGenerator{reply: "O rateio é definido em assembleia."}
	h, st := newTestHandler(t, gen)

	rec, resp := postMessage(t, h, `{"message":"Como funciona o rateio do condomínio?","session_id":"s1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, gen.reply, resp.Data.Response)
	assert.Equal(t, "s1", resp.Data.SessionID)
	assert.True(t, resp.Data.InScope)
	assert.NotEmpty(t, resp.Data.MessageID)
	assert.Equal(t, 1, gen.calls)

	// both turns persisted, oldest first
	conv, err := st.GetConversation(context.Background(), "s1", "")
	require.NoError(t, err)
	require.Len(t, conv, 2)
	assert.Equal(t, "user", conv[0].Sender)
	assert.Equal(t, "Como funciona o rateio do condomínio?", conv[0].Content)
	assert.Equal(t, "assistant", conv[1].Sender)
	assert.Equal(t, gen.reply, conv[1].Content)
}

func TestSendMessageOutOfScope(t *testing.T) {
	gen := &stubGenerator{reply: "não deveria ser chamado"}
	h, st := newTestHandler(t, gen)

	rec, resp := postMessage(t, h, `{"message":"O que faz um urologista?","session_id":"s1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, scope.RefusalMessage, resp.Data.Response)
	assert.False(t, resp.Data.InScope)

	// the generator is never invoked and nothing is persisted
	assert.Zero(t, gen.calls)
	conv, err := st.GetConversation(context.Background(), "s1", "")
	require.NoError(t, err)
	assert.Empty(t, conv)
}

func TestSendMessageGeneratesSessionID(t *testing.T) {
	gen := &stubGenerator{reply: "olá"}
	h, _ := newTestHandler(t, gen)

	_, resp := postMessage(t, h, `{"message":"Qual a taxa do condomínio?"}`)

	assert.NotEmpty(t, resp.Data.SessionID)
}

func TestSendMessageGenerationFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("provider down")}
	h, st := newTestHandler(t, gen)

	rec, resp := postMessage(t, h, `{"message":"Qual a taxa do condomínio?","session_id":"s1"}`)

	// failures are absorbed into the fallback reply, never surfaced
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, generator.FallbackMessage, resp.Data.Response)

	conv, err := st.GetConversation(context.Background(), "s1", "")
	require.NoError(t, err)
	require.Len(t, conv, 2)
	assert.Equal(t, generator.FallbackMessage, conv[1].Content)
}

func TestSendMessageUsesRecentContext(t *testing.T) {
	gen := &stubGenerator{reply: "resposta"}
	h, _ := newTestHandler(t, gen)

	postMessage(t, h, `{"message":"Qual a taxa do condomínio?","session_id":"s1"}`)
	postMessage(t, h, `{"message":"E o valor da multa?","session_id":"s1"}`)

	assert.Contains(t, gen.lastContext, "Usuário: Qual a taxa do condomínio?")
	assert.Contains(t, gen.lastContext, "Assistente: resposta")
}

func TestSendMessageValidation(t *testing.T) {
	h, _ := newTestHandler(t, &stubGenerator{})

	rec, _ := postMessage(t, h, `{"message":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = postMessage(t, h, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendMessageRejectsColonInIDs(t *testing.T) {
	h, st := newTestHandler(t, &stubGenerator{reply: "olá"})

	rec, _ := postMessage(t, h, `{"message":"Qual a taxa do condomínio?","session_id":"a:b"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = postMessage(t, h, `{"message":"Qual a taxa do condomínio?","session_id":"s1","user_id":"u:1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	sessions, err := st.ListSessions(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestSendMessageStoreUnavailable(t *testing.T) {
	gen := &stubGenerator{reply: "olá"}
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	st := store.NewRedisStoreWithClient(client, "sindico_pro:", 0)
	h := NewHandler(st, gen, zerolog.Nop(), 10)

	mr.Close()

	rec, _ := postMessage(t, h, `{"message":"Qual a taxa do condomínio?","session_id":"s1"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
