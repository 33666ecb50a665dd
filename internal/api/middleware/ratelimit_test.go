package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, limit int) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRateLimiter(client, zerolog.Nop(), "sindico_pro:", limit), mr
}

func doRequest(l *RateLimiter, remoteAddr string) int {
	handler := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/chat/stats", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	l, _ := newTestLimiter(t, 2)

	assert.Equal(t, http.StatusOK, doRequest(l, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, doRequest(l, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(l, "10.0.0.1:1234"))
}

func TestRateLimiterKeyedByHostNotPort(t *testing.T) {
	l, _ := newTestLimiter(t, 2)

	// one client reconnecting gets no fresh budget from new source ports
	codes := make([]int, 0, 6)
	for port, i := 40000, 0; i < 6; i, port = i+1, port+1 {
		codes = append(codes, doRequest(l, "10.0.0.1:"+strconv.Itoa(port)))
	}
	assert.Equal(t, []int{200, 200, 429, 429, 429, 429}, codes)

	// a different host is unaffected
	assert.Equal(t, http.StatusOK, doRequest(l, "10.0.0.2:40000"))
}

func TestRateLimiterWindowLapsesWhilePolling(t *testing.T) {
	l, _ := newTestLimiter(t, 2)

	current := time.Unix(1700000000, 0)
	l.now = func() time.Time { return current }

	// burst past the limit
	for i := 0; i < 3; i++ {
		doRequest(l, "10.0.0.1:1234")
	}
	require.Equal(t, http.StatusTooManyRequests, doRequest(l, "10.0.0.1:1234"))

	// polling inside the window stays blocked
	current = current.Add(30 * time.Second)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(l, "10.0.0.1:1234"))

	// the next window admits the client even though it never stopped polling
	current = current.Add(31 * time.Second)
	assert.Equal(t, http.StatusOK, doRequest(l, "10.0.0.1:1234"))
}

func TestRateLimiterDisabled(t *testing.T) {
	l, _ := newTestLimiter(t, 0)

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, doRequest(l, "10.0.0.1:1234"))
	}
}

func TestRateLimiterAllowsOnRedisFailure(t *testing.T) {
	l, mr := newTestLimiter(t, 1)
	mr.Close()

	assert.Equal(t, http.StatusOK, doRequest(l, "10.0.0.1:1234"))
}

func TestRateLimiterKeysUnderPrefix(t *testing.T) {
	l, mr := newTestLimiter(t, 5)

	doRequest(l, "10.0.0.1:1234")

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Contains(t, keys[0], "sindico_pro:ratelimit:10.0.0.1:")
}
