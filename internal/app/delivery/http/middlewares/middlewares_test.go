package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"timetable-service/internal/app/config"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	internalConfig := &config.InternalConfig{}
	internalConfig.App.MaxRequests = 2
	internalConfig.App.MaxTimeRequestsPerSeconds = 60
	return NewMiddlewares(zap.NewNop(), internalConfig)
}

func TestClientIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()
	var seen string
	handler := m.ClientIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetClientID(r.Context())
	}))

	t.Run("Valid Header Is Kept", func(t *testing.T) {
		clientID := utils.GenerateClientID()
		req := httptest.NewRequest(http.MethodGet, "/viewer", nil)
		req.Header.Set(constvars.HeaderXClientID, clientID)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, clientID, seen)
		assert.Equal(t, clientID, rec.Header().Get(constvars.HeaderXClientID))
	})

	t.Run("Missing Or Malformed Header Gets A New Id", func(t *testing.T) {
		for _, header := range []string{"", "not-a-uuid", "a:b:c"} {
			req := httptest.NewRequest(http.MethodGet, "/viewer", nil)
			if header != "" {
				req.Header.Set(constvars.HeaderXClientID, header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			assert.True(t, utils.IsValidClientID(seen))
			assert.NotEqual(t, header, seen)
			assert.Equal(t, seen, rec.Header().Get(constvars.HeaderXClientID))
		}
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()
	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
	assert.Equal(t, seen, rec.Header().Get(constvars.HeaderXRequestID))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constvars.HeaderXRequestID, "upstream-id")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "upstream-id", seen)
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestGlobalRateLimit(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.GlobalRateLimit()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2024, time.January, 3, 10, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, 2, time.Minute, zap.NewNop())
	limiter.now = func() time.Time { return now }

	t.Run("Burst Then Throttle Per Client", func(t *testing.T) {
		assert.True(t, limiter.allow("client-1"))
		assert.True(t, limiter.allow("client-1"))
		assert.False(t, limiter.allow("client-1"))
		assert.True(t, limiter.allow("client-2"), "other clients have their own bucket")

		now = now.Add(time.Second)
		assert.True(t, limiter.allow("client-1"), "one token refills per second")
	})

	t.Run("Idle Buckets Are Evicted", func(t *testing.T) {
		now = now.Add(2 * time.Minute)
		assert.True(t, limiter.allow("client-3"))

		limiter.mu.Lock()
		defer limiter.mu.Unlock()
		assert.Len(t, limiter.limiters, 1)
	})

	t.Run("Throttled Request Gets 429", func(t *testing.T) {
		handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		var last int
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodPost, "/viewer/gestures/move", nil)
			req.RemoteAddr = "10.0.0.9:1"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			last = rec.Code
		}
		assert.Equal(t, http.StatusTooManyRequests, last)
	})
}
