package middlewares

import (
	"net/http"
	"sync"
	"time"
	"timetable-service/internal/pkg/exceptions"
	"timetable-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles each client separately. Gesture moves arrive at
// pointer rate, so they get a token bucket per X-Client-ID instead of the
// per-IP window used for the rest of the API.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	log      *zap.Logger
	now      func() time.Time
}

func NewRateLimiter(perSecond, burst int, idleTTL time.Duration, logger *zap.Logger) *RateLimiter {
	if burst < perSecond {
		burst = perSecond
	}
	return &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		idleTTL:  idleTTL,
		log:      logger,
		now:      time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		clientID := utils.GetClientID(req.Context())
		if clientID == "" {
			clientID = req.RemoteAddr
		}

		if !r.allow(clientID) {
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(nil))
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) allow(clientID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	entry, exists := r.limiters[clientID]
	if !exists {
		r.evictIdle(now)
		entry = &clientLimiter{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.limiters[clientID] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

// evictIdle drops buckets of clients not seen within idleTTL. Called with
// mu held.
func (r *RateLimiter) evictIdle(now time.Time) {
	if r.idleTTL <= 0 {
		return
	}
	for clientID, entry := range r.limiters {
		if now.Sub(entry.lastSeen) > r.idleTTL {
			delete(r.limiters, clientID)
		}
	}
}
