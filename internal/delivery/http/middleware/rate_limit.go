package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix for Redis
	KeyPrefix string
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	rateLimitStore sync.Map
	cleanupOnce    sync.Once
)

// Lua script for atomic increment with TTL on first set.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

// startCleanup runs a background goroutine to clean up expired entries,
// keeping the fallback map bounded under many distinct client IPs
func startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			purgeExpiredEntries(time.Now())
		}
	}()
}

func purgeExpiredEntries(now time.Time) {
	rateLimitStore.Range(func(key, value interface{}) bool {
		entry := value.(*rateLimitEntry)
		entry.mu.Lock()
		if now.After(entry.resetAt) {
			rateLimitStore.Delete(key)
		}
		entry.mu.Unlock()
		return true
	})
}

// RateLimit limits requests per client IP. Counting goes through Redis when
// available so limits hold across instances; otherwise an in-memory window
// is used. The limiter fails open on Redis errors - issuance availability
// beats strictness here.
func RateLimit(cfg RateLimitConfig, audit *security.AuditLogger) gin.HandlerFunc {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "rl:ip:"
	}

	cleanupOnce.Do(startCleanup)

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + c.ClientIP()

		over := false
		if client := redis.Client(); client != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			count, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, int(cfg.Window.Seconds())).Int()
			cancel()
			if err == nil {
				over = count > cfg.Limit
			} else {
				over = memoryLimitExceeded(key, cfg)
			}
		} else {
			over = memoryLimitExceeded(key, cfg)
		}

		if over {
			audit.Log(security.Event{
				Event:     security.EventRateLimitTriggered,
				IP:        c.ClientIP(),
				RequestID: c.GetString(string(domain.KeyRequestID)),
			})
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func memoryLimitExceeded(key string, cfg RateLimitConfig) bool {
	value, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{})
	entry := value.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(cfg.Window)
	}
	entry.count++
	return entry.count > cfg.Limit
}
