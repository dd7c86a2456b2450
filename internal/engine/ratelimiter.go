package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter caps how many purchase intent webhooks a single client can
// trigger per second. It keeps a sliding window per client in a Redis sorted
// set; a Lua script trims, counts and admits atomically.
type RateLimiter struct {
	redisClient *redis.Client
	logger      *slog.Logger
	script      *redis.Script
	window      time.Duration
	seq         atomic.Uint64
}

var slidingWindowScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
local member = ARGV[4]

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)

local count = redis.call('ZCARD', key)

if count < limit then
    redis.call('ZADD', key, now, member)
    redis.call('EXPIRE', key, math.floor(window / 1000) + 1)
    return 1
else
    return 0
end
`)

func NewRateLimiter(redisClient *redis.Client, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		redisClient: redisClient,
		logger:      logger,
		script:      slidingWindowScript,
		window:      time.Second,
	}
}

func rlKey(clientID string) string {
	return fmt.Sprintf("intent:rl:%s", clientID)
}

// Allow reports whether clientID is still under limit notifications in the
// current window. A non-positive limit disables the check.
func (rl *RateLimiter) Allow(ctx context.Context, clientID string, limit int) bool {
	if limit <= 0 {
		return true
	}

	now := time.Now()
	member := fmt.Sprintf("%d:%d", now.UnixMilli(), rl.seq.Add(1))

	result, err := rl.script.Run(ctx, rl.redisClient, []string{rlKey(clientID)},
		now.UnixMilli(), rl.window.Milliseconds(), limit, member,
	).Int64()
	if err != nil {
		// Fail open: the limiter only protects the webhook.
		rl.logger.Error("rate limiter script failed", "error", err, "client_id", clientID)
		return true
	}

	if result == 0 {
		rl.logger.Debug("intent notification rate limited",
			"client_id", clientID,
			"limit", limit,
		)
		return false
	}

	return true
}
