package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Priya8975/pawpal-landing/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	busyKeyPrefix   = "intent:busy:"
	outcomeStatsKey = "intent:outcomes"
)

type RedisStore struct {
	client  *redis.Client
	busyTTL time.Duration
}

func NewRedis(ctx context.Context, redisURL string, busyTTL time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return NewRedisWithClient(client, busyTTL), nil
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(client *redis.Client, busyTTL time.Duration) *RedisStore {
	return &RedisStore{client: client, busyTTL: busyTTL}
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Client() *redis.Client {
	return s.client
}

// releaseScript deletes the busy flag only while it still holds the
// caller's token.
var releaseScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
    return redis.call('DEL', KEYS[1])
end
return 0
`)

// Acquire marks a control busy across all instances, storing token as the
// holder. The TTL frees the slot if the owning process dies mid-call.
func (s *RedisStore) Acquire(ctx context.Context, key, token string) (bool, error) {
	ok, err := s.client.SetNX(ctx, busyKeyPrefix+key, token, s.busyTTL).Result()
	if err != nil {
		return false, fmt.Errorf("acquiring busy flag: %w", err)
	}
	return ok, nil
}

// Release clears the flag if token still holds it. A holder whose TTL ran
// out leaves a newer holder's flag alone.
func (s *RedisStore) Release(ctx context.Context, key, token string) error {
	if err := releaseScript.Run(ctx, s.client, []string{busyKeyPrefix + key}, token).Err(); err != nil {
		return fmt.Errorf("releasing busy flag: %w", err)
	}
	return nil
}

func (s *RedisStore) IsBusy(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, busyKeyPrefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("checking busy flag: %w", err)
	}
	return n > 0, nil
}

// RecordOutcome increments the counter for surface/outcome.
func (s *RedisStore) RecordOutcome(ctx context.Context, surface string, outcome domain.Outcome) error {
	field := surface + ":" + string(outcome)
	if err := s.client.HIncrBy(ctx, outcomeStatsKey, field, 1).Err(); err != nil {
		return fmt.Errorf("recording outcome: %w", err)
	}
	return nil
}

// OutcomeCounts returns counters keyed by surface then outcome.
func (s *RedisStore) OutcomeCounts(ctx context.Context) (map[string]map[domain.Outcome]int64, error) {
	data, err := s.client.HGetAll(ctx, outcomeStatsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("reading outcome counters: %w", err)
	}
	return parseOutcomeCounts(data), nil
}

func parseOutcomeCounts(data map[string]string) map[string]map[domain.Outcome]int64 {
	counts := make(map[string]map[domain.Outcome]int64)
	for field, raw := range data {
		i := strings.LastIndexByte(field, ':')
		if i < 0 {
			continue
		}
		surface, outcome := field[:i], field[i+1:]
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		if counts[surface] == nil {
			counts[surface] = make(map[domain.Outcome]int64)
		}
		counts[surface][domain.Outcome(outcome)] = n
	}
	return counts
}
