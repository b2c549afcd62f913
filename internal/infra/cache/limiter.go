package cache

import (
	"context"
	"strconv"
	"time"

	"warden/config"
	"warden/internal/errors"

	"github.com/redis/go-redis/v9"
)

// tokenBucketScript refills by whole intervals and takes one token per call.
// Returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
    tokens = capacity
    last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
    local elapsed = math.max(0, now_ms - last_refill)
    local intervals = math.floor(elapsed / interval_ms)
    if intervals > 0 then
        tokens = math.min(capacity, tokens + (intervals * refill_tokens))
        last_refill = last_refill + (intervals * interval_ms)
    end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
    allowed = 1
    tokens = tokens - 1
else
    retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

// Decision is the outcome of one limiter check.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int64
	RetryAfter time.Duration
}

// Limiter takes one token from the bucket identified by key.
type Limiter interface {
	Allow(ctx context.Context, key string) (*Decision, error)
}

// TokenBucket is a Limiter whose buckets live in redis, shared by every replica.
type TokenBucket struct {
	client *redis.Client
	cfg    config.RateLimitConfig
	now    func() time.Time
}

// NewTokenBucket returns nil when rate limiting is disabled or redis is not configured.
func NewTokenBucket(cfg *config.Config, client *redis.Client) Limiter {
	if !cfg.RateLimit.Enabled || client == nil {
		return nil
	}

	return &TokenBucket{client: client, cfg: cfg.RateLimit, now: time.Now}
}

func (b *TokenBucket) Allow(ctx context.Context, key string) (*Decision, error) {
	args := []any{
		b.now().UnixMilli(),
		b.cfg.Capacity,
		b.cfg.RefillTokens,
		b.cfg.RefillInterval.Milliseconds(),
		max(int64(b.cfg.TTL/time.Second), 1),
	}

	vals, err := tokenBucketScript.Run(ctx, b.client, []string{b.cfg.Prefix + ":" + key}, args...).Int64Slice()
	if err != nil {
		return nil, errors.Wrap(err, "rate limit script failed")
	}
	if len(vals) != 3 {
		return nil, errors.Errorf("unexpected rate limit result of length %d", len(vals))
	}

	return &Decision{
		Allowed:    vals[0] == 1,
		Limit:      b.cfg.Capacity,
		Remaining:  vals[1],
		RetryAfter: time.Duration(vals[2]) * time.Millisecond,
	}, nil
}

// RetryAfterSeconds rounds the wait up to whole seconds for the Retry-After header.
func (d *Decision) RetryAfterSeconds() string {
	secs := int64((d.RetryAfter + time.Second - 1) / time.Second)

	return strconv.FormatInt(max(secs, 0), 10)
}
