package ratelimit

import (
	"context"
	"time"

	"fieldbook/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

type Decision struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// FixedWindow counts requests per identity in windows that start at the first hit.
type FixedWindow struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
}

func NewFixedWindow(client redis.Cmdable, limit int64, window time.Duration) *FixedWindow {
	return &FixedWindow{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (f *FixedWindow) Allow(ctx context.Context, identity string) (Decision, error) {
	key := keyPrefix + identity

	count, err := f.client.Incr(ctx, key).Result()
	if err != nil {
		return Decision{}, errs.Wrap(err, "rate limit incr")
	}
	if count == 1 {
		if err := f.client.Expire(ctx, key, f.window).Err(); err != nil {
			return Decision{}, errs.Wrap(err, "rate limit expire")
		}
	}

	if count <= f.limit {
		return Decision{Allowed: true, Remaining: f.limit - count}, nil
	}

	ttl, err := f.client.TTL(ctx, key).Result()
	if err != nil {
		return Decision{}, errs.Wrap(err, "rate limit ttl")
	}
	// A key without expiry would block forever; restore the window.
	if ttl < 0 {
		_ = f.client.Expire(ctx, key, f.window).Err()
		ttl = f.window
	}
	return Decision{Allowed: false, RetryAfter: ttl}, nil
}
