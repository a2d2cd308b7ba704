package slotlock

import (
	"context"
	"log/slog"
	"time"

	"fieldbook/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "slotlock:"

// releaseScript deletes the key only while it still holds our token.
const releaseScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end`

const defaultRetryInterval = 50 * time.Millisecond

type RedisLocker struct {
	client        redis.Cmdable
	ttl           time.Duration
	wait          time.Duration
	retryInterval time.Duration
	newToken      func() string
}

// NewRedisLocker holds each lock for at most ttl and waits up to wait to obtain it.
func NewRedisLocker(client redis.Cmdable, ttl, wait time.Duration) *RedisLocker {
	return &RedisLocker{
		client:        client,
		ttl:           ttl,
		wait:          wait,
		retryInterval: defaultRetryInterval,
		newToken:      uuid.NewString,
	}
}

// Key names the lock guarding one field on one day.
func Key(fieldID uuid.UUID, date string) string {
	return fieldID.String() + ":" + date
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(context.Context) error, error) {
	redisKey := keyPrefix + key
	token := l.newToken()

	waitCtx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	for {
		ok, err := l.client.SetNX(waitCtx, redisKey, token, l.ttl).Result()
		if err != nil {
			if waitCtx.Err() != nil {
				return nil, errs.ErrSlotBusy
			}
			return nil, errs.Mark(errs.Wrap(err, "slot lock acquire"), errs.ErrStoreUnavailable)
		}
		if ok {
			return l.releaseFunc(redisKey, token), nil
		}

		select {
		case <-waitCtx.Done():
			slog.Warn("slot lock wait timed out", "key", redisKey, "wait", l.wait)
			return nil, errs.ErrSlotBusy
		case <-time.After(l.retryInterval):
		}
	}
}

func (l *RedisLocker) releaseFunc(redisKey, token string) func(context.Context) error {
	return func(ctx context.Context) error {
		n, err := l.client.Eval(ctx, releaseScript, []string{redisKey}, token).Int64()
		if err != nil {
			return errs.Wrap(err, "slot lock release")
		}
		if n == 0 {
			// Lock expired and may now belong to someone else.
			slog.Warn("slot lock already expired at release", "key", redisKey)
		}
		return nil
	}
}
