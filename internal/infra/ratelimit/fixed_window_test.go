//go:build unit

package ratelimit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldbook/internal/infra/ratelimit"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedWindow_Allow(t *testing.T) {
	ctx := context.Background()

	t.Run("first hit starts the window", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		limiter := ratelimit.NewFixedWindow(db, 3, time.Minute)

		mock.ExpectIncr("ratelimit:user:u1").SetVal(1)
		mock.ExpectExpire("ratelimit:user:u1", time.Minute).SetVal(true)

		d, err := limiter.Allow(ctx, "user:u1")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.Equal(t, int64(2), d.Remaining)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("within limit does not touch expiry", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		limiter := ratelimit.NewFixedWindow(db, 3, time.Minute)

		mock.ExpectIncr("ratelimit:ip:10.0.0.1").SetVal(3)

		d, err := limiter.Allow(ctx, "ip:10.0.0.1")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.Equal(t, int64(0), d.Remaining)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("over limit reports retry after", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		limiter := ratelimit.NewFixedWindow(db, 3, time.Minute)

		mock.ExpectIncr("ratelimit:user:u1").SetVal(4)
		mock.ExpectTTL("ratelimit:user:u1").SetVal(42 * time.Second)

		d, err := limiter.Allow(ctx, "user:u1")
		require.NoError(t, err)
		assert.False(t, d.Allowed)
		assert.Equal(t, 42*time.Second, d.RetryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("over limit without expiry restores window", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		limiter := ratelimit.NewFixedWindow(db, 1, time.Minute)

		mock.ExpectIncr("ratelimit:user:u1").SetVal(2)
		mock.ExpectTTL("ratelimit:user:u1").SetVal(-1)
		mock.ExpectExpire("ratelimit:user:u1", time.Minute).SetVal(true)

		d, err := limiter.Allow(ctx, "user:u1")
		require.NoError(t, err)
		assert.False(t, d.Allowed)
		assert.Equal(t, time.Minute, d.RetryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		limiter := ratelimit.NewFixedWindow(db, 3, time.Minute)

		mock.ExpectIncr("ratelimit:user:u1").SetErr(errors.New("connection refused"))

		_, err := limiter.Allow(ctx, "user:u1")
		assert.Error(t, err)
	})
}
