//go:build unit

package slotlock

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldbook/internal/pkg/errs"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "token-1"

func newTestLocker(t *testing.T, wait, retry time.Duration) (*RedisLocker, redismock.ClientMock) {
	t.Helper()
	db, mock := redismock.NewClientMock()
	l := NewRedisLocker(db, 10*time.Second, wait)
	l.retryInterval = retry
	l.newToken = func() string { return testToken }
	return l, mock
}

func TestKey(t *testing.T) {
	id := uuid.MustParse("8f3c8a4e-3f1b-4a55-9a53-2f1f7c0d9b11")
	assert.Equal(t, "8f3c8a4e-3f1b-4a55-9a53-2f1f7c0d9b11:2025-03-14", Key(id, "2025-03-14"))
}

func TestRedisLocker_AcquireAndRelease(t *testing.T) {
	l, mock := newTestLocker(t, time.Second, time.Millisecond)

	mock.ExpectSetNX("slotlock:f1:2025-03-14", testToken, 10*time.Second).SetVal(true)
	mock.ExpectEval(releaseScript, []string{"slotlock:f1:2025-03-14"}, testToken).SetVal(int64(1))

	release, err := l.Acquire(context.Background(), "f1:2025-03-14")
	require.NoError(t, err)
	require.NoError(t, release(context.Background()))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisLocker_RetriesUntilFree(t *testing.T) {
	l, mock := newTestLocker(t, time.Second, time.Millisecond)

	mock.ExpectSetNX("slotlock:k", testToken, 10*time.Second).SetVal(false)
	mock.ExpectSetNX("slotlock:k", testToken, 10*time.Second).SetVal(true)

	release, err := l.Acquire(context.Background(), "k")
	require.NoError(t, err)
	assert.NotNil(t, release)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisLocker_TimesOutAsSlotBusy(t *testing.T) {
	l, mock := newTestLocker(t, 20*time.Millisecond, time.Hour)

	mock.ExpectSetNX("slotlock:k", testToken, 10*time.Second).SetVal(false)

	release, err := l.Acquire(context.Background(), "k")
	assert.Nil(t, release)
	assert.True(t, errors.Is(err, errs.ErrSlotBusy))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisLocker_RedisFailure(t *testing.T) {
	l, mock := newTestLocker(t, time.Second, time.Millisecond)

	mock.ExpectSetNX("slotlock:k", testToken, 10*time.Second).SetErr(errors.New("connection refused"))

	_, err := l.Acquire(context.Background(), "k")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
	assert.False(t, errs.Is(err, errs.ErrSlotBusy))
}

func TestRedisLocker_ReleaseAfterExpiry(t *testing.T) {
	l, mock := newTestLocker(t, time.Second, time.Millisecond)

	mock.ExpectSetNX("slotlock:k", testToken, 10*time.Second).SetVal(true)
	mock.ExpectEval(releaseScript, []string{"slotlock:k"}, testToken).SetVal(int64(0))

	release, err := l.Acquire(context.Background(), "k")
	require.NoError(t, err)
	assert.NoError(t, release(context.Background()))
}
