//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldbook/internal/infra"
	"fieldbook/internal/infra/repository"
	sqlc "fieldbook/internal/infra/sqlc/generated"
	repositorymock "fieldbook/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRepository_IdempotencyKeys(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()
	expires := time.Date(2030, 1, 16, 0, 0, 0, 0, time.UTC)

	t.Run("first insert wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockQueries.EXPECT().TryInsertIdempotencyKey(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error) {
				assert.Equal(t, key, arg.Key)
				assert.Equal(t, "POST /api/reservations", arg.Endpoint)
				assert.Equal(t, "hash", arg.RequestHash)
				assert.True(t, arg.ExpiresAt.Time.Equal(expires))
				return 1, nil
			})
		mockQueries.EXPECT().TryInsertIdempotencyKey(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)

		repo := repository.NewIdempotencyRepository(mockQueries, nil)
		won, err := repo.TryInsert(ctx, nil, key, "user-1", "POST /api/reservations", "hash", expires)
		require.NoError(t, err)
		assert.True(t, won)

		won, err = repo.TryInsert(ctx, nil, key, "user-1", "POST /api/reservations", "hash", expires)
		require.NoError(t, err)
		assert.False(t, won)
	})

	t.Run("claim expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		now := expires.Add(-24 * time.Hour)
		mockQueries.EXPECT().ClaimExpiredIdempotencyKey(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ClaimExpiredIdempotencyKeyParams) (int64, error) {
				assert.Equal(t, now, arg.CreatedAt.Time, "expiry is judged against the caller's clock")
				assert.Equal(t, expires, arg.ExpiresAt.Time)
				return 1, nil
			})

		claimed, err := repository.NewIdempotencyRepository(mockQueries, nil).
			ClaimExpired(ctx, nil, key, "user-1", "POST /api/reservations", "hash", now, expires)
		require.NoError(t, err)
		assert.True(t, claimed)
	})

	t.Run("mark completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		resID := uuid.New()
		mockQueries.EXPECT().UpdateIdempotencyKeyCompleted(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateIdempotencyKeyCompletedParams) error {
				assert.True(t, arg.ResultReservationID.Valid)
				assert.Equal(t, [16]byte(resID), arg.ResultReservationID.Bytes)
				return nil
			})

		require.NoError(t, repository.NewIdempotencyRepository(mockQueries, nil).MarkCompleted(ctx, nil, key, "user-1", resID))
	})

	t.Run("delete expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockQueries.EXPECT().DeleteExpiredIdempotencyKeys(ctx, gomock.Any()).Return(int64(4), nil)
		mockQueries.EXPECT().DeleteExpiredIdempotencyKeys(ctx, gomock.Any()).Return(int64(0), errors.New("conn closed"))
		repo := repository.NewIdempotencyRepository(mockQueries, nil)

		n, err := repo.DeleteExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)

		_, err = repo.DeleteExpired(ctx)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
