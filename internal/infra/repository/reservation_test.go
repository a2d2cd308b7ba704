//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldbook/internal/domain/reservation"
	"fieldbook/internal/infra"
	"fieldbook/internal/infra/repository"
	sqlc "fieldbook/internal/infra/sqlc/generated"
	"fieldbook/internal/pkg/pgconv"
	"fieldbook/tests/common/builder"
	repositorymock "fieldbook/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Slot lock
// =============================================================================

func TestRepository_LockSlot(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	repo := repository.NewReservationRepository(mockQueries, builder.Bangkok)

	fieldID := uuid.MustParse("7f6b2c1e-0000-4000-8000-000000000001")
	date := reservation.NewDate(2030, 1, 15, builder.Bangkok)
	wantKey := "reservation:7f6b2c1e-0000-4000-8000-000000000001:2030-01-15"

	mockQueries.EXPECT().AcquireSlotLock(ctx, gomock.Any(), wantKey).Return(nil)
	require.NoError(t, repo.LockSlot(ctx, nil, fieldID, date))

	mockQueries.EXPECT().AcquireSlotLock(ctx, gomock.Any(), wantKey).Return(errors.New("lock timeout"))
	err := repo.LockSlot(ctx, nil, fieldID, date)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

// =============================================================================
// Create
// =============================================================================

func TestRepository_CreateReservation(t *testing.T) {
	ctx := context.Background()
	res := builder.NewReservationBuilder().WithSlot("2030-01-15", "19:00").BuildDomain()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockReservationWriteQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: row written with minute offsets",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries) {
				mock.EXPECT().CreateReservation(ctx, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error) {
						assert.Equal(t, res.ID(), arg.ID)
						assert.Equal(t, int32(19*60), arg.StartMinute)
						assert.Equal(t, int32(60), arg.DurationMinutes)
						assert.Equal(t, int32(1), arg.PersonCount)
						assert.Equal(t, "active", arg.Status)
						return arg.ID, nil
					})
			},
		},
		{
			name: "error: duplicate active booking",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries) {
				dup := &pgconn.PgError{Code: "23505", ConstraintName: "reservations_active_user_slot_key"}
				mock.EXPECT().CreateReservation(ctx, gomock.Any(), gomock.Any()).Return(uuid.Nil, dup)
			},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name: "error: unknown field",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries) {
				fk := &pgconn.PgError{Code: "23503"}
				mock.EXPECT().CreateReservation(ctx, gomock.Any(), gomock.Any()).Return(uuid.Nil, fk)
			},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			tc.setupMock(mockQueries)

			id, err := repository.NewReservationRepository(mockQueries, builder.Bangkok).Create(ctx, nil, res)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.Equal(t, uuid.Nil, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, res.ID(), id)
		})
	}
}

// =============================================================================
// Cancel path
// =============================================================================

func TestRepository_FindForUpdateAndUpdateStatus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	repo := repository.NewReservationRepository(mockQueries, builder.Bangkok)

	row := builder.NewReservationBuilder().BuildInfra()
	mockQueries.EXPECT().GetReservationForUpdate(ctx, gomock.Any(), row.ID).Return(row, nil)

	res, err := repo.FindForUpdate(ctx, nil, row.ID)
	require.NoError(t, err)
	assert.Equal(t, "2030-01-15", res.Date().String())
	assert.Equal(t, "10:00", res.Time().String())

	cancelledAt := time.Date(2030, 1, 14, 12, 0, 0, 0, builder.Bangkok)
	require.NoError(t, res.Cancel(cancelledAt))
	mockQueries.EXPECT().UpdateReservationStatus(ctx, gomock.Any(), sqlc.UpdateReservationStatusParams{
		ID:        row.ID,
		Status:    "cancelled",
		UpdatedAt: pgconv.TimeToPgtype(cancelledAt),
	}).Return(nil)
	require.NoError(t, repo.UpdateStatus(ctx, nil, res))

	missing := uuid.New()
	mockQueries.EXPECT().GetReservationForUpdate(ctx, gomock.Any(), missing).Return(sqlc.Reservations{}, pgx.ErrNoRows)
	_, err = repo.FindForUpdate(ctx, nil, missing)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestRepository_ListActiveByFieldDate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	repo := repository.NewReservationRepository(mockQueries, builder.Bangkok)

	date := reservation.NewDate(2030, 1, 15, builder.Bangkok)
	rows := []sqlc.Reservations{
		builder.NewReservationBuilder().WithUser("a").BuildInfra(),
		builder.NewReservationBuilder().WithUser("b").WithPersonCount(3).BuildInfra(),
	}
	mockQueries.EXPECT().ListActiveReservationsByFieldDate(ctx, gomock.Any(), gomock.Any()).Return(rows, nil)

	got, err := repo.ListActiveByFieldDate(ctx, nil, rows[0].FieldID, date)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[1].PersonCount())
}
