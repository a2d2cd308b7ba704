//go:build unit

package readstore

import (
	"context"
	"testing"

	"fieldbook/internal/infra"
	sqlc "fieldbook/internal/infra/sqlc/generated"
	"fieldbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFieldReadQueries struct {
	mock.Mock
}

func (m *MockFieldReadQueries) GetFieldByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Fields, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Fields), args.Error(1)
}

func (m *MockFieldReadQueries) ListFields(ctx context.Context, db sqlc.DBTX, includeInactive bool) ([]sqlc.Fields, error) {
	args := m.Called(ctx, db, includeInactive)
	return args.Get(0).([]sqlc.Fields), args.Error(1)
}

func TestFieldReadStore_FindByID(t *testing.T) {
	row := builder.NewFieldBuilder().BuildInfra()

	tests := []struct {
		name      string
		mockRow   sqlc.Fields
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", mockRow: row},
		{name: "not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockFieldReadQueries)
			mockQueries.On("GetFieldByID", mock.Anything, mock.Anything, row.ID).Return(tt.mockRow, tt.mockError)

			got, err := NewFieldReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)

			if tt.wantKind != "" {
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, row.ID, got.ID())
				assert.Equal(t, "Court A", got.Name())
				assert.Equal(t, 4, got.Capacity())
				assert.Equal(t, "150", got.PricePerPerson().String())
				assert.True(t, got.IsActive())
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFieldReadStore_List(t *testing.T) {
	rows := []sqlc.Fields{
		builder.NewFieldBuilder().BuildInfra(),
		builder.NewFieldBuilder().AsInactive().BuildInfra(),
	}

	mockQueries := new(MockFieldReadQueries)
	mockQueries.On("ListFields", mock.Anything, mock.Anything, true).Return(rows, nil)
	mockQueries.On("ListFields", mock.Anything, mock.Anything, false).Return([]sqlc.Fields(nil), assert.AnError)
	store := NewFieldReadStore(mockQueries, nil)

	got, err := store.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.False(t, got[1].IsActive())

	_, err = store.List(context.Background(), false)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	mockQueries.AssertExpectations(t)
}
