//go:build unit

package readstore

import (
	"context"
	"testing"

	"fieldbook/internal/domain/user"
	"fieldbook/internal/infra"
	sqlc "fieldbook/internal/infra/sqlc/generated"
	"fieldbook/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db sqlc.DBTX, id string) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func TestUserReadStore_FindByID(t *testing.T) {
	withPhone := builder.NewProfileBuilder().BuildInfra()
	noPhone := builder.NewProfileBuilder().WithID("user-2").WithoutPhone().BuildInfra()

	tests := []struct {
		name        string
		id          string
		mockReturn  sqlc.Users
		mockError   error
		wantContact bool
		wantKind    infra.RepositoryErrorKind
	}{
		{name: "success - with phone", id: withPhone.ID, mockReturn: withPhone, wantContact: true},
		{name: "success - without phone", id: noPhone.ID, mockReturn: noPhone, wantContact: false},
		{name: "user not found", id: "missing", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", id: withPhone.ID, mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByID", mock.Anything, mock.Anything, tt.id).Return(tt.mockReturn, tt.mockError)

			p, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), tt.id)

			if tt.wantKind != "" {
				assert.Nil(t, p)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.id, p.ID())
				assert.Equal(t, user.RoleMember, p.Role())
				assert.Equal(t, tt.wantContact, p.HasContact())
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
