//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"fieldbook/internal/domain/user"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/usecase/commands"
	"fieldbook/internal/usecase/shared"
	"fieldbook/tests/common/builder"
	sharedmock "fieldbook/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUpdateContact(t *testing.T) {
	setup := func(t *testing.T) (*sharedmock.MockUnitOfWork, *sharedmock.MockUserRepository, commands.ProfileCommands) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		tx := sharedmock.NewMockTx(ctrl)
		users := sharedmock.NewMockUserRepository(ctrl)

		uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, tx)
			}).AnyTimes()
		tx.EXPECT().DB().Return(nil).AnyTimes()
		tx.EXPECT().Users().Return(users).AnyTimes()

		return uow, users, commands.NewProfileCommands(uow)
	}

	actor := builder.NewProfileBuilder().BuildActor()

	t.Run("saves trimmed phone and falls back to token name", func(t *testing.T) {
		_, users, cmds := setup(t)
		users.EXPECT().UpsertContact(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, p *user.Profile) (*user.Profile, error) {
				assert.Equal(t, "+66 81 234 5678", p.Phone())
				assert.Equal(t, actor.Name, p.DisplayName())
				return p, nil
			})

		got, err := cmds.UpdateContact(context.Background(), commands.UpdateContactInput{
			Actor: actor,
			Phone: "  +66 81 234 5678 ",
		})

		require.NoError(t, err)
		assert.True(t, got.HasContact)
		assert.Equal(t, actor.UserID, got.ID)
	})

	t.Run("rejects malformed phone", func(t *testing.T) {
		_, _, cmds := setup(t)

		_, err := cmds.UpdateContact(context.Background(), commands.UpdateContactInput{Actor: actor, Phone: "call me"})

		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.True(t, errs.Is(err, user.ErrInvalidPhone))
	})

	t.Run("anonymous caller", func(t *testing.T) {
		_, _, cmds := setup(t)

		_, err := cmds.UpdateContact(context.Background(), commands.UpdateContactInput{Phone: "+66812345678"})

		assert.ErrorIs(t, err, errs.ErrAuthRequired)
	})

	t.Run("store failure", func(t *testing.T) {
		_, users, cmds := setup(t)
		users.EXPECT().UpsertContact(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := cmds.UpdateContact(context.Background(), commands.UpdateContactInput{Actor: actor, Phone: "+66812345678"})

		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
	})
}
