//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/usecase/queries"
	"fieldbook/internal/usecase/shared"
	"fieldbook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileQueries_Me(t *testing.T) {
	ctx := context.Background()
	stored := builder.NewProfileBuilder().BuildDomain()

	t.Run("stored profile", func(t *testing.T) {
		q := queries.NewProfileQueries(&fakeProfiles{profile: stored})

		got, err := q.Me(ctx, builder.NewProfileBuilder().BuildActor())
		require.NoError(t, err)
		assert.Equal(t, &queries.ProfileView{
			ID:          "user-1",
			Email:       "player@example.com",
			DisplayName: "Player One",
			Phone:       "+66812345678",
			Role:        "member",
			HasContact:  true,
		}, got)
	})

	t.Run("first visit falls back to the token", func(t *testing.T) {
		q := queries.NewProfileQueries(&fakeProfiles{})
		actor := shared.Actor{UserID: "new-user", Email: "new@example.com", Name: "New", Role: "member"}

		got, err := q.Me(ctx, actor)
		require.NoError(t, err)
		assert.Equal(t, "new-user", got.ID)
		assert.Equal(t, "New", got.DisplayName)
		assert.Empty(t, got.Phone)
		assert.False(t, got.HasContact)
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := queries.NewProfileQueries(&fakeProfiles{}).Me(ctx, shared.Actor{})
		assert.ErrorIs(t, err, errs.ErrAuthRequired)
	})

	t.Run("store failure", func(t *testing.T) {
		q := queries.NewProfileQueries(&fakeProfiles{err: errors.New("timeout")})
		_, err := q.Me(ctx, builder.NewProfileBuilder().BuildActor())
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}
