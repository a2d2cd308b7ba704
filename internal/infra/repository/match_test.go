//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"fieldbook/internal/infra"
	"fieldbook/internal/infra/repository"
	sqlc "fieldbook/internal/infra/sqlc/generated"
	"fieldbook/tests/common/builder"
	repositorymock "fieldbook/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRepository_MatchRoundTrip(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockMatchWriteQueries(ctrl)
	repo := repository.NewMatchRepository(mockQueries, builder.Bangkok)

	joinedAt := time.Date(2030, 1, 10, 5, 0, 0, 0, time.UTC)
	b := builder.NewMatchBuilder().WithLegacy("legacy-1").WithRecord("user-2", joinedAt)
	mockQueries.EXPECT().GetMatchForUpdate(ctx, gomock.Any(), b.ID).Return(b.BuildInfra(), nil)

	m, err := repo.FindForUpdate(ctx, nil, b.ID)
	require.NoError(t, err)
	require.Len(t, m.Participants(), 2)
	require.NoError(t, m.Leave("user-2"))

	now := time.Date(2030, 1, 11, 9, 0, 0, 0, builder.Bangkok)
	mockQueries.EXPECT().UpdateMatchParticipants(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateMatchParticipantsParams) error {
			assert.Equal(t, b.ID, arg.ID)
			assert.JSONEq(t, `["legacy-1"]`, string(arg.Participants), "legacy entries keep their bare form")
			assert.True(t, arg.UpdatedAt.Time.Equal(now))
			return nil
		})
	require.NoError(t, repo.SaveParticipants(ctx, nil, m, now))
}

func TestRepository_SaveParticipants_EmptyRoster(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockMatchWriteQueries(ctrl)

	m := builder.NewMatchBuilder().BuildDomain()
	mockQueries.EXPECT().UpdateMatchParticipants(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateMatchParticipantsParams) error {
			assert.Equal(t, "[]", string(arg.Participants))
			return nil
		})

	require.NoError(t, repository.NewMatchRepository(mockQueries, builder.Bangkok).SaveParticipants(ctx, nil, m, time.Now()))
}

func TestRepository_MatchFindForUpdate_Errors(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockMatchWriteQueries(ctrl)
	repo := repository.NewMatchRepository(mockQueries, builder.Bangkok)

	b := builder.NewMatchBuilder()
	mockQueries.EXPECT().GetMatchForUpdate(ctx, gomock.Any(), b.ID).Return(sqlc.Matches{}, pgx.ErrNoRows)
	_, err := repo.FindForUpdate(ctx, nil, b.ID)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	corrupt := b.BuildInfra()
	corrupt.Participants = []byte(`{"not":"an array"}`)
	mockQueries.EXPECT().GetMatchForUpdate(ctx, gomock.Any(), b.ID).Return(corrupt, nil)
	_, err = repo.FindForUpdate(ctx, nil, b.ID)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
