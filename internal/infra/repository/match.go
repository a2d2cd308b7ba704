package repository

import (
	"context"
	"time"

	"fieldbook/internal/domain/match"
	"fieldbook/internal/infra"
	"fieldbook/internal/infra/repository/converter"
	sqlc "fieldbook/internal/infra/sqlc/generated"
	"fieldbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MatchWriteQueries interface {
	GetMatchForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Matches, error)
	UpdateMatchParticipants(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateMatchParticipantsParams) error
}

type MatchRepository struct {
	queries MatchWriteQueries
	loc     *time.Location
}

func NewMatchRepository(queries MatchWriteQueries, loc *time.Location) *MatchRepository {
	return &MatchRepository{
		queries: queries,
		loc:     loc,
	}
}

// FindForUpdate row-locks the match so roster changes apply to the latest list.
func (r *MatchRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*match.Match, error) {
	row, err := r.queries.GetMatchForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock match", err)
	}

	m, err := converter.MatchFromRow(row, r.loc)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode match", err, infra.KindDBFailure)
	}
	return m, nil
}

func (r *MatchRepository) SaveParticipants(ctx context.Context, tx sqlc.DBTX, m *match.Match, now time.Time) error {
	payload, err := converter.ParticipantsToJSON(m.Participants())
	if err != nil {
		return infra.WrapRepoErr("failed to encode participants", err, infra.KindDBFailure)
	}

	err = r.queries.UpdateMatchParticipants(ctx, tx, sqlc.UpdateMatchParticipantsParams{
		ID:           m.ID(),
		Participants: payload,
		UpdatedAt:    pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update match participants", err)
	}
	return nil
}
