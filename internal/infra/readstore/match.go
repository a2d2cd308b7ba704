package readstore

import (
	"context"
	"time"

	"fieldbook/internal/infra"
	"fieldbook/internal/infra/repository/converter"
	sqlc "fieldbook/internal/infra/sqlc/generated"
	"fieldbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type MatchViewQueries interface {
	GetMatchByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetMatchByIDRow, error)
}

type MatchReadStore struct {
	queries MatchViewQueries
	db      sqlc.DBTX
	loc     *time.Location
}

func NewMatchReadStore(queries MatchViewQueries, db sqlc.DBTX, loc *time.Location) *MatchReadStore {
	return &MatchReadStore{
		queries: queries,
		db:      db,
		loc:     loc,
	}
}

func (r *MatchReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MatchRecord, error) {
	row, err := r.queries.GetMatchByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find match by ID", err)
	}

	m, err := converter.MatchFromRow(sqlc.Matches{
		ID:              row.ID,
		FieldID:         row.FieldID,
		MatchDate:       row.MatchDate,
		StartMinute:     row.StartMinute,
		DurationMinutes: row.DurationMinutes,
		MaxParticipants: row.MaxParticipants,
		Participants:    row.Participants,
		Description:     row.Description,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}, r.loc)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode match", err, infra.KindDBFailure)
	}

	return &queries.MatchRecord{Match: m, FieldName: row.FieldName}, nil
}
