package readstore

import (
	"context"

	"fieldbook/internal/domain/field"
	"fieldbook/internal/infra"
	"fieldbook/internal/infra/repository/converter"
	sqlc "fieldbook/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type FieldReadQueries interface {
	GetFieldByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Fields, error)
	ListFields(ctx context.Context, db sqlc.DBTX, includeInactive bool) ([]sqlc.Fields, error)
}

type FieldReadStore struct {
	queries FieldReadQueries
	db      sqlc.DBTX
}

func NewFieldReadStore(queries FieldReadQueries, db sqlc.DBTX) *FieldReadStore {
	return &FieldReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *FieldReadStore) FindByID(ctx context.Context, id uuid.UUID) (*field.Field, error) {
	row, err := r.queries.GetFieldByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find field by ID", err)
	}

	f, err := converter.FieldFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode field", err, infra.KindDBFailure)
	}
	return f, nil
}

func (r *FieldReadStore) List(ctx context.Context, includeInactive bool) ([]*field.Field, error) {
	rows, err := r.queries.ListFields(ctx, r.db, includeInactive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list fields", err)
	}

	result := make([]*field.Field, 0, len(rows))
	for _, row := range rows {
		f, err := converter.FieldFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode field", err, infra.KindDBFailure)
		}
		result = append(result, f)
	}
	return result, nil
}
