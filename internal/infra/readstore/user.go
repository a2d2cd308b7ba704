package readstore

import (
	"context"

	"fieldbook/internal/domain/user"
	"fieldbook/internal/infra"
	"fieldbook/internal/infra/repository/converter"
	sqlc "fieldbook/internal/infra/sqlc/generated"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id string) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, userID string) (*user.Profile, error) {
	return r.FindByIDTx(ctx, r.db, userID)
}

func (r *UserReadStore) FindByIDTx(ctx context.Context, db sqlc.DBTX, userID string) (*user.Profile, error) {
	row, err := r.queries.GetUserByID(ctx, db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return converter.ProfileFromRow(row), nil
}
