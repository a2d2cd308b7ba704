package repository

import (
	"context"

	"fieldbook/internal/domain/user"
	"fieldbook/internal/infra"
	"fieldbook/internal/infra/repository/converter"
	sqlc "fieldbook/internal/infra/sqlc/generated"
)

type UserWriteQueries interface {
	UpsertUserContact(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertUserContactParams) (sqlc.Users, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

// UpsertContact stores identity fields and phone. Role is never written from here.
func (r *UserRepository) UpsertContact(ctx context.Context, tx sqlc.DBTX, p *user.Profile) (*user.Profile, error) {
	row, err := r.queries.UpsertUserContact(ctx, tx, sqlc.UpsertUserContactParams{
		ID:          p.ID(),
		Email:       p.Email(),
		DisplayName: p.DisplayName(),
		Phone:       p.Phone(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert user contact", err)
	}
	return converter.ProfileFromRow(row), nil
}
