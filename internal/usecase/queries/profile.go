package queries

import (
	"context"

	"fieldbook/internal/domain/user"
	"fieldbook/internal/infra"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/usecase/shared"
)

type ProfileReadStore interface {
	FindByID(ctx context.Context, userID string) (*user.Profile, error)
}

type ProfileQueries interface {
	// Me never fails with not-found: callers without a stored profile get one built from their token.
	Me(ctx context.Context, actor shared.Actor) (*ProfileView, error)
}

type profileQueriesImpl struct {
	repo ProfileReadStore
}

func NewProfileQueries(repo ProfileReadStore) ProfileQueries {
	return &profileQueriesImpl{repo: repo}
}

func (q *profileQueriesImpl) Me(ctx context.Context, actor shared.Actor) (*ProfileView, error) {
	if actor.IsAnonymous() {
		return nil, errs.ErrAuthRequired
	}

	p, err := q.repo.FindByID(ctx, actor.UserID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrStoreUnavailable)
		}
		p = user.ReconstructProfile(actor.UserID, actor.Email, actor.Name, "", user.Role(actor.Role))
	}
	return ToProfileView(p), nil
}

func ToProfileView(p *user.Profile) *ProfileView {
	return &ProfileView{
		ID:          p.ID(),
		Email:       p.Email(),
		DisplayName: p.DisplayName(),
		Phone:       p.Phone(),
		Role:        p.Role().String(),
		HasContact:  p.HasContact(),
	}
}
