package commands

import (
	"context"

	"fieldbook/internal/domain/user"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/usecase/queries"
	"fieldbook/internal/usecase/shared"
)

type UpdateContactInput struct {
	Actor       shared.Actor
	DisplayName string
	Phone       string
}

type ProfileCommands interface {
	UpdateContact(ctx context.Context, in UpdateContactInput) (*queries.ProfileView, error)
}

type profileCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewProfileCommands(uow shared.UnitOfWork) ProfileCommands {
	return &profileCommandsImpl{uow: uow}
}

func (p *profileCommandsImpl) UpdateContact(ctx context.Context, in UpdateContactInput) (*queries.ProfileView, error) {
	if in.Actor.IsAnonymous() {
		return nil, errs.ErrAuthRequired
	}

	displayName := in.DisplayName
	if displayName == "" {
		displayName = in.Actor.Name
	}

	profile, err := user.NewProfile(in.Actor.UserID, in.Actor.Email, displayName, in.Phone, user.Role(in.Actor.Role))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var saved *user.Profile
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		saved, err = tx.Users().UpsertContact(ctx, tx.DB(), profile)
		if err != nil {
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return queries.ToProfileView(saved), nil
}
