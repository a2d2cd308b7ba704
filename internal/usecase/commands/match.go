package commands

import (
	"context"
	"time"

	"fieldbook/internal/domain/match"
	"fieldbook/internal/infra"
	"fieldbook/internal/infra/metrics"
	"fieldbook/internal/pkg/clock"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/usecase/queries"
	"fieldbook/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	rosterOpJoin  = "join"
	rosterOpLeave = "leave"

	rosterSizeConstraint = "chk_matches_roster_size"
)

type MatchCommands interface {
	Join(ctx context.Context, actor shared.Actor, matchID uuid.UUID) (*queries.MatchView, error)
	Leave(ctx context.Context, actor shared.Actor, matchID uuid.UUID) (*queries.MatchView, error)
}

type matchCommandsImpl struct {
	uow          shared.UnitOfWork
	matchQueries queries.MatchQueries
	clock        clock.Clock
}

func NewMatchCommands(uow shared.UnitOfWork, matchQueries queries.MatchQueries, clk clock.Clock) MatchCommands {
	return &matchCommandsImpl{
		uow:          uow,
		matchQueries: matchQueries,
		clock:        clk,
	}
}

func (m *matchCommandsImpl) Join(ctx context.Context, actor shared.Actor, matchID uuid.UUID) (view *queries.MatchView, err error) {
	defer func() { metrics.ObserveRoster(rosterOpJoin, err) }()

	if actor.IsAnonymous() {
		return nil, errs.ErrAuthRequired
	}

	profile, err := loadProfile(ctx, m.uow.CommandReads(), actor)
	if err != nil {
		return nil, err
	}

	err = m.mutate(ctx, matchID, TopicMatchJoined, actor.UserID, func(mt *match.Match, now time.Time) error {
		_, err := mt.Join(profile, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	return m.matchQueries.GetByID(ctx, actor.UserID, matchID)
}

func (m *matchCommandsImpl) Leave(ctx context.Context, actor shared.Actor, matchID uuid.UUID) (view *queries.MatchView, err error) {
	defer func() { metrics.ObserveRoster(rosterOpLeave, err) }()

	if actor.IsAnonymous() {
		return nil, errs.ErrAuthRequired
	}

	err = m.mutate(ctx, matchID, TopicMatchLeft, actor.UserID, func(mt *match.Match, _ time.Time) error {
		return mt.Leave(actor.UserID)
	})
	if err != nil {
		return nil, err
	}

	return m.matchQueries.GetByID(ctx, actor.UserID, matchID)
}

// mutate applies op to the row-locked roster and persists it with its outbox entry.
func (m *matchCommandsImpl) mutate(
	ctx context.Context,
	matchID uuid.UUID,
	topic, userID string,
	op func(mt *match.Match, now time.Time) error,
) error {
	return m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		mt, err := tx.Matches().FindForUpdate(ctx, tx.DB(), matchID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrMatchNotFound
			}
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}

		now := m.clock.Now()
		if err := op(mt, now); err != nil {
			return err
		}

		if err := tx.Matches().SaveParticipants(ctx, tx.DB(), mt, now); err != nil {
			if infra.IsKind(err, infra.KindCheckViolated) && infra.ConstraintName(err) == rosterSizeConstraint {
				return errs.ErrMatchFull
			}
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}

		return enqueue(ctx, tx, topic, rosterEvent{
			MatchID:        mt.ID().String(),
			UserID:         userID,
			RemainingSpots: mt.RemainingSpots(),
			OccurredAt:     now,
		}, now)
	})
}
