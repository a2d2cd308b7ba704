package queries

import (
	"context"

	"fieldbook/internal/domain/match"
	"fieldbook/internal/infra"
	"fieldbook/internal/pkg/clock"
	"fieldbook/internal/pkg/errs"

	"github.com/google/uuid"
)

// MatchRecord pairs the roster aggregate with the display name of its field.
type MatchRecord struct {
	Match     *match.Match
	FieldName string
}

type MatchReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MatchRecord, error)
}

type MatchQueries interface {
	GetByID(ctx context.Context, actorID string, id uuid.UUID) (*MatchView, error)
}

type matchQueriesImpl struct {
	repo  MatchReadStore
	clock clock.Clock
}

func NewMatchQueries(repo MatchReadStore, clk clock.Clock) MatchQueries {
	return &matchQueriesImpl{repo: repo, clock: clk}
}

func (q *matchQueriesImpl) GetByID(ctx context.Context, actorID string, id uuid.UUID) (*MatchView, error) {
	rec, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrMatchNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return ToMatchView(rec.Match, rec.FieldName, actorID, q.clock), nil
}

// ToMatchView renders a match as seen by actorID at the clock's current time.
func ToMatchView(m *match.Match, fieldName, actorID string, clk clock.Clock) *MatchView {
	ps := m.Participants()
	view := &MatchView{
		ID:              m.ID(),
		FieldID:         m.FieldID(),
		FieldName:       fieldName,
		Date:            m.Date().String(),
		Time:            m.Time().String(),
		DurationMinutes: int(m.Duration().Minutes()),
		MaxParticipants: m.MaxParticipants(),
		Participants:    make([]ParticipantView, len(ps)),
		Description:     m.Description(),
		State:           m.State(clk.Now()).String(),
		RemainingSpots:  m.RemainingSpots(),
		Joined:          actorID != "" && m.IsParticipant(actorID),
	}
	for i, p := range ps {
		view.Participants[i] = toParticipantView(p)
	}
	return view
}

func toParticipantView(p match.Participant) ParticipantView {
	rec, ok := p.Record()
	if !ok {
		return ParticipantView{UserID: p.UserID(), Legacy: true}
	}
	joinedAt := rec.JoinedAt
	return ParticipantView{
		UserID:    rec.UserID,
		UserEmail: rec.UserEmail,
		UserName:  rec.UserName,
		JoinedAt:  &joinedAt,
	}
}
