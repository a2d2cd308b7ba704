package commands

import (
	"context"
	"encoding/json"
	"time"

	"fieldbook/internal/domain/user"
	"fieldbook/internal/infra"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/usecase/shared"
)

// Outbox topics, also used as AMQP routing keys.
const (
	TopicReservationCreated   = "reservation.created"
	TopicReservationCancelled = "reservation.cancelled"
	TopicMatchJoined          = "match.joined"
	TopicMatchLeft            = "match.left"

	notificationKindPush = "push"
)

type reservationEvent struct {
	ReservationID string    `json:"reservation_id"`
	FieldID       string    `json:"field_id"`
	UserID        string    `json:"user_id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type rosterEvent struct {
	MatchID        string    `json:"match_id"`
	UserID         string    `json:"user_id"`
	RemainingSpots int       `json:"remaining_spots"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func enqueue(ctx context.Context, tx shared.Tx, topic string, payload any, now time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "encode notification payload")
	}
	if err := tx.Notifications().CreateJob(ctx, tx.DB(), notificationKindPush, topic, body, now); err != nil {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return nil
}

// loadProfile returns nil for anonymous actors. A signed-in user who never saved
// contact details gets a profile without a phone.
func loadProfile(ctx context.Context, reads shared.CommandReads, actor shared.Actor) (*user.Profile, error) {
	if actor.IsAnonymous() {
		return nil, nil
	}

	p, err := reads.ProfileByID(ctx, actor.UserID)
	if err == nil {
		return p, nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return user.ReconstructProfile(actor.UserID, actor.Email, actor.Name, "", user.Role(actor.Role)), nil
	}
	return nil, errs.Mark(err, errs.ErrStoreUnavailable)
}
