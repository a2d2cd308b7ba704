package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"fieldbook/internal/domain/reservation"
	"fieldbook/internal/infra"
	"fieldbook/internal/infra/metrics"
	"fieldbook/internal/infra/slotlock"
	"fieldbook/internal/pkg/clock"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/usecase/queries"
	"fieldbook/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	createReservationEndpoint = "POST /api/reservations"
	idempotencyTTL            = 24 * time.Hour
	uniqueUserSlotConstraint  = "uq_reservations_user_slot"
)

type CreateReservationInput struct {
	Actor          shared.Actor
	FieldID        uuid.UUID
	Date           string
	Time           string
	IdempotencyKey *uuid.UUID
}

type CreateReservationResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type ReservationCommands interface {
	Create(ctx context.Context, in CreateReservationInput) (*CreateReservationResult, error)
	Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	locker             shared.SlotLocker
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
	loc                *time.Location
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	locker shared.SlotLocker,
	reservationQueries queries.ReservationQueries,
	clk clock.Clock,
	loc *time.Location,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		locker:             locker,
		reservationQueries: reservationQueries,
		clock:              clk,
		loc:                loc,
	}
}

func (r *reservationCommandsImpl) Create(ctx context.Context, in CreateReservationInput) (result *CreateReservationResult, err error) {
	defer func() {
		if result == nil || !result.IsReplayed {
			metrics.ObserveReservation(err)
		}
	}()

	if in.Actor.IsAnonymous() {
		return nil, errs.ErrAuthRequired
	}

	date, st, err := r.parseSelection(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	reads := r.uow.CommandReads()
	profile, err := loadProfile(ctx, reads, in.Actor)
	if err != nil {
		return nil, err
	}

	f, err := reads.FieldByID(ctx, in.FieldID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrFieldNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	if date != nil {
		release, err := r.acquireSlot(ctx, in.FieldID, *date)
		if err != nil {
			return nil, err
		}
		defer func() {
			if relErr := release(context.WithoutCancel(ctx)); relErr != nil {
				slog.Warn("failed to release slot lock", "field_id", in.FieldID, "error", relErr.Error())
			}
		}()
	}

	requestHash := calculateRequestHash(in)

	var reservationID uuid.UUID
	var replayed bool
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reservationID, replayed = uuid.Nil, false
		now := r.clock.Now()

		if in.IdempotencyKey != nil {
			prior, err := r.claimIdempotencyKey(ctx, tx, *in.IdempotencyKey, in.Actor.UserID, requestHash, now)
			if err != nil {
				return err
			}
			if prior != uuid.Nil {
				reservationID, replayed = prior, true
				return nil
			}
		}

		req := reservation.Request{User: profile, Field: f, Date: date, Time: st}
		var existing []*reservation.Reservation
		if date != nil {
			if err := tx.Reservations().LockSlot(ctx, tx.DB(), f.ID(), *date); err != nil {
				return errs.Mark(err, errs.ErrStoreUnavailable)
			}
			existing, err = tx.Reservations().ListActiveByFieldDate(ctx, tx.DB(), f.ID(), *date)
			if err != nil {
				return errs.Mark(err, errs.ErrStoreUnavailable)
			}
		}

		res, err := reservation.RequestReservation(req, existing, now)
		if err != nil {
			return err
		}

		id, err := tx.Reservations().Create(ctx, tx.DB(), res)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintName(err) == uniqueUserSlotConstraint {
				return errs.ErrDuplicateReservation
			}
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
		reservationID = id

		if err := enqueue(ctx, tx, TopicReservationCreated, reservationEvent{
			ReservationID: id.String(),
			FieldID:       res.FieldID().String(),
			UserID:        res.UserID(),
			Date:          res.Date().String(),
			Time:          res.Time().String(),
			OccurredAt:    now,
		}, now); err != nil {
			return err
		}

		if in.IdempotencyKey != nil {
			if err := tx.Idempotency().MarkCompleted(ctx, tx.DB(), *in.IdempotencyKey, in.Actor.UserID, id); err != nil {
				return errs.Mark(err, errs.ErrStoreUnavailable)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write from the read store
	view, err := r.reservationQueries.GetByIDSystem(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	return &CreateReservationResult{Reservation: view, IsReplayed: replayed}, nil
}

func (r *reservationCommandsImpl) parseSelection(dateStr, timeStr string) (*reservation.Date, *reservation.SlotTime, error) {
	var date *reservation.Date
	if dateStr != "" {
		d, err := reservation.ParseDate(dateStr, r.loc)
		if err != nil {
			return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		date = &d
	}

	var st *reservation.SlotTime
	if timeStr != "" {
		t, err := reservation.ParseSlotTime(timeStr)
		if err != nil {
			return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		st = &t
	}
	return date, st, nil
}

func (r *reservationCommandsImpl) acquireSlot(ctx context.Context, fieldID uuid.UUID, date reservation.Date) (func(context.Context) error, error) {
	started := time.Now()
	release, err := r.locker.Acquire(ctx, slotlock.Key(fieldID, date.String()))
	metrics.ObserveSlotLockWait(time.Since(started).Seconds())
	if err != nil {
		return nil, err
	}
	return release, nil
}

// claimIdempotencyKey returns the reservation recorded for a completed key,
// or uuid.Nil once this transaction owns the key.
func (r *reservationCommandsImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key uuid.UUID,
	userID, requestHash string,
	now time.Time,
) (uuid.UUID, error) {
	expiresAt := now.Add(idempotencyTTL)

	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, createReservationEndpoint, requestHash, expiresAt)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	if inserted {
		return uuid.Nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID, now)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, errs.ErrStoreUnavailable)
		}
		claimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, userID, createReservationEndpoint, requestHash, now, expiresAt)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrStoreUnavailable)
		}
		if !claimed {
			return uuid.Nil, errs.ErrIdempotencyInProgress
		}
		return uuid.Nil, nil
	}

	if existing.RequestHash != requestHash {
		return uuid.Nil, errs.ErrIdempotencyKeyMismatch
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultReservationID == nil {
			return uuid.Nil, errs.New("completed idempotency key missing reservation ID")
		}
		return *existing.ResultReservationID, nil
	case shared.IdempotencyStatusProcessing:
		return uuid.Nil, errs.ErrIdempotencyInProgress
	default:
		return uuid.Nil, errs.New("invalid idempotency key status")
	}
}

func (r *reservationCommandsImpl) Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.ReservationView, error) {
	if actor.IsAnonymous() {
		return nil, errs.ErrAuthRequired
	}

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrReservationNotFound
			}
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
		// Other users' reservations are reported as missing.
		if !res.IsOwnedBy(actor.UserID) {
			return errs.ErrReservationNotFound
		}

		now := r.clock.Now()
		if err := res.Cancel(now); err != nil {
			return err
		}
		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res); err != nil {
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}

		return enqueue(ctx, tx, TopicReservationCancelled, reservationEvent{
			ReservationID: res.ID().String(),
			FieldID:       res.FieldID().String(),
			UserID:        res.UserID(),
			Date:          res.Date().String(),
			Time:          res.Time().String(),
			OccurredAt:    now,
		}, now)
	})
	if err != nil {
		return nil, err
	}

	return r.reservationQueries.GetByIDSystem(ctx, id)
}

func calculateRequestHash(in CreateReservationInput) string {
	hash := sha256.Sum256([]byte(in.FieldID.String() + "|" + in.Date + "|" + in.Time))
	return hex.EncodeToString(hash[:])
}
