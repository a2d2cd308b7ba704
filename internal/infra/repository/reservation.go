package repository

import (
	"context"
	"time"

	"fieldbook/internal/domain/reservation"
	"fieldbook/internal/infra"
	"fieldbook/internal/infra/repository/converter"
	sqlc "fieldbook/internal/infra/sqlc/generated"
	"fieldbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	AcquireSlotLock(ctx context.Context, db sqlc.DBTX, lockKey string) error
	ListActiveReservationsByFieldDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveReservationsByFieldDateParams) ([]sqlc.Reservations, error)
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) error
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	loc     *time.Location
}

func NewReservationRepository(queries ReservationWriteQueries, loc *time.Location) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		loc:     loc,
	}
}

func SlotLockKey(fieldID uuid.UUID, date reservation.Date) string {
	return "reservation:" + fieldID.String() + ":" + date.String()
}

func (r *ReservationRepository) LockSlot(ctx context.Context, tx sqlc.DBTX, fieldID uuid.UUID, date reservation.Date) error {
	if err := r.queries.AcquireSlotLock(ctx, tx, SlotLockKey(fieldID, date)); err != nil {
		return infra.WrapRepoErr("failed to acquire slot lock", err)
	}
	return nil
}

func (r *ReservationRepository) ListActiveByFieldDate(ctx context.Context, tx sqlc.DBTX, fieldID uuid.UUID, date reservation.Date) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListActiveReservationsByFieldDate(ctx, tx, sqlc.ListActiveReservationsByFieldDateParams{
		FieldID:         fieldID,
		ReservationDate: pgconv.DateToPgtype(date.Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations", err)
	}

	out, err := converter.ReservationsFromRows(rows, r.loc)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservations", err, infra.KindDBFailure)
	}
	return out, nil
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	id, err := r.queries.CreateReservation(ctx, tx, converter.ReservationToCreateParams(res))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	res, err := converter.ReservationFromRow(row, r.loc)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	err := r.queries.UpdateReservationStatus(ctx, tx, sqlc.UpdateReservationStatusParams{
		ID:        res.ID(),
		Status:    res.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	return nil
}
