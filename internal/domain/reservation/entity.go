package reservation

import (
	"time"

	"fieldbook/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultDuration    = time.Hour
	DefaultPersonCount = 1
)

type Reservation struct {
	id          uuid.UUID
	fieldID     uuid.UUID
	userID      string
	date        Date
	slot        Slot
	status      Status
	personCount int
	totalPrice  decimal.Decimal
	createdAt   time.Time
	updatedAt   time.Time
}

func ReconstructReservation(
	id, fieldID uuid.UUID,
	userID string,
	date Date,
	slot Slot,
	status Status,
	personCount int,
	totalPrice decimal.Decimal,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		fieldID:     fieldID,
		userID:      userID,
		date:        date,
		slot:        slot,
		status:      status,
		personCount: personCount,
		totalPrice:  totalPrice,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Cancel is the only transition a reservation supports after creation.
func (r *Reservation) Cancel(now time.Time) error {
	if r.status == StatusCancelled {
		return errs.ErrReservationCancelled
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) IsOwnedBy(userID string) bool {
	return r.userID == userID
}

func (r *Reservation) StartsAt() time.Time {
	return r.date.At(r.slot.Start())
}

func (r *Reservation) ID() uuid.UUID               { return r.id }
func (r *Reservation) FieldID() uuid.UUID          { return r.fieldID }
func (r *Reservation) UserID() string              { return r.userID }
func (r *Reservation) Date() Date                  { return r.date }
func (r *Reservation) Slot() Slot                  { return r.slot }
func (r *Reservation) Time() SlotTime              { return r.slot.Start() }
func (r *Reservation) Duration() time.Duration     { return r.slot.Duration() }
func (r *Reservation) Status() Status              { return r.status }
func (r *Reservation) PersonCount() int            { return r.personCount }
func (r *Reservation) TotalPrice() decimal.Decimal { return r.totalPrice }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time        { return r.updatedAt }
