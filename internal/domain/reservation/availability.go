package reservation

import (
	"time"

	"fieldbook/internal/domain/field"
	"fieldbook/internal/domain/user"
	"fieldbook/internal/pkg/errs"

	"github.com/google/uuid"
)

// ComputeAvailableCapacity returns the capacity left for a one-hour slot at requested.
// A nil requested time yields the raw field capacity. Each conflicting active
// reservation consumes its person count.
func ComputeAvailableCapacity(f *field.Field, date Date, requested *SlotTime, existing []*Reservation) int {
	if requested == nil {
		return f.Capacity()
	}
	want := Slot{start: *requested, duration: DefaultDuration}

	used := 0
	for _, r := range existing {
		if !r.IsActive() || r.fieldID != f.ID() || !r.date.Equal(date) {
			continue
		}
		if want.Overlaps(r.slot) {
			used += r.personCount
		}
	}
	return max(0, f.Capacity()-used)
}

// IsTimeSlotDisabled reports whether st can no longer be picked. Only today is
// restricted, at hour granularity: the current hour and earlier are disabled.
func IsTimeSlotDisabled(date Date, st SlotTime, now time.Time) bool {
	if !date.Equal(DateOf(now.In(date.Location()))) {
		return false
	}
	return st.Hour() <= now.In(date.Location()).Hour()
}

func HasExistingUserReservation(userID string, st SlotTime, existing []*Reservation) bool {
	for _, r := range existing {
		if r.IsActive() && r.userID == userID && r.slot.Start() == st {
			return true
		}
	}
	return false
}

// Request is a user's slot selection. Date and Time are nil until picked.
type Request struct {
	User  *user.Profile
	Field *field.Field
	Date  *Date
	Time  *SlotTime
}

// RequestReservation validates a selection against a snapshot of the field's
// active reservations for that day and builds the reservation to persist.
// It performs no locking; callers must hold the snapshot stable until the write.
func RequestReservation(req Request, existing []*Reservation, now time.Time) (*Reservation, error) {
	if !req.User.HasContact() {
		return nil, errs.ErrMissingContactInfo
	}
	if req.Date == nil || req.Time == nil {
		return nil, errs.ErrIncompleteSelection
	}
	date, st := *req.Date, *req.Time

	if IsTimeSlotDisabled(date, st, now) {
		return nil, errs.ErrPastTimeSelected
	}
	if HasExistingUserReservation(req.User.ID(), st, existing) {
		return nil, errs.ErrDuplicateReservation
	}
	if ComputeAvailableCapacity(req.Field, date, &st, existing) <= 0 {
		return nil, errs.ErrCapacityExceeded
	}
	if !date.At(st).After(now) {
		return nil, errs.ErrPastDateSelected
	}
	if !req.Field.IsActive() {
		return nil, errs.ErrFieldInactive
	}

	return &Reservation{
		id:          uuid.New(),
		fieldID:     req.Field.ID(),
		userID:      req.User.ID(),
		date:        date,
		slot:        Slot{start: st, duration: DefaultDuration},
		status:      StatusActive,
		personCount: DefaultPersonCount,
		totalPrice:  req.Field.PricePerPerson().Mul(decimalFromInt(DefaultPersonCount)),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}
