package queries

import (
	"context"
	"time"

	"fieldbook/internal/domain/field"
	"fieldbook/internal/domain/reservation"
	"fieldbook/internal/infra"
	"fieldbook/internal/pkg/clock"
	"fieldbook/internal/pkg/config"
	"fieldbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type FieldReadStore interface {
	List(ctx context.Context, includeInactive bool) ([]*field.Field, error)
	FindByID(ctx context.Context, id uuid.UUID) (*field.Field, error)
}

// SnapshotReadStore loads the active reservations a capacity computation runs over.
type SnapshotReadStore interface {
	ListActiveByFieldDate(ctx context.Context, fieldID uuid.UUID, date reservation.Date) ([]*reservation.Reservation, error)
}

type FieldQueries interface {
	List(ctx context.Context, includeInactive bool) ([]*FieldView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*FieldView, error)
	// Availability reports remaining capacity for a date, or for one slot when timeStr is set.
	Availability(ctx context.Context, fieldID uuid.UUID, dateStr, timeStr string) (*AvailabilityView, error)
	Schedule(ctx context.Context, fieldID uuid.UUID, dateStr string) (*ScheduleView, error)
}

type fieldQueriesImpl struct {
	fields    FieldReadStore
	snapshots SnapshotReadStore
	clock     clock.Clock
	booking   config.BookingConfig
	loc       *time.Location
}

func NewFieldQueries(fields FieldReadStore, snapshots SnapshotReadStore, clk clock.Clock, booking config.BookingConfig, loc *time.Location) FieldQueries {
	return &fieldQueriesImpl{
		fields:    fields,
		snapshots: snapshots,
		clock:     clk,
		booking:   booking,
		loc:       loc,
	}
}

func (q *fieldQueriesImpl) List(ctx context.Context, includeInactive bool) ([]*FieldView, error) {
	fs, err := q.fields.List(ctx, includeInactive)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	views := make([]*FieldView, len(fs))
	for i, f := range fs {
		views[i] = toFieldView(f)
	}
	return views, nil
}

func (q *fieldQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*FieldView, error) {
	f, err := q.loadField(ctx, id)
	if err != nil {
		return nil, err
	}
	return toFieldView(f), nil
}

func (q *fieldQueriesImpl) Availability(ctx context.Context, fieldID uuid.UUID, dateStr, timeStr string) (*AvailabilityView, error) {
	f, date, existing, err := q.loadDay(ctx, fieldID, dateStr)
	if err != nil {
		return nil, err
	}

	view := &AvailabilityView{
		FieldID:  f.ID(),
		Date:     date.String(),
		Capacity: f.Capacity(),
	}

	var requested *reservation.SlotTime
	if timeStr != "" {
		st, err := reservation.ParseSlotTime(timeStr)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		requested = &st
		view.Time = st.String()
		now := q.clock.Now()
		view.Disabled = reservation.IsTimeSlotDisabled(date, st, now) || !date.At(st).After(now)
	}

	view.Available = reservation.ComputeAvailableCapacity(f, date, requested, existing)
	return view, nil
}

func (q *fieldQueriesImpl) Schedule(ctx context.Context, fieldID uuid.UUID, dateStr string) (*ScheduleView, error) {
	f, date, existing, err := q.loadDay(ctx, fieldID, dateStr)
	if err != nil {
		return nil, err
	}

	slots := reservation.DaySchedule(f, date, q.booking.OpenHour, q.booking.CloseHour, existing, q.clock.Now())
	view := &ScheduleView{
		FieldID:  f.ID(),
		Date:     date.String(),
		Capacity: f.Capacity(),
		Slots:    make([]SlotView, len(slots)),
	}
	for i, s := range slots {
		view.Slots[i] = SlotView{
			Time:      s.Time.String(),
			Available: s.Available,
			Disabled:  s.Disabled,
		}
	}
	return view, nil
}

func (q *fieldQueriesImpl) loadDay(ctx context.Context, fieldID uuid.UUID, dateStr string) (*field.Field, reservation.Date, []*reservation.Reservation, error) {
	if dateStr == "" {
		return nil, reservation.Date{}, nil, errs.ErrIncompleteSelection
	}
	date, err := reservation.ParseDate(dateStr, q.loc)
	if err != nil {
		return nil, reservation.Date{}, nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	f, err := q.loadField(ctx, fieldID)
	if err != nil {
		return nil, reservation.Date{}, nil, err
	}

	existing, err := q.snapshots.ListActiveByFieldDate(ctx, fieldID, date)
	if err != nil {
		return nil, reservation.Date{}, nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return f, date, existing, nil
}

func (q *fieldQueriesImpl) loadField(ctx context.Context, id uuid.UUID) (*field.Field, error) {
	f, err := q.fields.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrFieldNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return f, nil
}

func toFieldView(f *field.Field) *FieldView {
	return &FieldView{
		ID:             f.ID(),
		Name:           f.Name(),
		Capacity:       f.Capacity(),
		PricePerPerson: f.PricePerPerson(),
		IsActive:       f.IsActive(),
	}
}
