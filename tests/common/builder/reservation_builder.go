//go:build unit || e2e

package builder

import (
	"time"

	"fieldbook/internal/domain/reservation"
	reqdto "fieldbook/internal/handler/dto/request"
	sqlc "fieldbook/internal/infra/sqlc/generated"
	"fieldbook/internal/pkg/pgconv"
	"fieldbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var Bangkok = mustLoadLocation("Asia/Bangkok")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone(name, 7*60*60)
	}
	return loc
}

type ReservationBuilder struct {
	ID          uuid.UUID
	FieldID     uuid.UUID
	FieldName   string
	UserID      string
	Date        string
	Time        string
	Duration    time.Duration
	PersonCount int
	TotalPrice  decimal.Decimal
	Status      reservation.Status
	CreatedAt   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:          uuid.New(),
		FieldID:     uuid.New(),
		FieldName:   "Court A",
		UserID:      "user-1",
		Date:        "2030-01-15",
		Time:        "10:00",
		Duration:    reservation.DefaultDuration,
		PersonCount: reservation.DefaultPersonCount,
		TotalPrice:  decimal.NewFromInt(150),
		Status:      reservation.StatusActive,
		CreatedAt:   time.Date(2030, 1, 1, 9, 0, 0, 0, Bangkok),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() *reservation.Reservation {
	date, err := reservation.ParseDate(r.Date, Bangkok)
	if err != nil {
		panic(err)
	}
	slot, err := reservation.NewSlot(reservation.MustSlotTime(r.Time), r.Duration)
	if err != nil {
		panic(err)
	}
	return reservation.ReconstructReservation(
		r.ID, r.FieldID, r.UserID, date, slot, r.Status, r.PersonCount, r.TotalPrice, r.CreatedAt, r.CreatedAt,
	)
}

func (r *ReservationBuilder) BuildInfra() sqlc.Reservations {
	date, err := reservation.ParseDate(r.Date, Bangkok)
	if err != nil {
		panic(err)
	}
	return sqlc.Reservations{
		ID:              r.ID,
		FieldID:         r.FieldID,
		UserID:          r.UserID,
		ReservationDate: pgconv.DateToPgtype(date.Time()),
		StartMinute:     int32(reservation.MustSlotTime(r.Time).SinceMidnight()),
		DurationMinutes: int32(r.Duration / time.Minute),
		PersonCount:     int32(r.PersonCount),
		TotalPrice:      pgconv.DecimalToNumeric(r.TotalPrice),
		Status:          r.Status.String(),
		CreatedAt:       pgconv.TimeToPgtype(r.CreatedAt),
		UpdatedAt:       pgconv.TimeToPgtype(r.CreatedAt),
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:              r.ID,
		FieldID:         r.FieldID,
		FieldName:       r.FieldName,
		UserID:          r.UserID,
		Date:            r.Date,
		Time:            r.Time,
		DurationMinutes: int(r.Duration / time.Minute),
		PersonCount:     r.PersonCount,
		TotalPrice:      r.TotalPrice,
		Status:          r.Status.String(),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.CreatedAt,
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		FieldID: r.FieldID,
		Date:    r.Date,
		Time:    r.Time,
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithUser(userID string) *ReservationBuilder {
	r.UserID = userID
	return r
}

func (r *ReservationBuilder) WithSlot(date, at string) *ReservationBuilder {
	r.Date = date
	r.Time = at
	return r
}

func (r *ReservationBuilder) WithPersonCount(n int) *ReservationBuilder {
	r.PersonCount = n
	return r
}

func (r *ReservationBuilder) AsCancelled() *ReservationBuilder {
	r.Status = reservation.StatusCancelled
	return r
}
