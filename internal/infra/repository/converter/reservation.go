package converter

import (
	"fmt"
	"time"

	"fieldbook/internal/domain/field"
	"fieldbook/internal/domain/reservation"
	"fieldbook/internal/domain/user"
	sqlc "fieldbook/internal/infra/sqlc/generated"
	"fieldbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToCreateParams(r *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:              r.ID(),
		FieldID:         r.FieldID(),
		UserID:          r.UserID(),
		ReservationDate: pgconv.DateToPgtype(r.Date().Time()),
		StartMinute:     int32(r.Time().SinceMidnight()),
		DurationMinutes: int32(r.Duration() / time.Minute),
		PersonCount:     int32(r.PersonCount()),
		TotalPrice:      pgconv.DecimalToNumeric(r.TotalPrice()),
		Status:          r.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ReservationFromRow(row sqlc.Reservations, loc *time.Location) (*reservation.Reservation, error) {
	return reservationFromColumns(
		row.ID, row.FieldID, row.UserID, row.ReservationDate, row.StartMinute, row.DurationMinutes,
		row.PersonCount, row.TotalPrice, row.Status, row.CreatedAt, row.UpdatedAt, loc,
	)
}

func ReservationsFromRows(rows []sqlc.Reservations, loc *time.Location) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		r, err := ReservationFromRow(row, loc)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func reservationFromColumns(
	id, fieldID uuid.UUID,
	userID string,
	date pgtype.Date,
	startMinute, durationMinutes, personCount int32,
	totalPrice pgtype.Numeric,
	status string,
	createdAt, updatedAt pgtype.Timestamptz,
	loc *time.Location,
) (*reservation.Reservation, error) {
	slot, err := SlotFromMinutes(startMinute, durationMinutes)
	if err != nil {
		return nil, err
	}
	price, err := pgconv.DecimalFromNumeric(totalPrice)
	if err != nil {
		return nil, fmt.Errorf("reservation %s total_price: %w", id, err)
	}
	st := reservation.Status(status)
	if !st.IsValid() {
		return nil, fmt.Errorf("reservation %s: unknown status %q", id, status)
	}

	return reservation.ReconstructReservation(
		id, fieldID, userID,
		reservation.DateOf(pgconv.DateFromPgtype(date, loc)),
		slot, st, int(personCount), price,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func SlotFromMinutes(startMinute, durationMinutes int32) (reservation.Slot, error) {
	start, err := reservation.NewSlotTime(int(startMinute)/60, int(startMinute)%60)
	if err != nil {
		return reservation.Slot{}, err
	}
	return reservation.NewSlot(start, time.Duration(durationMinutes)*time.Minute)
}

func FieldFromRow(row sqlc.Fields) (*field.Field, error) {
	price, err := pgconv.DecimalFromNumeric(row.PricePerPerson)
	if err != nil {
		return nil, fmt.Errorf("field %s price_per_person: %w", row.ID, err)
	}
	return field.ReconstructField(row.ID, row.Name, int(row.Capacity), price, row.IsActive), nil
}

func ProfileFromRow(row sqlc.Users) *user.Profile {
	return user.ReconstructProfile(row.ID, row.Email, row.DisplayName, row.Phone, user.Role(row.Role))
}
