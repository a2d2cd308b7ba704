package readstore

import (
	"context"
	"time"

	"fieldbook/internal/domain/reservation"
	"fieldbook/internal/infra"
	"fieldbook/internal/infra/repository/converter"
	sqlc "fieldbook/internal/infra/sqlc/generated"
	"fieldbook/internal/pkg/pgconv"
	"fieldbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	ListReservationsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByUserParams) ([]sqlc.ListReservationsByUserRow, error)
	ListActiveReservationsByFieldDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveReservationsByFieldDateParams) ([]sqlc.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
	loc     *time.Location
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX, loc *time.Location) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
		loc:     loc,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return r.toView(sqlc.ListReservationsByUserRow(row))
}

func (r *ReservationReadStore) FindByUserFirstPage(ctx context.Context, userID string, limit int32) ([]*queries.ReservationView, error) {
	return r.listByUser(ctx, sqlc.ListReservationsByUserParams{
		UserID:   userID,
		RowLimit: limit,
	})
}

func (r *ReservationReadStore) FindByUserKeyset(ctx context.Context, userID string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationView, error) {
	return r.listByUser(ctx, sqlc.ListReservationsByUserParams{
		UserID:         userID,
		AfterCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		AfterID:        pgtype.UUID{Bytes: lastID, Valid: true},
		RowLimit:       limit,
	})
}

func (r *ReservationReadStore) listByUser(ctx context.Context, params sqlc.ListReservationsByUserParams) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByUser(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		view, err := r.toView(row)
		if err != nil {
			return nil, err
		}
		result[i] = view
	}
	return result, nil
}

// ListActiveByFieldDate reads outside any transaction; the result is advisory only.
func (r *ReservationReadStore) ListActiveByFieldDate(ctx context.Context, fieldID uuid.UUID, date reservation.Date) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListActiveReservationsByFieldDate(ctx, r.db, sqlc.ListActiveReservationsByFieldDateParams{
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

func (r *ReservationReadStore) toView(row sqlc.ListReservationsByUserRow) (*queries.ReservationView, error) {
	price, err := pgconv.DecimalFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode total price", err, infra.KindDBFailure)
	}

	date := pgconv.DateFromPgtype(row.ReservationDate, r.loc)
	return &queries.ReservationView{
		ID:              row.ID,
		FieldID:         row.FieldID,
		FieldName:       row.FieldName,
		UserID:          row.UserID,
		Date:            date.Format(reservation.DateLayout),
		Time:            formatMinutes(row.StartMinute),
		DurationMinutes: int(row.DurationMinutes),
		PersonCount:     int(row.PersonCount),
		TotalPrice:      price,
		Status:          row.Status,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func formatMinutes(m int32) string {
	st, err := reservation.NewSlotTime(int(m)/60, int(m)%60)
	if err != nil {
		return ""
	}
	return st.String()
}
