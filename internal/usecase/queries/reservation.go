package queries

import (
	"context"
	"time"

	"fieldbook/internal/infra"
	"fieldbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUserFirstPage(ctx context.Context, userID string, limit int32) ([]*ReservationView, error)
	FindByUserKeyset(ctx context.Context, userID string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actorID string, id uuid.UUID) (*ReservationView, error)
	// GetByIDSystem skips the owner check; used for idempotent replays and read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID string, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID string, id uuid.UUID) (*ReservationView, error) {
	rv, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	// Other users' reservations are reported as missing.
	if rv.UserID != actorID {
		return nil, errs.Mark(ErrReservationAccess, errs.ErrReservationNotFound)
	}
	return rv, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return rv, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID string, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*ReservationView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByUserFirstPage(ctx, userID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, errs.Mark(errs.Mark(derr, ErrInvalidCursor), errs.ErrDomainValidation)
		}
		rows, err = q.repo.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	// One extra row tells whether another page exists.
	if len(rows) <= limit {
		return rows, nil, nil
	}
	rows = rows[:limit]
	last := rows[len(rows)-1]
	return rows, &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}, nil
}
