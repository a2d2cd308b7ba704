//go:build unit

package queries_test

import (
	"context"
	"time"

	"fieldbook/internal/domain/field"
	"fieldbook/internal/domain/reservation"
	"fieldbook/internal/domain/user"
	"fieldbook/internal/infra"
	"fieldbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var errNoRows = infra.WrapRepoErr("lookup", pgx.ErrNoRows)

type fakeFields struct {
	fields map[uuid.UUID]*field.Field
	err    error
}

func (f *fakeFields) List(_ context.Context, includeInactive bool) ([]*field.Field, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*field.Field
	for _, fl := range f.fields {
		if includeInactive || fl.IsActive() {
			out = append(out, fl)
		}
	}
	return out, nil
}

func (f *fakeFields) FindByID(_ context.Context, id uuid.UUID) (*field.Field, error) {
	if f.err != nil {
		return nil, f.err
	}
	fl, ok := f.fields[id]
	if !ok {
		return nil, errNoRows
	}
	return fl, nil
}

type fakeSnapshots struct {
	rows []*reservation.Reservation
	err  error
}

func (f *fakeSnapshots) ListActiveByFieldDate(_ context.Context, fieldID uuid.UUID, date reservation.Date) ([]*reservation.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*reservation.Reservation
	for _, r := range f.rows {
		if r.FieldID() == fieldID && r.Date().Equal(date) && r.IsActive() {
			out = append(out, r)
		}
	}
	return out, nil
}

type keysetCall struct {
	createdAt time.Time
	id        uuid.UUID
	limit     int32
}

type fakeReservations struct {
	byID      map[uuid.UUID]*queries.ReservationView
	page      []*queries.ReservationView
	firstPage []int32
	keyset    []keysetCall
	err       error
}

func (f *fakeReservations) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	if f.err != nil {
		return nil, f.err
	}
	rv, ok := f.byID[id]
	if !ok {
		return nil, errNoRows
	}
	return rv, nil
}

func (f *fakeReservations) FindByUserFirstPage(_ context.Context, _ string, limit int32) ([]*queries.ReservationView, error) {
	f.firstPage = append(f.firstPage, limit)
	return f.take(limit), f.err
}

func (f *fakeReservations) FindByUserKeyset(_ context.Context, _ string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationView, error) {
	f.keyset = append(f.keyset, keysetCall{createdAt: lastCreatedAt, id: lastID, limit: limit})
	return f.take(limit), f.err
}

func (f *fakeReservations) take(limit int32) []*queries.ReservationView {
	if int(limit) < len(f.page) {
		return f.page[:limit]
	}
	return f.page
}

type fakeMatches struct {
	rec *queries.MatchRecord
	err error
}

func (f *fakeMatches) FindByID(_ context.Context, id uuid.UUID) (*queries.MatchRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.rec == nil || f.rec.Match.ID() != id {
		return nil, errNoRows
	}
	return f.rec, nil
}

type fakeProfiles struct {
	profile *user.Profile
	err     error
}

func (f *fakeProfiles) FindByID(_ context.Context, userID string) (*user.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.profile == nil || f.profile.ID() != userID {
		return nil, errNoRows
	}
	return f.profile, nil
}
