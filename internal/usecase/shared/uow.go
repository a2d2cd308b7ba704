package shared

import (
	"context"
	"time"

	"fieldbook/internal/domain/field"
	"fieldbook/internal/domain/match"
	"fieldbook/internal/domain/reservation"
	"fieldbook/internal/domain/user"
	sqlc "fieldbook/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Matches() MatchRepository
	Users() UserRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	FieldByID(ctx context.Context, id uuid.UUID) (*field.Field, error)
	// ProfileByID returns a KindNotFound repository error when the user never saved a profile.
	ProfileByID(ctx context.Context, userID string) (*user.Profile, error)
	// IdempotencyByKey reports a key that expired before now as not found.
	IdempotencyByKey(ctx context.Context, key uuid.UUID, userID string, now time.Time) (*IdempotencyRecord, error)
}

type ReservationRepository interface {
	// LockSlot serializes writers for one field and day until the transaction ends.
	LockSlot(ctx context.Context, tx sqlc.DBTX, fieldID uuid.UUID, date reservation.Date) error
	ListActiveByFieldDate(ctx context.Context, tx sqlc.DBTX, fieldID uuid.UUID, date reservation.Date) ([]*reservation.Reservation, error)
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
}

type MatchRepository interface {
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*match.Match, error)
	SaveParticipants(ctx context.Context, tx sqlc.DBTX, m *match.Match, now time.Time) error
}

type UserRepository interface {
	UpsertContact(ctx context.Context, tx sqlc.DBTX, p *user.Profile) (*user.Profile, error)
}

type IdempotencyRepository interface {
	// TryInsert reports whether this call created the key.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	// ClaimExpired takes over a key that expired before now.
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID, endpoint, requestHash string, now, expiresAt time.Time) (bool, error)
	MarkCompleted(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID string, reservationID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

// SlotLocker guards a key across processes. The returned release is safe to call once.
type SlotLocker interface {
	Acquire(ctx context.Context, key string) (release func(context.Context) error, err error)
}
