package components

import (
	"fieldbook/internal/infra/readstore"
	"fieldbook/internal/infra/repository"
	sqlc "fieldbook/internal/infra/sqlc/generated"
	"fieldbook/internal/infra/uow"
	"fieldbook/internal/usecase/queries"
	"fieldbook/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Field
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.FieldReadQueries)),
		),
		fx.Annotate(
			readstore.NewFieldReadStore,
			fx.As(new(queries.FieldReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(queries.SnapshotReadStore)),
		),
		// Match
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MatchViewQueries)),
		),
		fx.Annotate(
			readstore.NewMatchReadStore,
			fx.As(new(queries.MatchReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.ProfileReadStore)),
		),
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.NotificationReadQueries)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(worker.JobStats)),
		),
	),
)

// Transaction-bound repositories are built by the unit of work; only the
// relay's pool-level stores are provided here.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.NotificationWriteQueries)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(worker.JobStore)),
		),
		// Idempotency
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.IdempotencyWriteQueries)),
		),
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(worker.KeySweeper)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
