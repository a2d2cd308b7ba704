package components

import (
	"time"

	"fieldbook/internal/infra/slotlock"
	"fieldbook/internal/pkg/clock"
	"fieldbook/internal/pkg/config"
	"fieldbook/internal/usecase"
	"fieldbook/internal/usecase/commands"
	"fieldbook/internal/usecase/queries"
	"fieldbook/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(loc *time.Location) clock.Clock {
		return clock.NewRealClock(loc)
	},
	NewSlotLocker,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewMatchCommands,
		commands.NewProfileCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewFieldQueries,
		queries.NewReservationQueries,
		queries.NewMatchQueries,
		queries.NewProfileQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewSlotLocker(client redis.Cmdable, cfg config.Config) shared.SlotLocker {
	return slotlock.NewRedisLocker(client, cfg.Redis.SlotLockTTL, cfg.Redis.LockWait)
}
