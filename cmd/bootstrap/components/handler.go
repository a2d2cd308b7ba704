package components

import (
	"fieldbook/internal/handler"
	"fieldbook/internal/handler/api"
	"fieldbook/internal/handler/middleware"
	"fieldbook/internal/infra/ratelimit"
	"fieldbook/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewFieldHandler,
		api.NewReservationHandler,
		api.NewMatchHandler,
		api.NewProfileHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

// NewRateLimiter returns nil when rate limiting is disabled.
func NewRateLimiter(cfg config.Config, client redis.Cmdable) middleware.RateLimiter {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	return ratelimit.NewFixedWindow(client, cfg.RateLimit.Requests, cfg.RateLimit.Window)
}

func NewHandlers(
	field *api.FieldHandler,
	reservation *api.ReservationHandler,
	match *api.MatchHandler,
	profile *api.ProfileHandler,
) handler.Handlers {
	return handler.Handlers{
		Field:       field,
		Reservation: reservation,
		Match:       match,
		Profile:     profile,
	}
}
