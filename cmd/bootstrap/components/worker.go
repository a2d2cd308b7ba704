package components

import (
	"context"

	"fieldbook/internal/pkg/config"
	"fieldbook/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewOutboxRelay,
	),
	fx.Invoke(registerOutboxRelay),
)

func registerOutboxRelay(lc fx.Lifecycle, cfg config.Config, relay *worker.OutboxRelay) {
	if !cfg.Outbox.Enabled {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			relay.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			relay.Stop()
			return nil
		},
	})
}
