package bootstrap

import (
	"context"

	"fieldbook/internal/infra/mq"
	"fieldbook/internal/pkg/config"
	"fieldbook/internal/worker"

	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Provide(
		fx.Annotate(
			NewPublisher,
			fx.As(new(worker.Publisher)),
		),
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) (*mq.Publisher, error) {
	pub, err := mq.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
