package bootstrap

import (
	"context"

	"restaurant-booking/internal/infra/broker"
	"restaurant-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewPublisher,
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) broker.Publisher {
	publisher := broker.NewPublisher(cfg.Broker)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}
