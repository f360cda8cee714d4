package components

import (
	"context"
	"log/slog"

	"restaurant-booking/internal/infra/broker"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/usecase/shared"
	"restaurant-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewOutboxDispatcher,
	),
	fx.Invoke(startOutboxDispatcher),
)

func NewOutboxDispatcher(uow shared.OutboxUnitOfWork, publisher broker.Publisher, clk clock.Clock, cfg config.Config) *worker.OutboxDispatcher {
	return worker.NewOutboxDispatcher(uow, publisher, clk, cfg.Outbox)
}

func startOutboxDispatcher(lc fx.Lifecycle, d *worker.OutboxDispatcher, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("📮 通知ディスパッチャーを起動します")
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("通知ディスパッチャーを停止します")
			return d.Stop(ctx)
		},
	})
}
