package components

import (
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) clock.Clock {
		return clock.NewRealClockIn(cfg.Booking.Location())
	},
	func(cfg config.Config) queries.AllocationSettings {
		return queries.AllocationSettings{
			DefaultToleranceMin: cfg.Allocation.DefaultToleranceMin,
			LegacyOffset:        cfg.Allocation.LegacyOffset(),
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAllocationQueries,
	),
)
