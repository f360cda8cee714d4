package components

import (
	"restaurant-booking/internal/handler"
	"restaurant-booking/internal/handler/api"
	"restaurant-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewAllocationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(
		middleware.RegisterValidators,
		handler.NewRouter,
	),
)
