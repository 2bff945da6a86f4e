package components

import (
	"seat-reservation/internal/handler"
	"seat-reservation/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewLayoutHandler,
	),
	fx.Invoke(handler.NewRouter),
)
