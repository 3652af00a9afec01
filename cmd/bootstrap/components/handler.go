package components

import (
	"go.uber.org/fx"

	"pourup/internal/handler"
	"pourup/internal/handler/api"
	"pourup/internal/handler/middleware"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewWebsiteBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
