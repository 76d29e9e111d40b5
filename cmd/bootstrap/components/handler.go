package components

import (
	"carhive/internal/handler"
	"carhive/internal/handler/api"
	"carhive/internal/handler/middleware"
	"carhive/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig {
			return cfg.Cookie
		},
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewCarHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
