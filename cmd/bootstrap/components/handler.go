package components

import (
	"agenda-engine/internal/handler"
	"agenda-engine/internal/handler/api"
	"agenda-engine/internal/handler/middleware"
	"agenda-engine/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		api.NewOwnerHandler,
		api.NewOAuthHandler,
		func(s *jwt.Service) middleware.TokenValidator { return s },
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
