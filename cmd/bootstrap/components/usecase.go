package components

import (
	"agenda-engine/internal/domain/appointment"
	"agenda-engine/internal/pkg/clock"
	"agenda-engine/internal/pkg/config"
	"agenda-engine/internal/pkg/jwt"
	"agenda-engine/internal/usecase/commands"
	"agenda-engine/internal/usecase/credential"
	"agenda-engine/internal/usecase/queries"
	"agenda-engine/internal/usecase/quota"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseGuardsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	appointment.NewFactory,
	func(c *config.PlanCatalog) quota.PlanLimits { return c },
	func(c *config.PlanCatalog) queries.PlanLimits { return c },
	func(s *jwt.Service) commands.StateSigner { return s },
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewConfigQueries,
		queries.NewAvailabilityQueries,
		queries.NewOwnerQueries,
	),
)

var usecaseGuardsModule = fx.Module("usecase/guards",
	fx.Provide(
		fx.Annotate(
			credential.NewGuard,
			fx.As(new(credential.AccessProvider)),
		),
		fx.Annotate(
			quota.NewEnforcer,
			fx.As(new(quota.Checker)),
		),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewCancellationCommands,
		commands.NewCalendarConnectCommands,
	),
)
