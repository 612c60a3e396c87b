package bootstrap

import (
	"agenda-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	TelemetryModule,
	IntegrationModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
