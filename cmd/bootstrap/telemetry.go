package bootstrap

import (
	"context"
	"log/slog"

	"agenda-engine/internal/handler/middleware"
	"agenda-engine/internal/infra/telemetry"
	"agenda-engine/internal/pkg/config"
	"agenda-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(
		fx.Annotate(
			NewMetrics,
			fx.As(fx.Self()),
			fx.As(new(shared.Metrics)),
			fx.As(new(middleware.HTTPObserver)),
		),
	),
	fx.Invoke(StartTracing),
)

func NewMetrics(cfg config.Config) *telemetry.Metrics {
	return telemetry.NewMetrics(cfg.Telemetry.ServiceName)
}

func StartTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	shutdown, err := telemetry.SetupTracing(context.Background(), telemetry.TracingConfig{
		ServiceName:  cfg.Telemetry.ServiceName,
		OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
	})
	if err != nil {
		return err
	}
	if cfg.Telemetry.OTLPEndpoint != "" {
		logger.Info("trace export enabled", "endpoint", cfg.Telemetry.OTLPEndpoint)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
