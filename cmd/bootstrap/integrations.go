package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"agenda-engine/internal/handler/middleware"
	"agenda-engine/internal/infra/cache"
	"agenda-engine/internal/infra/calendar/google"
	"agenda-engine/internal/infra/events"
	"agenda-engine/internal/infra/notify"
	"agenda-engine/internal/pkg/config"
	"agenda-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var IntegrationModule = fx.Module("integrations",
	fx.Provide(
		fx.Annotate(
			NewCalendarProvider,
			fx.As(new(shared.CalendarProvider)),
			fx.As(new(shared.CalendarConnector)),
		),
		NewMailer,
		NewNotifier,
		NewEventPublisher,
		fx.Annotate(
			NewLimiter,
			fx.As(new(middleware.Limiter)),
		),
	),
)

func NewCalendarProvider(cfg config.Config, logger *slog.Logger) *google.Provider {
	return google.NewProvider(cfg.Google, logger)
}

func NewMailer(cfg config.Config, logger *slog.Logger) (notify.Mailer, error) {
	switch cfg.Mail.Driver {
	case "mailersend":
		if cfg.Mail.MailerSendAPIKey == "" {
			return nil, fmt.Errorf("MAILERSEND_API_KEY is required for mail driver %q", cfg.Mail.Driver)
		}
		return notify.NewMailerSend(cfg.Mail.MailerSendAPIKey, cfg.Mail.FromName, cfg.Mail.FromEmail), nil
	case "smtp":
		if cfg.Mail.SMTPHost == "" {
			return nil, fmt.Errorf("SMTP_HOST is required for mail driver %q", cfg.Mail.Driver)
		}
		return notify.NewSMTPMailer(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort, cfg.Mail.SMTPUser, cfg.Mail.SMTPPassword, cfg.Mail.FromEmail), nil
	case "log", "":
		return notify.NewLogMailer(logger), nil
	default:
		return nil, fmt.Errorf("unknown mail driver %q", cfg.Mail.Driver)
	}
}

func NewNotifier(mailer notify.Mailer, logger *slog.Logger) (shared.Notifier, error) {
	return notify.NewDispatcher(mailer, logger)
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventPublisher, error) {
	switch cfg.Events.Driver {
	case "nats":
		conn, err := events.ConnectNATS(cfg.Events.NATSURL)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return conn.Drain()
			},
		})
		return events.NewNATSPublisher(conn, cfg.Events.Subject, logger), nil
	case "kafka":
		writer := events.NewKafkaWriter(cfg.Events.KafkaBrokers, cfg.Events.Subject)
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return writer.Close()
			},
		})
		return events.NewKafkaPublisher(writer, logger), nil
	case "none", "":
		return events.NopPublisher{}, nil
	default:
		return nil, fmt.Errorf("unknown events driver %q", cfg.Events.Driver)
	}
}

// NewLimiter shares counters through Redis when configured, otherwise per process.
func NewLimiter(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) cache.Limiter {
	if cfg.Redis.Addr == "" {
		logger.Info("rate limiting in memory")
		return cache.NewMemoryLimiter(cfg.RateLimit.BookingsPerWindow, cfg.RateLimit.Window)
	}
	rdb := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return cache.NewRedisLimiter(rdb, cfg.RateLimit.BookingsPerWindow, cfg.RateLimit.Window, "agenda:ratelimit:")
}
