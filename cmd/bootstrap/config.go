package bootstrap

import (
	"agenda-engine/internal/domain/business"
	"agenda-engine/internal/pkg/config"
	"agenda-engine/internal/pkg/localtime"
	"agenda-engine/internal/usecase/commands"
	"agenda-engine/internal/usecase/credential"
	"agenda-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewPlanCatalog,
		NewBusinessDefaults,
		NewTimeouts,
		NewCredentialConfig,
		NewLinks,
	),
)

func NewPlanCatalog(cfg config.Config) (*config.PlanCatalog, error) {
	return config.LoadPlanCatalog(cfg.Schedule.PlanCatalogPath)
}

// NewBusinessDefaults refuses to start when the fallback zone itself cannot be loaded.
func NewBusinessDefaults(cfg config.Config) (business.Defaults, error) {
	loc, err := localtime.LoadZone(cfg.Schedule.DefaultTimezone)
	if err != nil {
		return business.Defaults{}, err
	}
	return business.StandardDefaults(loc), nil
}

func NewTimeouts(cfg config.Config) shared.Timeouts {
	return shared.Timeouts{
		Provider: cfg.Timeouts.Provider,
		Storage:  cfg.Timeouts.Storage,
		Notify:   cfg.Timeouts.Notify,
	}
}

func NewCredentialConfig(cfg config.Config, timeouts shared.Timeouts) credential.Config {
	return credential.Config{
		Attempts:     cfg.Timeouts.CredentialAttempts,
		Backoff:      cfg.Timeouts.CredentialBackoff,
		ReconnectURL: cfg.Links.ReconnectURL,
		Timeouts:     timeouts,
	}
}

func NewLinks(cfg config.Config) commands.Links {
	return commands.Links{CancelBase: cfg.Links.CancelBaseURL}
}
