package config

import (
	_ "embed"
	"fmt"

	"agenda-engine/internal/domain/business"

	"github.com/BurntSushi/toml"
)

const defaultFreeMonthlyLimit = 10

//go:embed plans.toml
var defaultPlanCatalog string

type PlanSpec struct {
	MonthlyLimit int `toml:"monthly_limit"`
}

type PlanCatalog struct {
	Plans map[string]PlanSpec `toml:"plans"`
}

// LoadPlanCatalog reads path, or the embedded catalog when path is empty.
func LoadPlanCatalog(path string) (*PlanCatalog, error) {
	var c PlanCatalog
	if path == "" {
		if _, err := toml.Decode(defaultPlanCatalog, &c); err != nil {
			return nil, fmt.Errorf("failed to decode embedded plan catalog: %w", err)
		}
		return &c, nil
	}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, fmt.Errorf("failed to decode plan catalog %s: %w", path, err)
	}
	return &c, nil
}

// MonthlyLimit reports the cap for plan; false means no cap. The free tier is always capped.
func (c *PlanCatalog) MonthlyLimit(plan business.PlanTier) (int, bool) {
	entry, ok := c.Plans[plan.String()]
	if ok && entry.MonthlyLimit > 0 {
		return entry.MonthlyLimit, true
	}
	if plan == business.PlanFree {
		return defaultFreeMonthlyLimit, true
	}
	return 0, false
}
