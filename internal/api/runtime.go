package api

import (
	"fmt"
	"time"

	"github.com/vigil-labs/vigil/internal/config"
	"github.com/vigil-labs/vigil/internal/infrastructure"
	"github.com/vigil-labs/vigil/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration, including
// the fixed reference zone for calendar-day analytics windows.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Location   *time.Location
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) (*Runtime, error) {
	loc, err := time.LoadLocation(cfg.API.Analytics.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load analytics time zone: %w", err)
	}

	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Pagination: cfg.API.Pagination,
		Location:   loc,
	}, nil
}
