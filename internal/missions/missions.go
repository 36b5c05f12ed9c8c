// Package missions supplies the short mission list shown in the menu.
// Missions are decorative: any failure falls back to a static list and
// never affects a run.
package missions

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
)

// MaxMissions is the number of missions shown in the menu.
const MaxMissions = 3

// ErrNotConfigured is returned by providers that have no endpoint or key.
var ErrNotConfigured = errors.New("missions: provider not configured")

// Mission is one menu mission.
type Mission struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Provider returns missions for a player with the given lifetime run count.
type Provider interface {
	Missions(ctx context.Context, runCount int) ([]Mission, error)
}

// Fallback returns the static mission list.
func Fallback() []Mission {
	return []Mission{
		{ID: "m1", Description: "Collect 50 coins in one run", Completed: false},
		{ID: "m2", Description: "Roll under 3 high barriers", Completed: false},
		{ID: "m3", Description: "Run 1000 m without changing lanes", Completed: false},
	}
}

// Load asks the provider for missions and substitutes the fallback when the
// provider is absent, unconfigured or failing. Missing configuration is
// expected and only logged at debug level.
func Load(ctx context.Context, p Provider, runCount int, logger *log.Logger) []Mission {
	if p == nil {
		return Fallback()
	}

	ms, err := p.Missions(ctx, runCount)
	switch {
	case errors.Is(err, ErrNotConfigured):
		if logger != nil {
			logger.Debug("missions provider not configured, using fallback")
		}
		return Fallback()
	case err != nil:
		if logger != nil {
			logger.Warn("missions unavailable, using fallback", "error", err)
		}
		return Fallback()
	case len(ms) == 0:
		return Fallback()
	}

	if len(ms) > MaxMissions {
		ms = ms[:MaxMissions]
	}
	return ms
}
