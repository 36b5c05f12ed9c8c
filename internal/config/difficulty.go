package config

import "math"

// DifficultyManager derives the speed progression of a run from the
// difficulty section.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables speed progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether speed progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the initial difficulty level.
func (d *DifficultyManager) Level() float64 {
	return d.initialLevel
}

// StartSpeed returns the speed a run begins with. Higher levels start part
// of the way up the speed range.
func (d *DifficultyManager) StartSpeed(s SpeedConfig) float64 {
	headStart := clampF(d.cfg.HeadStart, 0.0, 1.0)
	start := s.Initial + d.initialLevel*headStart*(s.Max-s.Initial)
	return clampF(start, s.Initial, s.Max)
}

// Increment returns the per-frame speed increase; zero when progression
// is disabled.
func (d *DifficultyManager) Increment(s SpeedConfig) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	return s.Increment
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
