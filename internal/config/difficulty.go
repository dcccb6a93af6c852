package config

import "math"

// DifficultyRamp derives the hazard multiplier and spawn interval from the
// elapsed session time. Only whole seconds count, so the values change in
// steps rather than continuously within a second.
type DifficultyRamp struct {
	cfg RampConfig
}

// NewDifficultyRamp creates a ramp from its configuration.
func NewDifficultyRamp(cfg RampConfig) *DifficultyRamp {
	return &DifficultyRamp{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyRamp) IsEnabled() bool {
	return d.cfg.Enabled
}

// Multiplier returns 1 + floor(seconds)/SecondsPerLevel, or 1 when disabled.
func (d *DifficultyRamp) Multiplier(elapsedSeconds float64) float64 {
	if !d.cfg.Enabled || d.cfg.SecondsPerLevel <= 0 {
		return 1
	}
	return 1 + wholeSeconds(elapsedSeconds)/d.cfg.SecondsPerLevel
}

// SpawnInterval returns the ticks between hazard spawns:
// max(MinInterval, BaseInterval - IntervalStep*floor(seconds)).
// Disabled ramps always return BaseInterval.
func (d *DifficultyRamp) SpawnInterval(elapsedSeconds float64) float64 {
	if !d.cfg.Enabled {
		return d.cfg.BaseInterval
	}
	return math.Max(d.cfg.MinInterval, d.cfg.BaseInterval-d.cfg.IntervalStep*wholeSeconds(elapsedSeconds))
}

func wholeSeconds(s float64) float64 {
	if s < 0 {
		return 0
	}
	return math.Floor(s)
}
