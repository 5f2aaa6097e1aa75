package config

import "math"

// DifficultyManager derives difficulty parameters from score and elapsed frames.
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

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the continuous difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(score int, frames int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(frames) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Tier returns the discrete enemy tier: score/points_per_level + 1.
// With progression disabled the tier stays at 1.
func (d *DifficultyManager) Tier(score int) int {
	if !d.IsEnabled() || d.cfg.PointsPerLevel <= 0 || score < 0 {
		return 1
	}
	return score/d.cfg.PointsPerLevel + 1
}

// Speed scales a base speed by the current difficulty level.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, frames int) float64 {
	level := d.Level(score, frames)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
