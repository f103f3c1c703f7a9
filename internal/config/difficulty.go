package config

import "math"

// DifficultyManager scales enemy tuning as a run progresses. The level
// interpolates from the configured starting point to 1.0 as score or
// elapsed ticks approach the progression target.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a manager for the given progression.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty in [0, 1] for the given score and ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemySpeed scales a base patrol speed by the current difficulty, up to
// base * (1 + EnemySpeedMultiplier) at maximum.
func (d *DifficultyManager) EnemySpeed(baseSpeed float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.EnemySpeedMultiplier)
}

// FireInterval shortens a base cannon interval by the current difficulty,
// floored at half a second so fire rates stay survivable.
func (d *DifficultyManager) FireInterval(baseInterval float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	interval := baseInterval / (1.0 + level*d.cfg.Scaling.FireRateMultiplier)
	if interval < 0.5 {
		interval = 0.5
	}
	return interval
}

// clampF restricts val to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
