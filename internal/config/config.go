// Package config provides YAML-based gameplay configuration loading and
// difficulty management for the platformer.
package config

// GameplayConfig contains all tunable parameters for a platformer session.
type GameplayConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Walk       WalkConfig       `yaml:"walk"`
	Jump       JumpConfig       `yaml:"jump"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Camera     CameraConfig     `yaml:"camera"`
	Collision  CollisionConfig  `yaml:"collision"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines world-level physics parameters.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // world units per second squared
}

// WalkConfig defines horizontal movement parameters.
type WalkConfig struct {
	Acceleration float64 `yaml:"acceleration"`
	Deceleration float64 `yaml:"deceleration"`
	SlowDrag     float64 `yaml:"slow_drag"` // drag factor while walking
	FastDrag     float64 `yaml:"fast_drag"` // drag factor while running
}

// JumpConfig defines jump parameters.
type JumpConfig struct {
	Duration    float64 `yaml:"duration"`     // max boost time per jump, seconds
	Velocity    float64 `yaml:"velocity"`     // base upward speed
	GracePeriod float64 `yaml:"grace_period"` // early-press window, seconds
	SpeedBoost  float64 `yaml:"speed_boost"`  // extra height per unit of run speed
}

// PlayerConfig defines the player entity's shape and starting resources.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Lives  int     `yaml:"lives"`
}

// EnemyConfig defines enemy tuning.
type EnemyConfig struct {
	PacerSpeed   float64 `yaml:"pacer_speed"` // patrol speed, world units per second
	BulletSpeed  float64 `yaml:"bullet_speed"`
	FireInterval float64 `yaml:"fire_interval"` // seconds between cannon shots
}

// CameraConfig defines viewport follow and culling parameters.
type CameraConfig struct {
	FollowOffset float64 `yaml:"follow_offset"` // focus distance from the left edge
	CullMargin   float64 `yaml:"cull_margin"`   // world units beyond the viewport kept live
	CullInterval int     `yaml:"cull_interval"` // ticks between active-set refreshes
}

// CollisionConfig defines tile sweep parameters.
type CollisionConfig struct {
	Margin float64 `yaml:"margin"` // sweep lookahead margin, world units
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	EnemySpeedMultiplier float64 `yaml:"enemy_speed_multiplier"` // added to enemy speed at max difficulty
	FireRateMultiplier   float64 `yaml:"fire_rate_multiplier"`   // added to cannon fire rate at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
