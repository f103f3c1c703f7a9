package config

import (
	_ "embed"
)

//go:embed defaults/gameplay.yaml
var defaultGameplayYAML []byte

// DefaultGameplayConfig returns the default platformer configuration.
func DefaultGameplayConfig() GameplayConfig {
	return GameplayConfig{
		Physics: PhysicsConfig{
			Gravity: 1500,
		},
		Walk: WalkConfig{
			Acceleration: 400,
			Deceleration: 300,
			SlowDrag:     1.0 / 5000,
			FastDrag:     1.0 / 1300,
		},
		Jump: JumpConfig{
			Duration:    0.3,
			Velocity:    200,
			GracePeriod: 0.1,
			SpeedBoost:  0.3,
		},
		Player: PlayerConfig{
			Width:  14,
			Height: 16,
			Lives:  3,
		},
		Enemies: EnemyConfig{
			PacerSpeed:   40,
			BulletSpeed:  80,
			FireInterval: 4,
		},
		Camera: CameraConfig{
			FollowOffset: 100,
			CullMargin:   64,
			CullInterval: 12,
		},
		Collision: CollisionConfig{
			Margin: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 7200,
			},
			Scaling: ScalingConfig{
				EnemySpeedMultiplier: 0.5,
				FireRateMultiplier:   0.5,
			},
		},
	}
}
