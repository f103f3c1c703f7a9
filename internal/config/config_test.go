package config

import "testing"

func TestDefaultGameplayConfigSane(t *testing.T) {
	cfg := DefaultGameplayConfig()

	if cfg.Physics.Gravity <= 0 {
		t.Error("default gravity must be positive")
	}
	if cfg.Walk.Acceleration <= 0 || cfg.Walk.Deceleration <= 0 {
		t.Error("default walk tuning must be positive")
	}
	if cfg.Player.Lives <= 0 {
		t.Error("default lives must be positive")
	}
	if cfg.Camera.CullInterval <= 0 {
		t.Error("default cull interval must be positive")
	}
}

func TestApplyGameplayPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		lives   int
		enabled bool
	}{
		{DifficultyEasy, 5, true},
		{DifficultyHard, 2, true},
		{DifficultyFixed, 3, false},
	}

	for _, tt := range tests {
		cfg := DefaultGameplayConfig()
		ApplyGameplayPreset(&cfg, tt.preset)
		if cfg.Player.Lives != tt.lives {
			t.Errorf("preset %s: lives = %d, expected %d", tt.preset, cfg.Player.Lives, tt.lives)
		}
		if cfg.Difficulty.Enabled != tt.enabled {
			t.Errorf("preset %s: enabled = %v, expected %v", tt.preset, cfg.Difficulty.Enabled, tt.enabled)
		}
	}
}

func TestDifficultyManagerLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{EnemySpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0 {
		t.Errorf("Level at start = %v, expected 0", got)
	}
	if got := d.Level(0, 50); got != 0.5 {
		t.Errorf("Level at half progression = %v, expected 0.5", got)
	}
	if got := d.Level(0, 1000); got != 1.0 {
		t.Errorf("Level past max = %v, expected clamped 1.0", got)
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 1000); got != 0.3 {
		t.Errorf("Level while disabled = %v, expected the initial level", got)
	}
}

func TestDifficultyManagerEnemyScaling(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{EnemySpeedMultiplier: 0.5, FireRateMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	if got := d.EnemySpeed(40, 0, 100); got != 60 {
		t.Errorf("EnemySpeed at max difficulty = %v, expected 60", got)
	}
	if got := d.FireInterval(4, 0, 100); got != 2 {
		t.Errorf("FireInterval at max difficulty = %v, expected 2", got)
	}
	if got := d.FireInterval(0.6, 0, 100); got != 0.5 {
		t.Errorf("FireInterval below floor = %v, expected clamped 0.5", got)
	}
}
