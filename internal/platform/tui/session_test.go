package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/entities"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/sim"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()

	def, err := levels.NewLoader("").LoadByID("1-1")
	if err != nil {
		t.Fatalf("LoadByID: %v", err)
	}

	s, err := NewSession(def, testConfig(), nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestSessionStepAdvancesWorld(t *testing.T) {
	s := newTestSession(t)
	now := time.Now()

	for i := 0; i < 10; i++ {
		s.Step(1.0/60.0, now)
	}

	if got := s.world.Tick(); got != 10 {
		t.Errorf("tick = %d, want 10", got)
	}
	if s.State != StatePlaying {
		t.Errorf("state = %v, want StatePlaying", s.State)
	}
}

func TestSessionPauseStopsSimulation(t *testing.T) {
	s := newTestSession(t)
	now := time.Now()

	s.TogglePause()
	s.Step(1.0/60.0, now)

	if got := s.world.Tick(); got != 0 {
		t.Errorf("paused tick = %d, want 0", got)
	}

	s.TogglePause()
	s.Step(1.0/60.0, now)
	if got := s.world.Tick(); got != 1 {
		t.Errorf("resumed tick = %d, want 1", got)
	}
}

func TestSessionInputMovesPlayer(t *testing.T) {
	s := newTestSession(t)
	now := time.Now()
	startX := s.player.Pos.X

	for i := 0; i < 30; i++ {
		s.Press([]core.Action{core.ActionRight}, now)
		s.Step(1.0/60.0, now)
	}

	if s.player.Pos.X <= startX {
		t.Errorf("player did not move right: %v -> %v", startX, s.player.Pos.X)
	}
}

func TestSessionDrawRendersHUD(t *testing.T) {
	s := newTestSession(t)
	scr := core.NewScreen(80, 24)

	s.Step(1.0/60.0, time.Now())
	s.Draw(scr)

	if !strings.Contains(scr.Row(0), "SCORE") {
		t.Errorf("HUD row missing score: %q", scr.Row(0))
	}
	if !strings.Contains(scr.Row(0), "LIVES") {
		t.Errorf("HUD row missing lives: %q", scr.Row(0))
	}
}

func TestSessionRestartResetsState(t *testing.T) {
	s := newTestSession(t)
	now := time.Now()

	for i := 0; i < 5; i++ {
		s.Step(1.0/60.0, now)
	}
	s.player.Collector().Score = 500

	if err := s.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}

	if got := s.world.Tick(); got != 0 {
		t.Errorf("tick after restart = %d, want 0", got)
	}
	if got := s.Score(); got != 0 {
		t.Errorf("score after restart = %d, want 0", got)
	}
}

func TestFormatTicks(t *testing.T) {
	tests := []struct {
		ticks uint64
		rate  int
		want  string
	}{
		{0, 60, "0:00"},
		{60, 60, "0:01"},
		{3600, 60, "1:00"},
		{5430, 60, "1:30"},
		{120, 0, "0:02"}, // zero rate falls back to 60
	}

	for _, tt := range tests {
		if got := formatTicks(tt.ticks, tt.rate); got != tt.want {
			t.Errorf("formatTicks(%d, %d) = %q, want %q", tt.ticks, tt.rate, got, tt.want)
		}
	}
}

func TestDifficultyScalesEnemiesWithScore(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	cfg.Enemies.FireInterval = 6
	cfg.Difficulty = config.DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		Progression:  config.ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      config.ScalingConfig{EnemySpeedMultiplier: 0.5, FireRateMultiplier: 0.5},
	}
	SetGameplay(cfg)
	entities.SetGameplay(cfg)
	t.Cleanup(func() {
		SetGameplay(config.DefaultGameplayConfig())
		entities.SetGameplay(config.DefaultGameplayConfig())
	})

	s := newTestSession(t)
	now := time.Now()

	var pacer *sim.Pacer
	var emitter *sim.Emitter
	for _, e := range s.world.Entities() {
		if tr, ok := e.TraitByKind(sim.KindPacer); ok && pacer == nil {
			pacer = tr.(*sim.Pacer)
		}
		if tr, ok := e.TraitByKind(sim.KindEmitter); ok && emitter == nil {
			emitter = tr.(*sim.Emitter)
		}
	}
	if pacer == nil || emitter == nil {
		t.Fatal("level 1-1 spawned no pacing or emitting enemies")
	}

	// At zero score the base tuning holds.
	s.Step(1.0/60.0, now)
	if pacer.Speed != -40 {
		t.Errorf("pacer speed at zero score = %v, expected -40", pacer.Speed)
	}
	if emitter.Interval != 6 {
		t.Errorf("fire interval at zero score = %v, expected 6", emitter.Interval)
	}

	// Maxed-out score: speed magnitude scales by 1.5, direction is kept,
	// and cannons fire half again as often.
	s.player.Collector().AddScore(100)
	s.Step(1.0/60.0, now)
	if pacer.Speed != -60 {
		t.Errorf("pacer speed at max difficulty = %v, expected -60", pacer.Speed)
	}
	if emitter.Interval != 4 {
		t.Errorf("fire interval at max difficulty = %v, expected 4", emitter.Interval)
	}
}
