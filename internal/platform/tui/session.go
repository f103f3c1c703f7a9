package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/entities"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/sim"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// gameplay holds the tuning new sessions pick up: enemy base speeds and
// the difficulty progression applied on top of them.
var gameplay = config.DefaultGameplayConfig()

// SetGameplay installs the tuning used by new sessions.
func SetGameplay(cfg config.GameplayConfig) {
	gameplay = cfg
}

// SessionState tracks where a play session is in its lifecycle.
type SessionState int

const (
	StatePlaying SessionState = iota
	StateComplete
	StateGameOver
)

// Session runs one level from spawn to completion or game over. It owns
// the simulated world, the player entity, and the per-frame input routing,
// and is shared by the local and SSH front ends.
type Session struct {
	Def   levels.Level
	State SessionState

	cfg   core.RuntimeConfig
	store *storage.Store

	world  *sim.Level
	player *sim.Entity
	router entities.Router
	input  *InputState

	tuning     config.GameplayConfig
	difficulty *config.DifficultyManager

	paused bool
	saved  bool
	sounds []string
}

// NewSession builds the level's world, spawns the player at the level's
// spawn point and points the camera at it.
func NewSession(def levels.Level, cfg core.RuntimeConfig, store *storage.Store) (*Session, error) {
	s := &Session{
		Def:        def,
		cfg:        cfg,
		store:      store,
		input:      NewInputState(),
		tuning:     gameplay,
		difficulty: config.NewDifficultyManager(gameplay.Difficulty),
	}
	if err := s.reset(nil); err != nil {
		return nil, err
	}
	return s, nil
}

// reset rebuilds the world and spawns a fresh player. When a previous
// collector is passed its coins, score and lives carry over.
func (s *Session) reset(carry *sim.Collector) error {
	world, err := s.Def.Build()
	if err != nil {
		return fmt.Errorf("tui: build level %q: %w", s.Def.ID, err)
	}

	player, err := registry.Create("player")
	if err != nil {
		return err
	}
	spawn := s.Def.SpawnPoint()
	player.Pos = spawn
	if carry != nil {
		col := player.Collector()
		col.Coins = carry.Coins
		col.Score = carry.Score
		col.Lives = carry.Lives
	}
	world.AddEntity(player)
	world.Follow(player)

	// One screen cell per tile; the top row is covered by the HUD and the
	// bottom row carries the status line.
	ts := s.Def.TileSize
	world.AttachCamera(sim.NewCamera(float64(s.cfg.ScreenW)*ts, float64(s.cfg.ScreenH-2)*ts))

	s.world = world
	s.player = player
	s.router = entities.Router{}
	s.State = StatePlaying
	return nil
}

// Press records key-driven actions. Terminal input has no release events,
// so presses refresh a hold window that Frame later turns into held state.
func (s *Session) Press(actions []core.Action, now time.Time) {
	for _, a := range actions {
		s.input.Press(a, now)
	}
}

// TogglePause flips the paused state. Paused sessions skip simulation
// steps but keep rendering.
func (s *Session) TogglePause() {
	s.paused = !s.paused
}

// Paused reports whether the session is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// Step advances the simulation by one fixed timestep. It routes the
// current input frame into the player, runs the world, and then resolves
// level completion, player death and respawn.
func (s *Session) Step(dt float64, now time.Time) {
	if s.paused || s.State != StatePlaying {
		return
	}

	frame := s.input.Frame(now)
	if s.world.Contains(s.player) {
		s.router.Route(frame, s.player)
	}
	s.applyDifficulty()
	s.world.Update(sim.Step{DeltaTime: dt})
	s.sounds = append(s.sounds, s.world.TakeSounds()...)

	if s.world.Complete {
		s.State = StateComplete
		s.saveRun(true)
		return
	}

	// The player leaves the world either through the kill plane or after
	// the post-death linger. Either way the run continues on a remaining
	// life or ends.
	if !s.world.Contains(s.player) {
		col := s.player.Collector()
		col.Lives--
		if col.Lives <= 0 {
			s.State = StateGameOver
			s.saveRun(false)
			return
		}
		s.input.Clear()
		if err := s.reset(col); err != nil {
			// The level built once already; a rebuild failure here means
			// the defining file vanished mid-session. End the run.
			s.State = StateGameOver
			s.saveRun(false)
		}
	}
}

// applyDifficulty rescales enemy tuning from the current score and
// elapsed ticks. Pacers keep their patrol direction, only the magnitude
// changes; emitters pick the new interval up on their next shot.
func (s *Session) applyDifficulty() {
	score := s.player.Collector().Score
	ticks := int(s.world.Tick())
	speed := s.difficulty.EnemySpeed(s.tuning.Enemies.PacerSpeed, score, ticks)
	interval := s.difficulty.FireInterval(s.tuning.Enemies.FireInterval, score, ticks)

	for _, e := range s.world.Entities() {
		if tr, ok := e.TraitByKind(sim.KindPacer); ok {
			p := tr.(*sim.Pacer)
			p.Speed = math.Copysign(speed, p.Speed)
		}
		if tr, ok := e.TraitByKind(sim.KindEmitter); ok {
			tr.(*sim.Emitter).Interval = interval
		}
	}
}

// Restart throws the current progress away and starts the level over.
func (s *Session) Restart() error {
	s.input.Clear()
	s.paused = false
	s.saved = false
	s.sounds = nil
	return s.reset(nil)
}

// saveRun persists the run result once per session.
func (s *Session) saveRun(completed bool) {
	if s.saved || s.store == nil {
		return
	}
	s.saved = true
	col := s.player.Collector()
	// Persistence failures must not interrupt play.
	_, _ = s.store.SaveRun(s.Def.ID, col.Score, col.Coins, int64(s.world.Tick()), completed)
}

// TakeSounds returns the sound events accumulated since the last call.
func (s *Session) TakeSounds() []string {
	out := s.sounds
	s.sounds = nil
	return out
}

// Score reports the player's current score.
func (s *Session) Score() int {
	return s.player.Collector().Score
}

// Draw renders the world plus the HUD and status rows into the screen.
func (s *Session) Draw(scr *core.Screen) {
	scr.Clear()
	s.world.Draw(scr)

	col := s.player.Collector()
	hud := fmt.Sprintf(" %s  SCORE %06d  COINS %02d  LIVES %d  TIME %s",
		s.Def.Name, col.Score, col.Coins, col.Lives, formatTicks(s.world.Tick(), s.cfg.TickRate))
	scr.DrawHLine(0, 0, scr.Width(), ' ')
	scr.DrawTextColor(0, 0, hud, core.ColorBrightWhite)

	switch {
	case s.State == StateComplete:
		scr.DrawTextCentered(scr.Height()/2, "LEVEL COMPLETE!")
		scr.DrawTextCentered(scr.Height()/2+1, "enter: next  r: replay  b: back")
	case s.State == StateGameOver:
		scr.DrawTextCentered(scr.Height()/2, "GAME OVER")
		scr.DrawTextCentered(scr.Height()/2+1, "r: retry  b: back")
	case s.paused:
		scr.DrawTextCentered(scr.Height()/2, "PAUSED")
		scr.DrawText(0, scr.Height()-1, " p: resume  r: restart  b: back  q: quit")
	default:
		scr.DrawText(0, scr.Height()-1, " a/d: move  shift: run  space: jump  p: pause  q: quit")
	}
}

// formatTicks renders a tick count as m:ss.
func formatTicks(ticks uint64, tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	total := int(ticks) / tickRate
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
