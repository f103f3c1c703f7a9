package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// maxStepsPerTick caps how many fixed steps one tick may run. When the
// terminal stalls, the backlog beyond the cap is dropped instead of
// fast-forwarding the simulation.
const maxStepsPerTick = 5

// GameOutcome reports why a game session ended.
type GameOutcome int

const (
	OutcomeQuit GameOutcome = iota
	OutcomeBack
	OutcomeNext
)

// GameModel is the Bubble Tea model for playing one level. Wall-clock time
// between ticks is converted into fixed simulation steps, so the world
// advances at the same rate regardless of render jitter.
type GameModel struct {
	session   *Session
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	lastTick    time.Time
	accumulator float64

	// standalone models own their program and quit when the player backs
	// out; embedded models leave that to the wrapping session model.
	standalone bool
	quitting   bool
	backToMenu bool
	advance    bool
	buildErr   error
}

// NewGameModel creates a model playing the given level definition.
func NewGameModel(def levels.Level, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := GameModel{
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	session, err := NewSession(def, cfg, store)
	if err != nil {
		m.buildErr = err
		return m
	}
	m.session = session
	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	if m.buildErr != nil {
		return tea.Quit
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.session == nil {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	actions, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	for _, a := range actions {
		switch a {
		case core.ActionPause:
			m.session.TogglePause()

		case core.ActionRestart:
			if err := m.session.Restart(); err != nil {
				m.buildErr = err
				m.quitting = true
				return m, tea.Quit
			}

		case core.ActionBack:
			if m.session.State != StatePlaying || m.session.Paused() {
				m.backToMenu = true
				if m.standalone {
					return m, tea.Quit
				}
			}

		case core.ActionConfirm:
			if m.session.State == StateComplete {
				m.advance = true
				if m.standalone {
					return m, tea.Quit
				}
			}

		default:
			m.session.Press([]core.Action{a}, time.Now())
		}
	}

	return m, nil
}

// handleResize rebuilds the session against the new terminal size. The run
// state (score, coins, lives) does not survive a resize mid-level.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.session.State == StatePlaying {
		session, err := NewSession(m.session.Def, m.config, m.store)
		if err == nil {
			m.session = session
		}
	}

	return m, nil
}

// handleTick drains the wall-clock backlog as fixed simulation steps.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)

	if !m.lastTick.IsZero() {
		m.accumulator += now.Sub(m.lastTick).Seconds()
	} else {
		m.accumulator = dt
	}
	m.lastTick = now

	if limit := dt * maxStepsPerTick; m.accumulator > limit {
		m.accumulator = limit
	}

	for m.accumulator >= dt {
		m.session.Step(dt, now)
		m.accumulator -= dt
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file under
// ~/.platformer/screenshots.
func (m *GameModel) saveScreenshot() {
	m.session.Draw(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".platformer", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.session.Def.ID, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.session == nil {
		return ""
	}

	m.session.Draw(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the picker.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// WantsNext returns true if the user confirmed moving on after completing
// the level.
func (m GameModel) WantsNext() bool {
	return m.advance
}

// Err returns the session build error, if any.
func (m GameModel) Err() error {
	return m.buildErr
}

// Run plays one level in a standalone Bubble Tea program and reports how
// the session ended.
func Run(def levels.Level, store *storage.Store, cfg core.RuntimeConfig) (GameOutcome, error) {
	model := NewGameModel(def, store, cfg)
	if model.buildErr != nil {
		return OutcomeQuit, model.buildErr
	}
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return OutcomeQuit, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return OutcomeQuit, nil
	}
	if m.Err() != nil {
		return OutcomeQuit, m.Err()
	}

	switch {
	case m.WantsNext():
		return OutcomeNext, nil
	case m.BackToMenu():
		return OutcomeBack, nil
	default:
		return OutcomeQuit, nil
	}
}
