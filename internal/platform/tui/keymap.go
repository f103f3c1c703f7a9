package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// holdWindow is how long a pressed movement key counts as held. Terminals
// deliver no key-release events, so a key stays "down" while auto-repeat
// keeps refreshing its deadline.
const holdWindow = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to actions. Held modifiers fold into the
// run action: shifted movement letters both move and run.
// Returns the actions (may be empty) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true
	}

	switch key {
	case "a", "left":
		return []core.Action{core.ActionLeft}, false
	case "d", "right":
		return []core.Action{core.ActionRight}, false
	case "A", "shift+left":
		return []core.Action{core.ActionLeft, core.ActionRun}, false
	case "D", "shift+right":
		return []core.Action{core.ActionRight, core.ActionRun}, false
	case " ", "w", "up":
		return []core.Action{core.ActionJump}, false
	case "enter":
		return []core.Action{core.ActionConfirm}, false
	case "b", "esc":
		return []core.Action{core.ActionBack}, false
	case "p":
		return []core.Action{core.ActionPause}, false
	case "r":
		return []core.Action{core.ActionRestart}, false
	}

	return nil, false
}

// InputState accumulates key presses between simulation ticks and expires
// them after the hold window, approximating held keys over a protocol that
// only reports presses.
type InputState struct {
	deadlines map[core.Action]time.Time
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{deadlines: make(map[core.Action]time.Time)}
}

// Press marks the action held from now until the hold window elapses.
func (s *InputState) Press(a core.Action, now time.Time) {
	s.deadlines[a] = now.Add(holdWindow)
}

// Frame builds the input frame for one simulation tick, dropping actions
// whose hold window expired.
func (s *InputState) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, deadline := range s.deadlines {
		if now.After(deadline) {
			delete(s.deadlines, a)
			continue
		}
		frame.Set(a)
	}
	return frame
}

// Clear drops all held actions.
func (s *InputState) Clear() {
	for a := range s.deadlines {
		delete(s.deadlines, a)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
