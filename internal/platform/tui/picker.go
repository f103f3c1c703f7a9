package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// PickerItem represents a selectable level in the picker.
type PickerItem struct {
	Level     levels.Level
	BestScore int
}

// PickerModel is the Bubble Tea model for the level picker.
type PickerModel struct {
	items          []PickerItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	loadErr        error
	quitting       bool
	selected       *PickerItem
	openScoreboard bool
}

// NewPickerModel creates a picker listing the loader's levels, annotated
// with the stored best score per level.
func NewPickerModel(loader *levels.Loader, store *storage.Store, cfg core.RuntimeConfig) PickerModel {
	m := PickerModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	defs, err := loader.LoadAll()
	if err != nil {
		m.loadErr = err
		return m
	}

	for _, def := range defs {
		item := PickerItem{Level: def}
		if store != nil {
			if best, bestErr := store.BestScore(def.ID); bestErr == nil {
				item.BestScore = best
			}
		}
		m.items = append(m.items, item)
	}

	return m
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for picker navigation.
func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit picker to start the level
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit picker to show the scoreboard
	}

	return m, nil
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "  P L A T F O R M E R  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(centerText(fmt.Sprintf("could not load levels: %v", m.loadErr), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText("Q: Quit", m.width))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(centerText("Select a level", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		best := ""
		if item.BestScore > 0 {
			best = fmt.Sprintf("  (best %d)", item.BestScore)
		}

		line := fmt.Sprintf("%s%s  %s%s", cursor, item.Level.ID, item.Level.Name, best)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected level, or nil if none selected.
func (m PickerModel) Selected() *PickerItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m PickerModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m PickerModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// PickerResult holds the result of running the picker.
type PickerResult struct {
	Level           *levels.Level
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunPicker runs the level picker and returns the selection result.
func RunPicker(loader *levels.Loader, store *storage.Store, cfg core.RuntimeConfig) (PickerResult, error) {
	model := NewPickerModel(loader, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{Config: cfg}, err
	}

	m, ok := finalModel.(PickerModel)
	if !ok {
		return PickerResult{Config: cfg, Quit: true}, nil
	}

	result := PickerResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if sel := m.Selected(); sel != nil {
		def := sel.Level
		result.Level = &def
	} else {
		result.Quit = true
	}

	return result, nil
}
