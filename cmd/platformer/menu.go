package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the platformer with a level picker",
	Long: `Start the platformer in interactive picker mode.

Use arrow keys or j/k to navigate, Enter to select a level.
After a run ends, you return to the picker.

Controls:
  Up/Down/j/k  - Navigate picker
  Enter/Space  - Select level
  Tab          - Best runs
  Q            - Quit

Examples:
  platformer menu
  platformer menu --fps 30
  platformer menu --db ./runs.db
  platformer menu --levels ./my-levels`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := applyGameplayFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading gameplay config: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	loader := levels.NewLoader(flagLevelsRoot)
	cfg := terminalConfig()

	// Picker loop
	for {
		pick, err := tui.RunPicker(loader, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = pick.Config

		if pick.Quit {
			break
		}

		if pick.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(loader, store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to picker
			}
			break // User quit from scoreboard
		}

		if pick.Level == nil {
			break
		}

		// Play the selected level, rolling into the next on completion.
		def := *pick.Level
		quit := false
		for {
			outcome, runErr := tui.Run(def, store, cfg)
			if runErr != nil {
				fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
				quit = true
				break
			}
			if outcome == tui.OutcomeQuit {
				quit = true
				break
			}
			if outcome == tui.OutcomeBack {
				break
			}
			next, ok := nextLevel(loader, def.ID)
			if !ok {
				break
			}
			def = next
		}
		if quit {
			break
		}

		// Loop back to picker
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
