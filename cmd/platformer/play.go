package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/entities"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a level",
	Long: `Start playing the specified level. Completing a level rolls into
the next one; losing all lives ends the run.

Controls:
  A/D or arrows  - Move (hold Shift to run)
  Space/W/Up     - Jump (hold for a higher jump)
  P              - Pause
  R              - Restart level
  B/Esc          - Back (when paused or after the run ends)
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - More lives, slower enemies
  normal - Default tuning
  hard   - Fewer lives, faster enemies
  fixed  - No difficulty progression over the run

Examples:
  platformer play 1-1
  platformer play 1-2 --difficulty easy
  platformer play 1-1 --config ./my-gameplay.yaml
  platformer play custom-1 --levels ./my-levels`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameplayFlags loads the gameplay config, applies the difficulty
// preset and installs the result into the entity factories, the level
// builder and the session layer.
func applyGameplayFlags() error {
	cfg, err := config.LoadGameplay(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyGameplayPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	entities.SetGameplay(cfg)
	levels.SetGameplay(cfg)
	tui.SetGameplay(cfg)
	return nil
}

// terminalConfig builds a runtime config from the terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	levelID := args[0]

	if err := applyGameplayFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading gameplay config: %v\n", err)
		os.Exit(1)
	}

	loader := levels.NewLoader(flagLevelsRoot)
	def, err := loader.LoadByID(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'platformer list' to see available levels.")
		os.Exit(1)
	}

	cfg := terminalConfig()

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Play levels until the user backs out or the list runs out.
	var runErr error
	for {
		outcome, err := tui.Run(def, store, cfg)
		if err != nil {
			runErr = err
			break
		}
		if outcome != tui.OutcomeNext {
			break
		}

		next, ok := nextLevel(loader, def.ID)
		if !ok {
			break
		}
		def = next
	}

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
		os.Exit(1)
	}
}

// nextLevel returns the level following the given ID in load order.
func nextLevel(loader *levels.Loader, currentID string) (levels.Level, bool) {
	defs, err := loader.LoadAll()
	if err != nil {
		return levels.Level{}, false
	}
	for i, def := range defs {
		if def.ID == currentID && i+1 < len(defs) {
			return defs[i+1], true
		}
	}
	return levels.Level{}, false
}
