// platformer is a TUI platformer for playing side-scrolling levels in the terminal.
//
// Usage:
//
//	platformer list              - List available levels
//	platformer play <level>      - Play a level
//	platformer menu              - Start the interactive level picker
//	platformer serve             - Start SSH server for remote play
//	platformer scores <level>    - Show best runs for a level
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--db <path>        - Set database path (default: ~/.platformer/runs.db)
//	--levels <dir>     - Load levels from a directory instead of the built-ins
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import entities to register them
	_ "github.com/vovakirdan/tui-platformer/internal/entities"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagLevelsRoot string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "TUI Platformer - Side-scrolling levels in your terminal",
	Long: `TUI Platformer is a terminal-based side-scrolling game. Run, jump,
stomp enemies and collect coins across tile-based levels.

Available commands:
  list     - Show all available levels
  play     - Play a specific level directly
  menu     - Interactive level picker
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  platformer list
  platformer play 1-1
  platformer menu
  platformer serve --ssh :2222
  platformer scores 1-1`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsRoot, "levels", "", "Directory of level YAML files (empty = built-in levels)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
