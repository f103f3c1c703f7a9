package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/levels"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows a list of all loadable levels, built-in or from --levels.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	loader := levels.NewLoader(flagLevelsRoot)
	defs, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	if len(defs) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, def := range defs {
		if len(def.ID) > maxIDLen {
			maxIDLen = len(def.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Name")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "----")

	// Print levels
	for _, def := range defs {
		fmt.Printf("  %-*s  %s\n", maxIDLen, def.ID, def.Name)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to play a level.")
}
