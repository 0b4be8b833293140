package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexmatch/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:     "modes",
	Aliases: []string{"list"},
	Short:   "List all available modes",
	Long:    `Shows a list of all registered game modes.`,
	Run:     runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range modes {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range modes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'hexmatch play <id>' to play a mode.")
}
