package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexmatch/internal/platform/tui"
	"github.com/vovakirdan/hexmatch/internal/registry"
	"github.com/vovakirdan/hexmatch/internal/storage"
)

var (
	flagBrowse bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores for one mode, or for every mode when none is
given. --browse opens the interactive scoreboard.

Examples:
  hexmatch scores
  hexmatch scores hexmatch_timed --limit 20
  hexmatch scores --browse`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show per mode")
}

func runScores(_ *cobra.Command, args []string) error {
	var modes []registry.GameInfo
	for _, g := range registry.List() {
		if len(args) == 0 || g.ID == args[0] {
			modes = append(modes, g)
		}
	}
	if len(modes) == 0 && len(args) == 0 {
		return fmt.Errorf("no modes registered")
	}
	if len(modes) == 0 {
		return fmt.Errorf("unknown mode %q, run 'hexmatch modes' to see available modes", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, modes[0].ID, width, height)
	}

	ctx := context.Background()
	stats, err := loadStats(ctx, store, modes)
	if err != nil {
		return err
	}
	for i, g := range modes {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(ctx, store, g, stats[g.ID]); err != nil {
			return err
		}
	}
	return nil
}

// loadStats returns the stats of the listed modes.
func loadStats(ctx context.Context, store *storage.Store, modes []registry.GameInfo) (map[string]*storage.GameStats, error) {
	if len(modes) > 1 {
		stats, err := store.GetAllGamesStats(ctx)
		if err != nil {
			return nil, fmt.Errorf("retrieving stats: %w", err)
		}
		return stats, nil
	}
	gs, err := store.GetGameStats(ctx, modes[0].ID)
	if err != nil {
		return nil, fmt.Errorf("retrieving stats: %w", err)
	}
	return map[string]*storage.GameStats{modes[0].ID: gs}, nil
}

// printScores prints the top scores and stats of one mode.
func printScores(ctx context.Context, store *storage.Store, g registry.GameInfo, stats *storage.GameStats) error {
	scores, err := store.TopScores(ctx, g.ID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", g.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'hexmatch play %s' to set the first high score!\n", g.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-16s  %s\n", i+1, entry.Score, entry.Player, dateStr)
	}

	if stats != nil {
		fmt.Println()
		fmt.Printf("Best: %d  Sessions: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
