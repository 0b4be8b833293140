package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexmatch/internal/platform/tui"
	"github.com/vovakirdan/hexmatch/internal/registry"
	"github.com/vovakirdan/hexmatch/internal/storage"
)

// runMenu loops between the mode picker, the games and the scoreboard.
func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := openLogger()
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			if err := tui.RunScoreboard(store, "", cfg.ScreenW, cfg.ScreenH); err != nil {
				return err
			}
			continue
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return err
		}

		// Fresh seed for each game
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, cfg, logger); err != nil {
			return err
		}
	}
}
