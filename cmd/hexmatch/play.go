package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexmatch/internal/core"
	"github.com/vovakirdan/hexmatch/internal/games/hexmatch"
	"github.com/vovakirdan/hexmatch/internal/platform/tui"
	"github.com/vovakirdan/hexmatch/internal/registry"
	"github.com/vovakirdan/hexmatch/internal/storage"
)

var (
	flagFresh bool
	flagTimed bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing. A saved game for the player and mode is resumed
unless --fresh is given.

Modes:
  hexmatch        - Untimed, play until you end the session
  hexmatch_timed  - Race the clock

Controls:
  Arrows/WASD  - Move cursor
  1/2/3        - Pick a tile from the queue
  Z/X          - Rotate the picked tile
  Enter/Space  - Place the tile (or click a hex)
  U            - Undo last placement
  E            - End the session
  P/Esc        - Pause
  R            - Restart (after game over)
  ?            - Show all keys
  Q/Ctrl+C     - Quit (the game is saved)

Examples:
  hexmatch play
  hexmatch play --timed
  hexmatch play hexmatch_timed --difficulty easy
  hexmatch play --fresh --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagFresh, "fresh", false, "Discard the saved game and start a new one")
	playCmd.Flags().BoolVar(&flagTimed, "timed", false, "Play the timed mode")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := hexmatch.ModeClassic
	if flagTimed || gameConfig.Session.TimedMode {
		gameID = hexmatch.ModeTimed
	}
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'hexmatch modes' to see available modes", gameID)
	}

	logger, closeLog := openLogger()
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if flagFresh && store != nil {
		if err := store.Slot(tui.SlotName(flagPlayer, gameID)).Delete(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not discard saved game: %v\n", err)
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	return tui.Run(game, store, runtimeConfig(), logger)
}

// runtimeConfig builds the platform config from the flags and terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Player = flagPlayer
	return cfg
}

// openLogger opens the log file. Logging is dropped when the file cannot
// be opened, since the terminal belongs to the game.
func openLogger() (*log.Logger, func()) {
	logger, f, err := tui.OpenLogFile(expandHome(flagLogPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	return logger, func() { f.Close() }
}

// defaultPlayer returns the OS user name.
func defaultPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return core.DefaultConfig().Player
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
