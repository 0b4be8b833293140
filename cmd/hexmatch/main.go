// hexmatch is a hexagonal tile-matching game for the terminal.
//
// Usage:
//
//	hexmatch                 - Pick a mode from the menu
//	hexmatch play [mode]     - Play a mode directly, resuming a saved game
//	hexmatch modes           - List available modes
//	hexmatch serve           - Start SSH server for remote play
//	hexmatch scores [mode]   - Show high scores
//	hexmatch config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible tile queues
//	--db <path>         - Set database path (default: ~/.hexmatch/scores.db)
//	--config <path>     - Use a custom hexmatch.yaml
//	--difficulty <name> - Apply a difficulty preset
//	--level <n>         - Player level for tile upgrades
//	--player <name>     - Player name for saves and scores
//
// Flag defaults can be set in the environment or a .env file with
// HEXMATCH_DB, HEXMATCH_CONFIG, HEXMATCH_LEVEL and HEXMATCH_PLAYER.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexmatch/internal/config"
	"github.com/vovakirdan/hexmatch/internal/games/hexmatch"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLogPath    string
	flagPlayer     string

	// Effective configuration, loaded before any command runs
	gameConfig config.HexMatchConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexmatch",
	Short: "HexMatch - match tile edges on a hexagonal board",
	Long: `HexMatch is a terminal puzzle game. Place hexagonal tiles next to
each other so that touching edges share a color, chain quick matches
into combos and clear the board for a big bonus.

Available commands:
  play     - Play a mode directly
  modes    - Show all available modes
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  hexmatch
  hexmatch play
  hexmatch play hexmatch_timed --difficulty hard
  hexmatch serve --ssh :2222
  hexmatch scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexmatch/scores.db", "Path to scores and saves database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom hexmatch.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 0, "Player level (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.hexmatch/hexmatch.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", defaultPlayer(), "Player name, used for saves and scores")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies environment defaults, loads the configuration and
// registers the game modes.
func setup(cmd *cobra.Command, _ []string) error {
	// A missing .env is fine
	_ = godotenv.Load()

	if err := applyEnv(cmd); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	gameConfig = cfg
	hexmatch.RegisterModes(cfg)
	return nil
}

// applyEnv fills flags the user did not set from HEXMATCH_* variables.
func applyEnv(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if v := os.Getenv("HEXMATCH_DB"); v != "" && !flags.Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv("HEXMATCH_CONFIG"); v != "" && !flags.Changed("config") {
		flagConfig = v
	}
	if v := os.Getenv("HEXMATCH_PLAYER"); v != "" && !flags.Changed("player") {
		flagPlayer = v
	}
	if v := os.Getenv("HEXMATCH_LEVEL"); v != "" && !flags.Changed("level") {
		level, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HEXMATCH_LEVEL %q: %w", v, err)
		}
		flagLevel = level
	}
	return nil
}

// loadConfig loads the configuration and applies the difficulty and level
// flags on top of it.
func loadConfig() (config.HexMatchConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagLevel > 0 {
		cfg.Session.PlayerLevel = flagLevel
	}
	return cfg, nil
}
