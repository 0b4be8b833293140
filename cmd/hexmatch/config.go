package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexmatch/internal/config"
)

var (
	flagConfigPath bool
	flagConfigInit bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration in effect after applying --config,
--difficulty and --level, as YAML.

Examples:
  hexmatch config
  hexmatch config --difficulty hard
  hexmatch config --path
  hexmatch config --init   # write the defaults to the user config file`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigPath, "path", false, "Print the user config file path")
	configCmd.Flags().BoolVar(&flagConfigInit, "init", false, "Write the default config to the user config file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	path := config.UserConfigPath()

	switch {
	case flagConfigPath:
		fmt.Println(path)
		return nil

	case flagConfigInit:
		if path == "" {
			return fmt.Errorf("cannot resolve the user config path")
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
		if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	}

	data, err := config.Marshal(gameConfig)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
