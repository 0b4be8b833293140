package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in each search directory.
const FileName = "hexmatch.yaml"

// Load loads hexmatch configuration.
// Search order: customPath -> ~/.hexmatch/configs/hexmatch.yaml -> ./configs/hexmatch.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func Load(customPath string) (HexMatchConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultHexMatchConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultHexMatchConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultHexMatchYAML)
	if err != nil {
		return DefaultHexMatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and sanitizes the result.
func Parse(data []byte) (HexMatchConfig, error) {
	cfg := DefaultHexMatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.sanitize()
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg HexMatchConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexmatch", "configs", FileName)
}

// sanitize replaces values the engine cannot run with by their defaults.
func (c *HexMatchConfig) sanitize() {
	def := DefaultHexMatchConfig()
	if c.Board.Radius < 1 {
		c.Board.Radius = def.Board.Radius
	}
	c.Board.PaletteSize = clamp(c.Board.PaletteSize, 4, 6)
	c.Tiles.JokerChance = clampF(c.Tiles.JokerChance, 0, 1)
	c.Tiles.MirrorChance = clampF(c.Tiles.MirrorChance, 0, 1)
	c.Tiles.PowerUpChance = clampF(c.Tiles.PowerUpChance, 0, 1)
	if c.Scoring.QuickWindowMs < 0 {
		c.Scoring.QuickWindowMs = def.Scoring.QuickWindowMs
	}
	if c.Scoring.ComboWindowSecs < 1 {
		c.Scoring.ComboWindowSecs = def.Scoring.ComboWindowSecs
	}
	if c.PowerUps.MultiplierValue < 1 {
		c.PowerUps.MultiplierValue = def.PowerUps.MultiplierValue
	}
	if c.Rotation.IntervalSecs <= 0 {
		c.Rotation.IntervalSecs = def.Rotation.IntervalSecs
	}
	c.Rotation.WarningSecs = clampF(c.Rotation.WarningSecs, 0, c.Rotation.IntervalSecs)
	if c.Session.TimeLimitSecs < 1 {
		c.Session.TimeLimitSecs = def.Session.TimeLimitSecs
	}
	c.Session.PlayerLevel = max(c.Session.PlayerLevel, 1)
}

func clamp(val, lo, hi int) int {
	return max(lo, min(hi, val))
}
