// Package config provides YAML-based game configuration loading, difficulty
// presets and the player upgrade table for hexmatch.
package config

// HexMatchConfig contains all configuration for a hexmatch session.
type HexMatchConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Tiles    TilesConfig    `yaml:"tiles"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	PowerUps PowerUpsConfig `yaml:"power_ups"`
	Rotation RotationConfig `yaml:"rotation"`
	Session  SessionConfig  `yaml:"session"`
	Rewards  RewardsConfig  `yaml:"rewards"`
	Display  DisplayConfig  `yaml:"display"`
}

// BoardConfig defines the grid shape.
type BoardConfig struct {
	Radius      int `yaml:"radius"`
	PaletteSize int `yaml:"palette_size"` // 4..6 edge colors
}

// TilesConfig defines special tile probabilities before upgrades.
type TilesConfig struct {
	JokerChance   float64 `yaml:"joker_chance"`
	MirrorChance  float64 `yaml:"mirror_chance"`
	PowerUpChance float64 `yaml:"power_up_chance"`
	// Added per player level above 1, capped by the Max fields.
	MirrorPerLevel  float64 `yaml:"mirror_per_level"`
	PowerUpPerLevel float64 `yaml:"power_up_per_level"`
	MaxMirror       float64 `yaml:"max_mirror_chance"`
	MaxPowerUp      float64 `yaml:"max_power_up_chance"`
}

// ScoringConfig defines placement and grid-clear scoring.
type ScoringConfig struct {
	BaseMatchPoints  int              `yaml:"base_match_points"`
	QuickWindowMs    int              `yaml:"quick_window_ms"`
	QuickBonusRatio  float64          `yaml:"quick_bonus_ratio"`
	ComboWindowSecs  int              `yaml:"combo_window_secs"`
	QuickMultiplier  MultiplierConfig `yaml:"quick_multiplier"`
	ComboMultiplier  MultiplierConfig `yaml:"combo_multiplier"`
	MatchBonus       MatchBonusConfig `yaml:"match_bonus"`
	GridClearPoints  int              `yaml:"grid_clear_points"`
	MirrorEdgePoints int              `yaml:"mirror_edge_points"`
}

// MultiplierConfig is one multiplier curve.
type MultiplierConfig struct {
	Base         float64 `yaml:"base"`
	LevelScaling float64 `yaml:"level_scaling"`
	Cap          float64 `yaml:"cap"`
}

// MatchBonusConfig is the match-count threshold bonus table.
type MatchBonusConfig struct {
	Threshold int     `yaml:"threshold"`
	Base      int     `yaml:"base"`
	Step      float64 `yaml:"step"`
}

// PowerUpsConfig defines power-up durations.
type PowerUpsConfig struct {
	FreezeSecs      int     `yaml:"freeze_secs"`
	MultiplierSecs  int     `yaml:"multiplier_secs"`
	MultiplierValue float64 `yaml:"multiplier_value"`
}

// RotationConfig defines the periodic board flip.
type RotationConfig struct {
	Enabled      bool    `yaml:"enabled"`
	IntervalSecs float64 `yaml:"interval_secs"`
	WarningSecs  float64 `yaml:"warning_secs"` // lead time before the flip
}

// SessionConfig defines the session mode.
type SessionConfig struct {
	TimedMode     bool `yaml:"timed_mode"`
	TimeLimitSecs int  `yaml:"time_limit_secs"`
	PlayerLevel   int  `yaml:"player_level"`
}

// RewardsConfig defines grid-clear rewards.
type RewardsConfig struct {
	GridClearExperience    int `yaml:"grid_clear_experience"`
	GridClearUpgradePoints int `yaml:"grid_clear_upgrade_points"`
}

// DisplayConfig holds presentation-only settings.
type DisplayConfig struct {
	ColorBlind bool `yaml:"color_blind"` // draw color symbols instead of blocks
}
