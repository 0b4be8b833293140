package config

import (
	_ "embed"
)

//go:embed defaults/hexmatch.yaml
var defaultHexMatchYAML []byte

// DefaultHexMatchConfig returns the default hexmatch configuration.
func DefaultHexMatchConfig() HexMatchConfig {
	return HexMatchConfig{
		Board: BoardConfig{
			Radius:      3,
			PaletteSize: 4,
		},
		Tiles: TilesConfig{
			JokerChance:     0.10,
			MirrorChance:    0.0,
			PowerUpChance:   0.05,
			MirrorPerLevel:  0.02,
			PowerUpPerLevel: 0.01,
			MaxMirror:       0.20,
			MaxPowerUp:      0.15,
		},
		Scoring: ScoringConfig{
			BaseMatchPoints: 5,
			QuickWindowMs:   2000,
			QuickBonusRatio: 0.5,
			ComboWindowSecs: 3,
			QuickMultiplier: MultiplierConfig{Base: 1.2, LevelScaling: 0.1, Cap: 3.0},
			ComboMultiplier: MultiplierConfig{Base: 1.5, LevelScaling: 0.15, Cap: 4.0},
			MatchBonus: MatchBonusConfig{
				Threshold: 3,
				Base:      1,
				Step:      0.5,
			},
			GridClearPoints:  1000,
			MirrorEdgePoints: 5,
		},
		PowerUps: PowerUpsConfig{
			FreezeSecs:      10,
			MultiplierSecs:  15,
			MultiplierValue: 2.0,
		},
		Rotation: RotationConfig{
			Enabled:      true,
			IntervalSecs: 5,
			WarningSecs:  1.5,
		},
		Session: SessionConfig{
			TimedMode:     false,
			TimeLimitSecs: 180,
			PlayerLevel:   1,
		},
		Rewards: RewardsConfig{
			GridClearExperience:    100,
			GridClearUpgradePoints: 1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultHexMatchYAML
}
