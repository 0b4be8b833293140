package config

import (
	"time"

	"github.com/vovakirdan/hexmatch/internal/games/hexmatch/engine"
)

// Rules converts the configuration into an engine ruleset. timed selects the
// countdown mode regardless of session.timed_mode.
func (c HexMatchConfig) Rules(timed bool) engine.Rules {
	return engine.Rules{
		Radius:      c.Board.Radius,
		PaletteSize: c.Board.PaletteSize,
		JokerChance: c.Tiles.JokerChance,

		BaseMatchPoints: c.Scoring.BaseMatchPoints,
		QuickWindow:     time.Duration(c.Scoring.QuickWindowMs) * time.Millisecond,
		QuickBonusRatio: c.Scoring.QuickBonusRatio,
		ComboWindowSecs: c.Scoring.ComboWindowSecs,
		QuickFamily:     c.Scoring.QuickMultiplier.family(),
		ComboFamily:     c.Scoring.ComboMultiplier.family(),

		MatchBonusThreshold: c.Scoring.MatchBonus.Threshold,
		MatchBonusBase:      c.Scoring.MatchBonus.Base,
		MatchBonusStep:      c.Scoring.MatchBonus.Step,

		GridClearPoints:  c.Scoring.GridClearPoints,
		MirrorEdgePoints: c.Scoring.MirrorEdgePoints,

		FreezeSecs:      c.PowerUps.FreezeSecs,
		MultiplierSecs:  c.PowerUps.MultiplierSecs,
		MultiplierValue: c.PowerUps.MultiplierValue,

		RotationEnabled:  c.Rotation.Enabled,
		RotationInterval: seconds(c.Rotation.IntervalSecs),
		RotationWarning:  seconds(c.Rotation.WarningSecs),

		TimedMode:     timed,
		TimeLimitSecs: c.Session.TimeLimitSecs,

		GridClearExperience:    c.Rewards.GridClearExperience,
		GridClearUpgradePoints: c.Rewards.GridClearUpgradePoints,
	}
}

// UpgradesForLevel derives the special-tile chances unlocked at a player
// level. Each level above 1 adds the per-level increment up to the cap.
func (c HexMatchConfig) UpgradesForLevel(level int) engine.Upgrades {
	level = max(level, 1)
	steps := float64(level - 1)
	t := c.Tiles
	return engine.Upgrades{
		PlayerLevel:   level,
		MirrorChance:  clampF(t.MirrorChance+steps*t.MirrorPerLevel, 0, max(t.MaxMirror, t.MirrorChance)),
		PowerUpChance: clampF(t.PowerUpChance+steps*t.PowerUpPerLevel, 0, max(t.MaxPowerUp, t.PowerUpChance)),
	}
}

// Upgrades returns the upgrades for the configured player level.
func (c HexMatchConfig) Upgrades() engine.Upgrades {
	return c.UpgradesForLevel(c.Session.PlayerLevel)
}

func (m MultiplierConfig) family() engine.MultiplierFamily {
	return engine.MultiplierFamily{Base: m.Base, LevelScaling: m.LevelScaling, Cap: m.Cap}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
