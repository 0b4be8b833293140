package engine

import (
	"math"
	"time"
)

// QueueSize is the number of next tiles offered to the player.
const QueueSize = 3

// MirrorThreshold is the number of matching edges a mirror needs before any
// of its matches count.
const MirrorThreshold = 2

// MultiplierFamily parameterizes one multiplier curve:
// min(Base * levelFactor * streakFactor, Cap).
type MultiplierFamily struct {
	Base         float64
	LevelScaling float64
	Cap          float64
}

// At evaluates the family for a streak count and player level.
func (f MultiplierFamily) At(count, level int) float64 {
	count = max(count, 1)
	level = max(level, 1)
	levelFactor := 1 + float64(level-1)*f.LevelScaling
	streakFactor := 1 + float64(count-1)*0.2
	return math.Min(f.Base*levelFactor*streakFactor, f.Cap)
}

// Rules holds every tunable constant of a session.
type Rules struct {
	Radius      int
	PaletteSize int
	JokerChance float64

	BaseMatchPoints int
	QuickWindow     time.Duration
	QuickBonusRatio float64
	ComboWindowSecs int
	QuickFamily     MultiplierFamily
	ComboFamily     MultiplierFamily

	// Match-count threshold bonus: Base + floor((count-Threshold)*Step).
	MatchBonusThreshold int
	MatchBonusBase      int
	MatchBonusStep      float64

	GridClearPoints  int
	MirrorEdgePoints int

	FreezeSecs      int
	MultiplierSecs  int
	MultiplierValue float64

	RotationEnabled  bool
	RotationInterval time.Duration
	RotationWarning  time.Duration // lead time before the flip

	TimedMode     bool
	TimeLimitSecs int

	GridClearExperience    int
	GridClearUpgradePoints int
}

// DefaultRules returns the standard radius-3 ruleset.
func DefaultRules() Rules {
	return Rules{
		Radius:      3,
		PaletteSize: 4,
		JokerChance: 0.10,

		BaseMatchPoints: 5,
		QuickWindow:     2000 * time.Millisecond,
		QuickBonusRatio: 0.5,
		ComboWindowSecs: 3,
		QuickFamily:     MultiplierFamily{Base: 1.2, LevelScaling: 0.1, Cap: 3.0},
		ComboFamily:     MultiplierFamily{Base: 1.5, LevelScaling: 0.15, Cap: 4.0},

		MatchBonusThreshold: 3,
		MatchBonusBase:      1,
		MatchBonusStep:      0.5,

		GridClearPoints:  1000,
		MirrorEdgePoints: 5,

		FreezeSecs:      10,
		MultiplierSecs:  15,
		MultiplierValue: 2,

		RotationEnabled:  true,
		RotationInterval: 5 * time.Second,
		RotationWarning:  1500 * time.Millisecond,

		TimedMode:     false,
		TimeLimitSecs: 180,

		GridClearExperience:    100,
		GridClearUpgradePoints: 1,
	}
}

// Upgrades is the read-only progression input: the player level and the
// special-tile chances it has unlocked.
type Upgrades struct {
	PlayerLevel   int
	MirrorChance  float64
	PowerUpChance float64
}

// level returns the player level, never below 1.
func (u Upgrades) level() int {
	return max(u.PlayerLevel, 1)
}
