package engine

import "math"

// ComboState tracks the current streak of matching placements.
type ComboState struct {
	Count         int     `json:"count"`
	Timer         int     `json:"timer"` // seconds until the streak lapses
	Multiplier    float64 `json:"multiplier"`
	LastPlacement int64   `json:"lastPlacementTime"` // epoch millis, 0 if none
}

// NoCombo returns the reset combo state.
func NoCombo() ComboState {
	return ComboState{Multiplier: 1}
}

// Active reports whether a streak is running.
func (c ComboState) Active() bool {
	return c.Count > 0 && c.Timer > 0
}

// tickSecond decays the combo timer by one second. When the timer reaches
// zero with a streak running, the whole state resets and expired is true.
func (c ComboState) tickSecond() (next ComboState, expired bool) {
	if c.Timer <= 0 {
		return c, false
	}
	c.Timer--
	if c.Timer == 0 && c.Count > 0 {
		return NoCombo(), true
	}
	return c, false
}

// Placement is the scoring input for one matching placement.
type Placement struct {
	MatchCount      int     // counted matching edges
	Value           int     // weighted match count (jokers and mirrors double)
	MirrorBonus     int     // bonus from UpdateMirrorEdges
	Now             int64   // epoch millis
	Level           int     // player level
	PowerMultiplier float64 // active Multiplier power-up, 1 if none
}

// Breakdown itemizes the score of one placement.
type Breakdown struct {
	MatchCount      int
	Base            int
	QuickBonus      int
	ComboBonus      int
	MatchBonus      int
	MirrorBonus     int
	Quick           bool
	QuickMultiplier float64
	ComboMultiplier float64
	PowerMultiplier float64
	Total           int
}

// ScorePlacement scores a matching placement and advances the combo.
//
// Base is the weighted match count times BaseMatchPoints. A placement within
// QuickWindow of the previous one is quick: it earns Base times
// QuickBonusRatio, scaled by the quick family multiplier, and extends the
// streak, otherwise the streak restarts at 1. The combo family
// multiplier sets the combo bonus. The sum of all bonuses is scaled by the
// active power-up multiplier as one delta.
func ScorePlacement(r Rules, p Placement, combo ComboState) (Breakdown, ComboState) {
	level := max(p.Level, 1)
	powerMult := p.PowerMultiplier
	if powerMult <= 0 {
		powerMult = 1
	}

	b := Breakdown{
		MatchCount:      p.MatchCount,
		Base:            p.Value * r.BaseMatchPoints,
		MirrorBonus:     p.MirrorBonus,
		QuickMultiplier: 1,
		PowerMultiplier: powerMult,
	}

	b.Quick = combo.LastPlacement > 0 && p.Now-combo.LastPlacement < r.QuickWindow.Milliseconds()
	count := 1
	if b.Quick {
		count = combo.Count + 1
		b.QuickMultiplier = r.QuickFamily.At(count, level)
		b.QuickBonus = round(float64(b.Base) * r.QuickBonusRatio * b.QuickMultiplier)
	}

	b.ComboMultiplier = r.ComboFamily.At(count, level)
	b.ComboBonus = round(float64(b.Base) * (b.ComboMultiplier - 1))
	b.MatchBonus = MatchBonus(r, p.MatchCount)

	sum := b.Base + b.QuickBonus + b.ComboBonus + b.MatchBonus + b.MirrorBonus
	b.Total = round(float64(sum) * powerMult)

	next := ComboState{
		Count:         count,
		Timer:         r.ComboWindowSecs,
		Multiplier:    b.ComboMultiplier,
		LastPlacement: p.Now,
	}
	return b, next
}

// MatchBonus returns the threshold bonus for a match count:
// Base + floor((count-Threshold)*Step) once count reaches Threshold.
func MatchBonus(r Rules, matchCount int) int {
	if matchCount < r.MatchBonusThreshold {
		return 0
	}
	return r.MatchBonusBase + int(math.Floor(float64(matchCount-r.MatchBonusThreshold)*r.MatchBonusStep))
}

// CalculateScore scales flat points by the power-up and combo multipliers.
func CalculateScore(points int, powerMultiplier, comboMultiplier float64) int {
	if powerMultiplier <= 0 {
		powerMultiplier = 1
	}
	if comboMultiplier < 1 {
		comboMultiplier = 1
	}
	return round(float64(points) * powerMultiplier * comboMultiplier)
}

// round rounds half away from zero.
func round(x float64) int {
	return int(math.Round(x))
}
