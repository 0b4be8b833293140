package engine

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMultiplierFamilyAt(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		name     string
		family   MultiplierFamily
		count    int
		level    int
		expected float64
	}{
		{"combo first", rules.ComboFamily, 1, 1, 1.5},
		{"combo streak 3", rules.ComboFamily, 3, 1, 1.5 * 1.4},
		{"combo level 3", rules.ComboFamily, 1, 3, 1.5 * 1.3},
		{"combo capped", rules.ComboFamily, 20, 5, 4.0},
		{"quick first", rules.QuickFamily, 1, 1, 1.2},
		{"quick streak 2 level 2", rules.QuickFamily, 2, 2, 1.2 * 1.1 * 1.2},
		{"quick capped", rules.QuickFamily, 30, 1, 3.0},
		{"zero count treated as one", rules.ComboFamily, 0, 0, 1.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.family.At(tc.count, tc.level); !approx(got, tc.expected) {
				t.Errorf("At(%d, %d) = %f, expected %f", tc.count, tc.level, got, tc.expected)
			}
		})
	}
}

func TestMatchBonus(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		count, expected int
	}{
		{0, 0},
		{2, 0},
		{3, 1},
		{4, 1},
		{5, 2},
		{6, 2},
	}
	for _, tc := range tests {
		if got := MatchBonus(rules, tc.count); got != tc.expected {
			t.Errorf("MatchBonus(%d) = %d, expected %d", tc.count, got, tc.expected)
		}
	}
}

func TestScorePlacementFirstMatch(t *testing.T) {
	rules := DefaultRules()
	b, combo := ScorePlacement(rules, Placement{MatchCount: 1, Value: 1, Now: 10_000, Level: 1}, NoCombo())

	if b.Base != 5 {
		t.Errorf("Base = %d, expected 5", b.Base)
	}
	if b.Quick || b.QuickBonus != 0 {
		t.Errorf("first placement should not be quick: %+v", b)
	}
	if b.ComboBonus != 3 {
		t.Errorf("ComboBonus = %d, expected round(5*0.5) = 3", b.ComboBonus)
	}
	if b.Total != 8 {
		t.Errorf("Total = %d, expected 8", b.Total)
	}
	if combo.Count != 1 || combo.Timer != rules.ComboWindowSecs || combo.LastPlacement != 10_000 {
		t.Errorf("combo = %+v", combo)
	}
	if !approx(combo.Multiplier, 1.5) {
		t.Errorf("Multiplier = %f, expected 1.5", combo.Multiplier)
	}
}

func TestScorePlacementQuick(t *testing.T) {
	rules := DefaultRules()
	prev := ComboState{Count: 1, Timer: 3, Multiplier: 1.5, LastPlacement: 10_000}

	b, combo := ScorePlacement(rules, Placement{MatchCount: 2, Value: 2, Now: 11_500, Level: 1}, prev)
	if !b.Quick {
		t.Fatal("placement 1500ms later should be quick")
	}
	if b.QuickBonus != 7 {
		t.Errorf("QuickBonus = %d, expected round(10*0.5*1.44) = 7", b.QuickBonus)
	}
	if combo.Count != 2 {
		t.Errorf("Count = %d, expected 2", combo.Count)
	}
	if !approx(b.QuickMultiplier, 1.2*1.2) {
		t.Errorf("QuickMultiplier = %f", b.QuickMultiplier)
	}
	if !approx(b.ComboMultiplier, 1.5*1.2) {
		t.Errorf("ComboMultiplier = %f", b.ComboMultiplier)
	}
	if b.ComboBonus != 8 {
		t.Errorf("ComboBonus = %d, expected round(10*0.8) = 8", b.ComboBonus)
	}
	if b.Total != 10+7+8 {
		t.Errorf("Total = %d, expected 25", b.Total)
	}

	_, slow := ScorePlacement(rules, Placement{MatchCount: 1, Value: 1, Now: 12_000, Level: 1}, prev)
	if slow.Count != 1 {
		t.Errorf("slow placement Count = %d, expected reset to 1", slow.Count)
	}
}

func TestScorePlacementPowerMultiplier(t *testing.T) {
	rules := DefaultRules()
	p := Placement{MatchCount: 3, Value: 3, MirrorBonus: 0, Now: 1, Level: 1}
	plain, _ := ScorePlacement(rules, p, NoCombo())
	p.PowerMultiplier = 2
	doubled, _ := ScorePlacement(rules, p, NoCombo())
	if doubled.Total != plain.Total*2 {
		t.Errorf("Total with x2 = %d, expected %d", doubled.Total, plain.Total*2)
	}
	if plain.MatchBonus != 1 {
		t.Errorf("MatchBonus = %d, expected 1", plain.MatchBonus)
	}
}

func TestScorePlacementIncludesMirrorBonus(t *testing.T) {
	rules := DefaultRules()
	b, _ := ScorePlacement(rules, Placement{MatchCount: 2, Value: 4, MirrorBonus: 10, Now: 1, Level: 1}, NoCombo())
	if b.Total != 20+10+10 {
		t.Errorf("Total = %d, expected base 20 + combo 10 + mirror 10", b.Total)
	}
}

func TestCalculateScore(t *testing.T) {
	tests := []struct {
		points   int
		power    float64
		combo    float64
		expected int
	}{
		{1000, 1, 1, 1000},
		{1000, 2, 1, 2000},
		{1000, 2, 1.5, 3000},
		{1000, 0, 0, 1000},
	}
	for _, tc := range tests {
		if got := CalculateScore(tc.points, tc.power, tc.combo); got != tc.expected {
			t.Errorf("CalculateScore(%d, %v, %v) = %d, expected %d", tc.points, tc.power, tc.combo, got, tc.expected)
		}
	}
}

func TestComboTickSecond(t *testing.T) {
	c := ComboState{Count: 2, Timer: 2, Multiplier: 1.8, LastPlacement: 5}
	c, expired := c.tickSecond()
	if expired || c.Timer != 1 || c.Count != 2 {
		t.Fatalf("after one second = %+v, expired %v", c, expired)
	}
	c, expired = c.tickSecond()
	if !expired {
		t.Fatal("combo should expire when the timer reaches zero")
	}
	if c != NoCombo() {
		t.Errorf("expired combo = %+v, expected reset", c)
	}
	c, expired = c.tickSecond()
	if expired || c != NoCombo() {
		t.Error("idle combo should stay idle")
	}
}
