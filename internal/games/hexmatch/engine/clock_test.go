package engine

import (
	"testing"
	"time"

	"github.com/vovakirdan/hexmatch/internal/games/hexmatch/hex"
)

func timedRules(limit int) Rules {
	r := quietRules()
	r.TimedMode = true
	r.TimeLimitSecs = limit
	return r
}

func matchingTile(kind Kind) Tile {
	return NewTile(edgesWith(ColorBlue, hex.NorthWest, ColorPink), kind)
}

func TestComboDecay(t *testing.T) {
	b := newTestBoard(t, quietRules())
	place(t, b, matchingTile(Normal()), hex.C(1, 0))
	if b.Combo().Timer != 3 {
		t.Fatalf("combo timer = %d, expected 3", b.Combo().Timer)
	}

	for i := 0; i < 3; i++ {
		b.Tick(400 * time.Millisecond)
	}
	if b.Combo().Timer != 2 {
		t.Errorf("combo timer after 1.2s = %d, expected 2", b.Combo().Timer)
	}

	events := b.Tick(2 * time.Second)
	if _, ok := findEvent[ComboExpiredEvent](events); !ok {
		t.Error("expected combo expiry")
	}
	if b.Combo() != NoCombo() {
		t.Errorf("combo = %+v, expected reset", b.Combo())
	}
	mustValidate(t, b)
}

func TestTimedGameOver(t *testing.T) {
	b := newTestBoard(t, timedRules(3))
	b.timeLeft = 3

	b.Tick(2 * time.Second)
	if b.TimeLeft() != 1 {
		t.Fatalf("TimeLeft() = %d, expected 1", b.TimeLeft())
	}
	events := b.Tick(time.Second)
	over, ok := findEvent[GameOverEvent](events)
	if !ok {
		t.Fatal("expected game over")
	}
	if over.Score != b.Score() {
		t.Errorf("game over score = %d, expected %d", over.Score, b.Score())
	}
	if !b.GameOver() || b.TimeLeft() != 0 {
		t.Error("board should be over with no time left")
	}
	if b.Tick(time.Second) != nil {
		t.Error("ticks after game over are ignored")
	}
	if b.SelectTile(0) {
		t.Error("selection after game over is ignored")
	}
	mustValidate(t, b)
}

func TestUntimedClockDoesNotRun(t *testing.T) {
	b := newTestBoard(t, quietRules())
	b.Tick(time.Minute)
	if b.TimeLeft() != Untimed || b.GameOver() {
		t.Error("untimed sessions never run out of time")
	}
}

func TestFreezePausesMatchClock(t *testing.T) {
	b := newTestBoard(t, timedRules(10))
	b.timeLeft = 10
	events := place(t, b, matchingTile(WithPowerUp(PowerUp{Type: PowerUpFreeze, Duration: 2})), hex.C(1, 0))
	if _, ok := findEvent[PowerUpActivatedEvent](events); !ok {
		t.Fatal("expected power-up activation")
	}
	if !b.PowerUps().Frozen() {
		t.Fatal("freeze should be active")
	}

	b.Tick(time.Second)
	if b.TimeLeft() != 10 {
		t.Errorf("TimeLeft() = %d while frozen, expected 10", b.TimeLeft())
	}
	if b.Combo().Timer != 2 {
		t.Errorf("combo timer = %d, expected to keep running", b.Combo().Timer)
	}
	events = b.Tick(time.Second)
	if exp, ok := findEvent[PowerUpExpiredEvent](events); !ok || exp.Type != PowerUpFreeze {
		t.Errorf("expected freeze expiry, got %v", events)
	}
	if b.TimeLeft() != 10 {
		t.Errorf("TimeLeft() = %d, expected 10", b.TimeLeft())
	}
	b.Tick(time.Second)
	if b.TimeLeft() != 9 {
		t.Errorf("TimeLeft() = %d after freeze, expected 9", b.TimeLeft())
	}
}

func TestMultiplierPowerUp(t *testing.T) {
	b := newTestBoard(t, quietRules())
	place(t, b, matchingTile(WithPowerUp(PowerUp{Type: PowerUpMultiplier, Duration: 15, MultiplierValue: 2})), hex.C(1, 0))
	if got := b.PowerUps().ScoreMultiplier(); got != 2 {
		t.Fatalf("ScoreMultiplier() = %v, expected 2", got)
	}

	events := place(t, b, NewTile(edgesWith(ColorBlue, hex.SouthEast, ColorPink), Normal()), hex.C(-1, 0))
	match, _ := findEvent[MatchEvent](events)
	bd := match.Breakdown
	sum := bd.Base + bd.QuickBonus + bd.ComboBonus + bd.MatchBonus + bd.MirrorBonus
	if bd.PowerMultiplier != 2 || bd.Total != sum*2 {
		t.Errorf("breakdown = %+v, expected doubled total", bd)
	}

	b.Tick(15 * time.Second)
	if got := b.PowerUps().ScoreMultiplier(); got != 1 {
		t.Errorf("ScoreMultiplier() after expiry = %v, expected 1", got)
	}
}

func TestPowerUpNeedsMatch(t *testing.T) {
	b := newTestBoard(t, quietRules())
	events := place(t, b, NewTile(Uniform(ColorBlue), WithPowerUp(PowerUp{Type: PowerUpFreeze, Duration: 10})), hex.C(1, 0))
	if _, ok := findEvent[PowerUpActivatedEvent](events); ok {
		t.Error("power-ups only fire on matching placements")
	}
	if b.PowerUps().Frozen() {
		t.Error("freeze should not be active")
	}
}

func TestColorShift(t *testing.T) {
	b := newTestBoard(t, quietRules())
	b.next[1] = NewTile(Uniform(ColorPink), Mirror())
	b.next[2] = NewTile(Edges{}, Joker())
	events := place(t, b, matchingTile(WithPowerUp(PowerUp{Type: PowerUpColorShift})), hex.C(1, 0))

	act, ok := findEvent[PowerUpActivatedEvent](events)
	if !ok || act.PowerUp.Type != PowerUpColorShift {
		t.Fatal("expected color shift activation")
	}
	if b.next[1].Kind != Mirror() || b.next[2].Kind != Joker() {
		t.Error("color shift keeps tile kinds")
	}
	if b.next[2].Edges != Uniform(ColorRainbow) {
		t.Error("jokers stay rainbow")
	}
	if b.PowerUps() != (PowerUpState{}) {
		t.Errorf("color shift has no timer, got %+v", b.PowerUps())
	}
}

func TestRotationSchedule(t *testing.T) {
	rules := quietRules()
	rules.RotationEnabled = true
	b := newTestBoard(t, rules)

	events := b.Tick(3 * time.Second)
	if _, ok := findEvent[RotationWarningEvent](events); ok {
		t.Error("warning too early")
	}
	events = b.Tick(500 * time.Millisecond)
	if _, ok := findEvent[RotationWarningEvent](events); !ok || !b.RotationWarning() {
		t.Error("expected rotation warning 1.5s before the flip")
	}
	events = b.Tick(1500 * time.Millisecond)
	rot, ok := findEvent[BoardRotatedEvent](events)
	if !ok || rot.Degrees != 180 || b.Rotation() != 180 {
		t.Fatalf("expected flip to 180, got %v", events)
	}
	if b.RotationWarning() {
		t.Error("warning clears after the flip")
	}

	b.Tick(5 * time.Second)
	if b.Rotation() != 0 {
		t.Errorf("Rotation() = %d, expected back to 0", b.Rotation())
	}
	mustValidate(t, b)
}

func TestRotationDisabled(t *testing.T) {
	b := newTestBoard(t, quietRules())
	b.Tick(time.Minute)
	if b.Rotation() != 0 {
		t.Error("rotation disabled should never flip")
	}
}

func TestPlacementTimestampsFollowTick(t *testing.T) {
	b := newTestBoard(t, quietRules())
	b.Tick(1234 * time.Millisecond)
	place(t, b, matchingTile(Normal()), hex.C(1, 0))
	if got := b.Combo().LastPlacement; got != testStart.UnixMilli()+1234 {
		t.Errorf("LastPlacement = %d, expected start+1234", got)
	}
}
