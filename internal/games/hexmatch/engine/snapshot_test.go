package engine

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/hexmatch/internal/games/hexmatch/hex"
)

func restoreOptions() Options {
	return Options{Rules: quietRules(), Rand: rand.New(rand.NewSource(2)), Start: testStart.Add(time.Hour)}
}

func TestSnapshotRoundTrip(t *testing.T) {
	b := newTestBoard(t, quietRules())
	place(t, b, matchingTile(WithPowerUp(PowerUp{Type: PowerUpMultiplier, Duration: 15, MultiplierValue: 2})), hex.C(1, 0))
	b.Tick(1500 * time.Millisecond)
	b.RotateBoard()

	data, err := b.Snapshot().Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	s, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}
	restored := Restore(*s, restoreOptions())
	mustValidate(t, restored)

	if !reflect.DeepEqual(restored.Snapshot(), b.Snapshot()) {
		t.Errorf("restored snapshot differs:\n got %+v\nwant %+v", restored.Snapshot(), b.Snapshot())
	}
}

func TestSnapshotJSONFields(t *testing.T) {
	b := newTestBoard(t, quietRules())
	data, err := b.Snapshot().Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	for _, key := range []string{"placedTiles", "nextTiles", "score", "timeLeft", "boardRotation", "powerUps", "combo", "startTime", "timedMode"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("snapshot JSON missing %q", key)
		}
	}
}

func TestRestoreFallbacks(t *testing.T) {
	good := placedTile(hex.C(0, 0), Uniform(ColorPink), Normal())
	blob := map[string]any{
		"placedTiles": []any{
			good,
			placedTile(hex.C(9, 0), Uniform(ColorPink), Normal()), // out of bounds
			placedTile(hex.C(0, 0), Uniform(ColorBlue), Normal()), // duplicate
			placedTile(hex.C(1, 0), Uniform(ColorRainbow), Normal()),
			"garbage",
		},
		"nextTiles":     []any{NewTile(Uniform(ColorGreen), Mirror())},
		"score":         "lots",
		"timeLeft":      nil,
		"boardRotation": 170,
		"powerUps":      map[string]any{"freeze": -4, "multiplier": 5},
		"combo":         map[string]any{"count": 2, "timer": 0, "multiplier": 9},
		"timedMode":     true,
		"startTime":     -1,
	}
	data, err := json.Marshal(blob)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	s, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}
	opts := restoreOptions()
	b := Restore(*s, opts)
	mustValidate(t, b)

	if len(b.Placed()) != 1 || b.Placed()[0].Edges != good.Edges {
		t.Errorf("placed = %v, expected only the valid seed", b.Placed())
	}
	if len(b.Next()) != QueueSize || b.Next()[0].Kind != Mirror() {
		t.Errorf("queue = %v, expected the saved mirror plus refills", b.Next())
	}
	if b.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", b.Score())
	}
	if b.Rotation() != 180 {
		t.Errorf("Rotation() = %d, expected snap to 180", b.Rotation())
	}
	if !b.Timed() || b.TimeLeft() != opts.Rules.TimeLimitSecs {
		t.Errorf("TimeLeft() = %d, expected full limit", b.TimeLeft())
	}
	if b.Combo() != NoCombo() {
		t.Errorf("combo = %+v, expected reset", b.Combo())
	}
	p := b.PowerUps()
	if p.FreezeRemaining != 0 || p.MultiplierRemaining != 5 || p.ScoreMultiplier() != opts.Rules.MultiplierValue {
		t.Errorf("power-ups = %+v", p)
	}
	if b.StartTime() != opts.Start.UnixMilli() {
		t.Errorf("StartTime() = %d, expected fallback to now", b.StartTime())
	}
}

func TestRestoreRecomputesComboMultiplier(t *testing.T) {
	s := Snapshot{
		PlacedTiles: []Tile{placedTile(hex.C(0, 0), Uniform(ColorPink), Normal())},
		Combo:       ComboState{Count: 3, Timer: 2, Multiplier: 99, LastPlacement: 5},
		TimeLeft:    Untimed,
	}
	b := Restore(s, restoreOptions())
	expected := DefaultRules().ComboFamily.At(3, 1)
	if !approx(b.Combo().Multiplier, expected) {
		t.Errorf("Multiplier = %f, expected %f", b.Combo().Multiplier, expected)
	}
	mustValidate(t, b)
}

func TestRestoreSnapsRotation(t *testing.T) {
	tests := []struct {
		in, expected int
	}{
		{0, 0},
		{180, 180},
		{360, 0},
		{-180, 180},
		{45, 0},
		{135, 180},
		{300, 0},
	}
	for _, tc := range tests {
		if got := snapRotation(tc.in); got != tc.expected {
			t.Errorf("snapRotation(%d) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}

func TestRestoreFullBoardClears(t *testing.T) {
	var tiles []Tile
	for _, c := range hex.AllCoords(3) {
		tiles = append(tiles, placedTile(c, Uniform(ColorBlue), Normal()))
	}
	b := Restore(Snapshot{PlacedTiles: tiles, TimeLeft: Untimed}, restoreOptions())
	if len(b.Placed()) != 1 {
		t.Errorf("restored full board should clear, got %d tiles", len(b.Placed()))
	}
	mustValidate(t, b)
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "not json", "[1,2]", "null", "42"} {
		if _, err := DecodeSnapshot([]byte(in)); err == nil {
			t.Errorf("DecodeSnapshot(%q) should fail", in)
		}
	}
}

type failingAdapter struct{}

func (failingAdapter) Load(context.Context) (*Snapshot, error) {
	return nil, errors.New("disk on fire")
}

func (failingAdapter) Save(context.Context, Snapshot) error {
	return errors.New("disk on fire")
}

func TestResume(t *testing.T) {
	ctx := context.Background()

	b, restored := Resume(ctx, failingAdapter{}, restoreOptions())
	if restored || b == nil {
		t.Error("failed load should start fresh")
	}

	mem := NewMemoryAdapter()
	if _, restored := Resume(ctx, mem, restoreOptions()); restored {
		t.Error("empty adapter should start fresh")
	}

	orig := newTestBoard(t, quietRules())
	place(t, orig, matchingTile(Normal()), hex.C(1, 0))
	if err := mem.Save(ctx, orig.Snapshot()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	b, restored = Resume(ctx, mem, restoreOptions())
	if !restored {
		t.Fatal("saved game should be resumed")
	}
	if b.Score() != orig.Score() || len(b.Placed()) != 2 {
		t.Errorf("resumed score %d with %d tiles", b.Score(), len(b.Placed()))
	}

	orig.End()
	if err := mem.Save(ctx, orig.Snapshot()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, restored := Resume(ctx, mem, restoreOptions()); restored {
		t.Error("finished games are not resumed")
	}
}

func TestMemoryAdapter(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryAdapter()

	s, err := mem.Load(ctx)
	if err != nil || s != nil {
		t.Fatalf("Load() on empty = %v, %v", s, err)
	}

	b := newTestBoard(t, quietRules())
	snap := b.Snapshot()
	if err := mem.Save(ctx, snap); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	snap.Score = 999
	loaded, err := mem.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Score != 0 {
		t.Error("saved snapshot must not alias the caller's copy")
	}

	mem.Clear()
	if s, _ := mem.Load(ctx); s != nil {
		t.Error("Clear() should forget the snapshot")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := mem.Save(cancelled, snap); err == nil {
		t.Error("Save() with cancelled context should fail")
	}
}
