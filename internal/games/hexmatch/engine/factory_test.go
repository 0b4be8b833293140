package engine

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/hexmatch/internal/games/hexmatch/hex"
)

func newTestFactory(seed int64) *Factory {
	return NewFactory(rand.New(rand.NewSource(seed)), DefaultRules())
}

func TestRandomTileKinds(t *testing.T) {
	tests := []struct {
		name     string
		jokers   float64
		upgrades Upgrades
		expected KindTag
	}{
		{"always mirror", 0, Upgrades{MirrorChance: 1, PowerUpChance: 1}, KindMirror},
		{"always power-up", 1, Upgrades{PowerUpChance: 1}, KindPowerUp},
		{"always joker", 1, Upgrades{}, KindJoker},
		{"always normal", 0, Upgrades{}, KindNormal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rules := DefaultRules()
			rules.JokerChance = tc.jokers
			f := NewFactory(rand.New(rand.NewSource(7)), rules)
			for i := 0; i < 50; i++ {
				tile := f.RandomTile(hex.C(1, 1), tc.upgrades)
				if tile.Kind.Tag() != tc.expected {
					t.Fatalf("tile %d kind = %v, expected %v", i, tile.Kind, tc.expected)
				}
				if tile.Placed {
					t.Fatal("random tiles must start unplaced")
				}
				if err := validateKind(tile); err != nil {
					t.Fatalf("validateKind() = %v", err)
				}
			}
		})
	}
}

func TestRandomTileUsesPalette(t *testing.T) {
	f := newTestFactory(3)
	allowed := make(map[Color]bool)
	for _, c := range Palette(DefaultRules().PaletteSize) {
		allowed[c] = true
	}
	seen := make(map[Color]bool)
	for i := 0; i < 200; i++ {
		tile := f.RandomTile(hex.Coord{}, Upgrades{})
		if tile.Kind.IsJoker() {
			continue
		}
		for _, e := range tile.Edges {
			if !allowed[e.Color] {
				t.Fatalf("edge color %v outside palette", e.Color)
			}
			seen[e.Color] = true
		}
	}
	if len(seen) != len(allowed) {
		t.Errorf("saw %d colors, expected all %d", len(seen), len(allowed))
	}
}

func TestPowerUpConfig(t *testing.T) {
	rules := DefaultRules()
	f := NewFactory(rand.New(rand.NewSource(11)), rules)
	seen := make(map[PowerUpType]bool)
	for i := 0; i < 100; i++ {
		tile := f.RandomTile(hex.Coord{}, Upgrades{PowerUpChance: 1})
		p, ok := tile.Kind.PowerUp()
		if !ok {
			t.Fatalf("tile %d has no power-up", i)
		}
		seen[p.Type] = true
		switch p.Type {
		case PowerUpFreeze:
			if p.Duration != rules.FreezeSecs {
				t.Errorf("freeze duration = %d, expected %d", p.Duration, rules.FreezeSecs)
			}
		case PowerUpMultiplier:
			if p.Duration != rules.MultiplierSecs || p.MultiplierValue != rules.MultiplierValue {
				t.Errorf("multiplier config = %+v", p)
			}
		case PowerUpColorShift:
			if p.Duration != 0 {
				t.Errorf("color shift duration = %d, expected 0", p.Duration)
			}
		}
	}
	if len(seen) != int(PowerUpTypeCount) {
		t.Errorf("saw %d power-up types, expected %d", len(seen), PowerUpTypeCount)
	}
}

func TestSeedTile(t *testing.T) {
	seed := newTestFactory(1).SeedTile()
	if seed.Coord != hex.C(0, 0) {
		t.Errorf("seed at %v, expected origin", seed.Coord)
	}
	if !seed.Placed {
		t.Error("seed must be placed")
	}
	if seed.Kind.Tag() != KindNormal {
		t.Errorf("seed kind = %v, expected normal", seed.Kind)
	}
}

func TestNextQueue(t *testing.T) {
	q := newTestFactory(1).NextQueue(QueueSize, Upgrades{})
	if len(q) != QueueSize {
		t.Fatalf("len = %d, expected %d", len(q), QueueSize)
	}
	for i, tile := range q {
		if tile.Placed {
			t.Errorf("queued tile %d is placed", i)
		}
	}
}

func TestRerollEdgesKeepsKind(t *testing.T) {
	f := newTestFactory(5)
	mirror := NewTile(Uniform(ColorPink), Mirror())
	changed := false
	for i := 0; i < 20; i++ {
		got := f.RerollEdges(mirror)
		if got.Kind != mirror.Kind {
			t.Fatalf("kind = %v, expected mirror", got.Kind)
		}
		if got.Edges != mirror.Edges {
			changed = true
		}
	}
	if !changed {
		t.Error("RerollEdges never changed the edges")
	}

	joker := NewTile(Edges{}, Joker())
	if f.RerollEdges(joker) != joker {
		t.Error("jokers keep their rainbow edges")
	}
}

func TestDeterministicFactory(t *testing.T) {
	a := newTestFactory(42)
	b := newTestFactory(42)
	up := Upgrades{MirrorChance: 0.2, PowerUpChance: 0.2}
	for i := 0; i < 30; i++ {
		if a.RandomTile(hex.Coord{}, up) != b.RandomTile(hex.Coord{}, up) {
			t.Fatalf("tile %d differs between identically seeded factories", i)
		}
	}
}
