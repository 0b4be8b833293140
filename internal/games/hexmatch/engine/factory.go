package engine

import (
	"github.com/vovakirdan/hexmatch/internal/games/hexmatch/hex"
)

// Rand is the randomness the factory needs. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Factory builds tiles from the palette and special-tile chances.
type Factory struct {
	rng         Rand
	palette     []Color
	jokerChance float64
	rules       Rules
}

// NewFactory creates a tile factory for the given rules.
func NewFactory(rng Rand, rules Rules) *Factory {
	return &Factory{
		rng:         rng,
		palette:     Palette(rules.PaletteSize),
		jokerChance: rules.JokerChance,
		rules:       rules,
	}
}

// randomEdges draws each edge color independently from the palette.
func (f *Factory) randomEdges() Edges {
	var e Edges
	for i := range e {
		e[i].Color = f.palette[f.rng.Intn(len(f.palette))]
	}
	return e
}

// randomPowerUp picks a power-up type uniformly and fills in its config.
func (f *Factory) randomPowerUp() PowerUp {
	switch PowerUpType(f.rng.Intn(int(PowerUpTypeCount))) {
	case PowerUpFreeze:
		return PowerUp{Type: PowerUpFreeze, Duration: f.rules.FreezeSecs}
	case PowerUpMultiplier:
		return PowerUp{
			Type:            PowerUpMultiplier,
			Duration:        f.rules.MultiplierSecs,
			MultiplierValue: f.rules.MultiplierValue,
		}
	default:
		return PowerUp{Type: PowerUpColorShift}
	}
}

// RandomTile creates an unplaced tile at c. Edge colors are drawn first, then
// the special categories are rolled in order: mirror, power-up, joker. Each
// roll is only made when the previous ones failed.
func (f *Factory) RandomTile(c hex.Coord, up Upgrades) Tile {
	edges := f.randomEdges()
	kind := Normal()

	switch {
	case f.rng.Float64() < up.MirrorChance:
		kind = Mirror()
	case f.rng.Float64() < up.PowerUpChance*(1-up.MirrorChance):
		kind = WithPowerUp(f.randomPowerUp())
	case f.rng.Float64() < f.jokerChance:
		kind = Joker()
	}

	t := NewTile(edges, kind)
	t.Coord = c
	return t
}

// SeedTile creates the placed Normal tile at the origin that starts a game.
func (f *Factory) SeedTile() Tile {
	return NewTile(f.randomEdges(), Normal()).PlacedAt(hex.C(0, 0))
}

// NextQueue creates count unplaced tiles. Their coordinate is assigned at
// placement time.
func (f *Factory) NextQueue(count int, up Upgrades) []Tile {
	tiles := make([]Tile, count)
	for i := range tiles {
		tiles[i] = f.RandomTile(hex.Coord{}, up)
	}
	return tiles
}

// RerollEdges returns t with fresh edge colors. Jokers keep their rainbow edges.
func (f *Factory) RerollEdges(t Tile) Tile {
	if t.Kind.IsJoker() {
		return t
	}
	t.Edges = f.randomEdges()
	return t
}
