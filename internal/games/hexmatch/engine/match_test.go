package engine

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/hexmatch/internal/games/hexmatch/hex"
)

func placedTile(c hex.Coord, edges Edges, kind Kind) Tile {
	return NewTile(edges, kind).PlacedAt(c)
}

// edgesWith returns uniform base edges with one edge recolored.
func edgesWith(base Color, d hex.Direction, c Color) Edges {
	e := Uniform(base)
	e[d].Color = c
	return e
}

func TestMatchingEdgesNormal(t *testing.T) {
	seed := placedTile(hex.C(0, 0), Uniform(ColorPink), Normal())
	tile := placedTile(hex.C(1, 0), edgesWith(ColorBlue, hex.NorthWest, ColorPink), Normal())
	board := []Tile{seed}

	got := MatchingEdges(tile, board)
	if got.Len() != 1 || !got.Has(hex.NorthWest) {
		t.Errorf("MatchingEdges() = %08b, expected only NW", got)
	}
	if v := TileValue(tile, board); v != 1 {
		t.Errorf("TileValue() = %d, expected 1", v)
	}

	miss := placedTile(hex.C(1, 0), Uniform(ColorBlue), Normal())
	if HasAnyMatch(miss, board) {
		t.Error("blue tile should not match a pink seed")
	}
}

func TestJokerMatchesDouble(t *testing.T) {
	seed := placedTile(hex.C(0, 0), Uniform(ColorGreen), Normal())
	joker := placedTile(hex.C(0, 1), Edges{}, Joker())

	tiles := RecomputeValues([]Tile{seed, joker})
	if tiles[0].Value != 2 {
		t.Errorf("seed value = %d, expected 2 (match against a joker)", tiles[0].Value)
	}
	if tiles[1].Value != 2 {
		t.Errorf("joker value = %d, expected 2", tiles[1].Value)
	}
	if n := MatchingEdges(joker, tiles).Len(); n != 1 {
		t.Errorf("joker match count = %d, expected 1", n)
	}
}

func TestJokerWithoutNeighborsHasNoMatch(t *testing.T) {
	joker := placedTile(hex.C(2, 0), Edges{}, Joker())
	seed := placedTile(hex.C(0, 0), Uniform(ColorGreen), Normal())
	if HasAnyMatch(joker, []Tile{seed}) {
		t.Error("a joker only matches edges that have a neighbor")
	}
}

func TestJokerBesideLonelyMirror(t *testing.T) {
	mirror := placedTile(hex.C(0, 0), Uniform(ColorOrange), Mirror())
	joker := placedTile(hex.C(1, 0), Edges{}, Joker())

	tiles := RecomputeValues([]Tile{mirror, joker})
	if !HasAnyMatch(joker, tiles) {
		t.Error("a joker with a neighbor should match")
	}
	if n := MatchingEdges(joker, tiles).Len(); n != 1 {
		t.Errorf("joker match count = %d, expected 1", n)
	}
	if tiles[1].Value != 2 {
		t.Errorf("joker value = %d, expected 2", tiles[1].Value)
	}
	if HasAnyMatch(mirror, tiles) || tiles[0].Value != 0 {
		t.Errorf("mirror below threshold should count nothing, value %d", tiles[0].Value)
	}
}

func TestMirrorThreshold(t *testing.T) {
	seed := placedTile(hex.C(0, 0), Uniform(ColorPink), Normal())
	blue := placedTile(hex.C(1, 0), Uniform(ColorBlue), Normal())

	// One matching edge: below threshold, counts as nothing on both sides.
	lonely := placedTile(hex.C(-1, 0), Uniform(ColorPink), Mirror())
	tiles := RecomputeValues([]Tile{seed, blue, lonely})
	if HasAnyMatch(lonely, tiles) {
		t.Error("mirror with one matching edge should not match")
	}
	if tiles[2].Value != 0 {
		t.Errorf("mirror value = %d, expected 0", tiles[2].Value)
	}
	if tiles[0].Value != 0 {
		t.Errorf("seed value = %d, expected 0 (mirror below threshold)", tiles[0].Value)
	}

	// Touching both the seed and the blue tile with matching colors.
	edges := Uniform(ColorOrange)
	edges[hex.SouthWest].Color = ColorPink // faces the seed
	edges[hex.South].Color = ColorBlue     // faces (1,0)
	mirror := placedTile(hex.C(1, -1), edges, Mirror())
	tiles = RecomputeValues([]Tile{seed, blue, mirror})
	if n := MatchingEdges(mirror, tiles).Len(); n != 2 {
		t.Errorf("mirror match count = %d, expected 2", n)
	}
	if tiles[2].Value != 4 {
		t.Errorf("mirror value = %d, expected 4", tiles[2].Value)
	}
	if tiles[0].Value != 1 || tiles[1].Value != 1 {
		t.Errorf("neighbor values = %d, %d, expected 1, 1", tiles[0].Value, tiles[1].Value)
	}
}

func TestUpdateMirrorEdges(t *testing.T) {
	seed := placedTile(hex.C(0, 0), Uniform(ColorPink), Normal())
	blue := placedTile(hex.C(1, 0), Uniform(ColorBlue), Normal())
	mirror := placedTile(hex.C(1, -1), Uniform(ColorOrange), Mirror())

	got, bonus := UpdateMirrorEdges(mirror, []Tile{seed, blue}, 5)
	if got.Edges[hex.SouthWest].Color != ColorPink {
		t.Errorf("SW edge = %v, expected pink", got.Edges[hex.SouthWest].Color)
	}
	if got.Edges[hex.South].Color != ColorBlue {
		t.Errorf("S edge = %v, expected blue", got.Edges[hex.South].Color)
	}
	if got.Edges[hex.North].Color != ColorOrange {
		t.Errorf("open edge = %v, expected unchanged orange", got.Edges[hex.North].Color)
	}
	if bonus != 10 {
		t.Errorf("bonus = %d, expected 10", bonus)
	}

	_, bonus = UpdateMirrorEdges(placedTile(hex.C(-1, 0), Uniform(ColorOrange), Mirror()), []Tile{seed}, 5)
	if bonus != 0 {
		t.Errorf("single-edge bonus = %d, expected 0", bonus)
	}

	normal := placedTile(hex.C(1, -1), Uniform(ColorOrange), Normal())
	if got, bonus := UpdateMirrorEdges(normal, []Tile{seed, blue}, 5); got != normal || bonus != 0 {
		t.Error("non-mirror tiles are left alone")
	}
}

func TestUpdateMirrorEdgesSkipsRainbow(t *testing.T) {
	joker := placedTile(hex.C(0, 0), Edges{}, Joker())
	mirror := placedTile(hex.C(1, 0), Uniform(ColorGreen), Mirror())
	got, _ := UpdateMirrorEdges(mirror, []Tile{joker}, 5)
	if got.Edges[hex.NorthWest].Color != ColorGreen {
		t.Errorf("edge facing a joker = %v, expected green", got.Edges[hex.NorthWest].Color)
	}
}

func TestUpdateMirrorEdgesCountsRainbow(t *testing.T) {
	seed := placedTile(hex.C(0, 0), Uniform(ColorPink), Normal())
	joker := placedTile(hex.C(1, 0), Edges{}, Joker())
	mirror := placedTile(hex.C(1, -1), Uniform(ColorOrange), Mirror())

	got, bonus := UpdateMirrorEdges(mirror, []Tile{seed, joker}, 5)
	if got.Edges[hex.SouthWest].Color != ColorPink {
		t.Errorf("SW edge = %v, expected pink", got.Edges[hex.SouthWest].Color)
	}
	if got.Edges[hex.South].Color != ColorOrange {
		t.Errorf("edge facing a joker = %v, expected unchanged orange", got.Edges[hex.South].Color)
	}
	if bonus != 10 {
		t.Errorf("bonus = %d, expected 10 for one copied and one rainbow edge", bonus)
	}
}

// randomBoard fills every cell of the radius with random tiles of all kinds.
func randomBoard(seed int64, radius int) []Tile {
	f := newTestFactory(seed)
	up := Upgrades{MirrorChance: 0.2, PowerUpChance: 0.2}
	var tiles []Tile
	rng := rand.New(rand.NewSource(seed))
	for _, c := range hex.AllCoords(radius) {
		if rng.Intn(4) == 0 {
			continue
		}
		tiles = append(tiles, f.RandomTile(c, up).PlacedAt(c))
	}
	return tiles
}

// oneSided reports the joker facing a mirror below its threshold, the one
// pair where only the joker counts the edge.
func oneSided(occ occupancy, a, b Tile) bool {
	return (a.Kind.IsJoker() && occ.belowThreshold(b)) || (b.Kind.IsJoker() && occ.belowThreshold(a))
}

func TestMatchSymmetry(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		tiles := randomBoard(seed, 3)
		occ := occupancyOf(tiles)
		for _, a := range tiles {
			setA := occ.matching(a)
			for _, d := range hex.Directions() {
				b, ok := occ[a.Neighbor(d)]
				if !ok {
					if setA.Has(d) {
						t.Fatalf("seed %d: %v matches empty cell in direction %v", seed, a.Coord, d)
					}
					continue
				}
				if oneSided(occ, a, b) {
					continue
				}
				setB := occ.matching(b)
				if setA.Has(d) != setB.Has(d.Opposite()) {
					t.Fatalf("seed %d: %v->%v match %v but reverse %v", seed, a.Coord, b.Coord, setA.Has(d), setB.Has(d.Opposite()))
				}
			}
		}
	}
}

func TestRecomputeIdempotent(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		once := RecomputeValues(randomBoard(seed, 3))
		twice := RecomputeValues(once)
		for i := range once {
			if once[i].Value != twice[i].Value {
				t.Fatalf("seed %d: tile %v value %d then %d", seed, once[i].Coord, once[i].Value, twice[i].Value)
			}
		}
	}
}

func TestRecomputeDoesNotMutateInput(t *testing.T) {
	seed := placedTile(hex.C(0, 0), Uniform(ColorPink), Normal())
	other := placedTile(hex.C(1, 0), Uniform(ColorPink), Normal())
	in := []Tile{seed, other}
	_ = RecomputeValues(in)
	if in[0].Value != 0 || in[1].Value != 0 {
		t.Error("RecomputeValues must return a copy")
	}
}
