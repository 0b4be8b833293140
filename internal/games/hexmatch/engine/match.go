package engine

import (
	"math/bits"

	"github.com/vovakirdan/hexmatch/internal/games/hexmatch/hex"
)

// EdgeSet is a set of edge indexes, one bit per direction.
type EdgeSet uint8

// Has reports whether the edge facing d is in the set.
func (s EdgeSet) Has(d hex.Direction) bool {
	return s&(1<<d) != 0
}

// Len returns the number of edges in the set.
func (s EdgeSet) Len() int {
	return bits.OnesCount8(uint8(s))
}

func (s EdgeSet) with(d hex.Direction) EdgeSet {
	return s | 1<<d
}

// occupancy indexes placed tiles by cell.
type occupancy map[hex.Coord]Tile

func occupancyOf(tiles []Tile) occupancy {
	occ := make(occupancy, len(tiles)+1)
	for _, t := range tiles {
		occ[t.Coord] = t
	}
	return occ
}

// rawMatches returns the edges of t whose neighbor exists and whose facing
// colors match, before any mirror threshold is applied.
func (occ occupancy) rawMatches(t Tile) EdgeSet {
	var set EdgeSet
	for _, d := range hex.Directions() {
		n, ok := occ[t.Neighbor(d)]
		if !ok {
			continue
		}
		if colorsMatch(t.Edges[d].Color, n.Edges[d.Opposite()].Color) {
			set = set.with(d)
		}
	}
	return set
}

// belowThreshold reports whether t is a mirror that does not yet have enough
// matching edges for any of them to count.
func (occ occupancy) belowThreshold(t Tile) bool {
	return t.Kind.IsMirror() && occ.rawMatches(t).Len() < MirrorThreshold
}

// matching applies the mirror threshold to both sides of every raw match, so
// A matches B exactly when B matches A. A joker keeps every edge that has a
// neighbor, including one facing a mirror below its threshold; that mirror
// still counts nothing on its side.
func (occ occupancy) matching(t Tile) EdgeSet {
	if occ.belowThreshold(t) {
		return 0
	}
	var set EdgeSet
	raw := occ.rawMatches(t)
	for _, d := range hex.Directions() {
		if !raw.Has(d) {
			continue
		}
		if !t.Kind.IsJoker() && occ.belowThreshold(occ[t.Neighbor(d)]) {
			continue
		}
		set = set.with(d)
	}
	return set
}

// edgeWeight is 2 when the match is made by or against a joker, or when t is
// a mirror that met its threshold, and 1 otherwise.
func edgeWeight(t, neighbor Tile) int {
	if t.Kind.IsJoker() || neighbor.Kind.IsJoker() || t.Kind.IsMirror() {
		return 2
	}
	return 1
}

func (occ occupancy) value(t Tile) int {
	total := 0
	set := occ.matching(t)
	for _, d := range hex.Directions() {
		if set.Has(d) {
			total += edgeWeight(t, occ[t.Neighbor(d)])
		}
	}
	return total
}

// withTile returns the occupancy of placed with t added at its coordinate.
func withTile(t Tile, placed []Tile) occupancy {
	occ := occupancyOf(placed)
	occ[t.Coord] = t
	return occ
}

// MatchingEdges returns the edges of t that match a neighbor on the board,
// treating t as if it stood at its coordinate.
func MatchingEdges(t Tile, placed []Tile) EdgeSet {
	return withTile(t, placed).matching(t)
}

// HasAnyMatch reports whether t has at least one counted match. A joker
// matches as soon as it has a neighbor. A mirror below its threshold never
// matches, even beside a joker.
func HasAnyMatch(t Tile, placed []Tile) bool {
	occ := withTile(t, placed)
	if t.Kind.IsJoker() {
		for _, d := range hex.Directions() {
			if _, ok := occ[t.Neighbor(d)]; ok {
				return true
			}
		}
		return false
	}
	return occ.matching(t) != 0
}

// TileValue returns the weighted match count of t: one per matching edge,
// doubled for joker matches and for mirrors that met their threshold.
func TileValue(t Tile, placed []Tile) int {
	return withTile(t, placed).value(t)
}

// RecomputeValues returns a copy of placed with every Value recomputed from
// the live board.
func RecomputeValues(placed []Tile) []Tile {
	occ := occupancyOf(placed)
	out := make([]Tile, len(placed))
	for i, t := range placed {
		t.Value = occ.value(t)
		out[i] = t
	}
	return out
}

// UpdateMirrorEdges rewrites each edge of a mirror that touches a neighbor to
// the neighbor's facing color. Open edges keep their color, and so do edges
// facing a rainbow edge since rainbow already matches. Copied and
// rainbow-facing edges both count as mirrored: once at least MirrorThreshold
// edges are mirrored the bonus is pointsPerEdge for each of them. Non-mirror
// tiles are returned unchanged.
func UpdateMirrorEdges(t Tile, placed []Tile, pointsPerEdge int) (Tile, int) {
	if !t.Kind.IsMirror() {
		return t, 0
	}
	occ := occupancyOf(placed)
	mirrored := 0
	for _, d := range hex.Directions() {
		n, ok := occ[t.Neighbor(d)]
		if !ok {
			continue
		}
		mirrored++
		facing := n.Edges[d.Opposite()].Color
		if facing == ColorRainbow {
			continue
		}
		t.Edges[d].Color = facing
	}
	if mirrored < MirrorThreshold {
		return t, 0
	}
	return t, mirrored * pointsPerEdge
}
