// Package hex provides axial-coordinate geometry for the flat-top hexagonal board.
// It is pure and deterministic; nothing here knows about tiles or scoring.
package hex

import "fmt"

// Coord is an axial hex coordinate. The third cube coordinate s = -q-r is
// derived on demand and never stored.
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// C is a convenience constructor for Coord.
func C(q, r int) Coord {
	return Coord{Q: q, R: r}
}

// S returns the implicit third cube coordinate.
func (c Coord) S() int {
	return -c.Q - c.R
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}

// Add returns the component-wise sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{Q: c.Q + other.Q, R: c.R + other.R}
}

// Neg returns the coordinate mirrored through the origin (a 180° board turn).
func (c Coord) Neg() Coord {
	return Coord{Q: -c.Q, R: -c.R}
}

// Neighbor returns the adjacent coordinate in the given direction.
func (c Coord) Neighbor(d Direction) Coord {
	return c.Add(d.Offset())
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b Coord) int {
	return ring(a.Q-b.Q, a.R-b.R)
}

// ring returns max(|q|,|r|,|q+r|), the ring index of an offset from the origin.
func ring(q, r int) int {
	return max(abs(q), abs(r), abs(q+r))
}

// InBounds reports whether the coordinate lies within a board of the given radius.
func InBounds(c Coord, radius int) bool {
	return ring(c.Q, c.R) <= radius
}

// CellCount returns the number of cells on a board of the given radius:
// 1 + 6 + 12 + ... = 3R(R+1) + 1.
func CellCount(radius int) int {
	if radius < 0 {
		return 0
	}
	return 3*radius*(radius+1) + 1
}

// AllCoords returns every coordinate within the radius, ordered by q then r.
func AllCoords(radius int) []Coord {
	coords := make([]Coord, 0, CellCount(radius))
	for q := -radius; q <= radius; q++ {
		for r := -radius; r <= radius; r++ {
			c := C(q, r)
			if InBounds(c, radius) {
				coords = append(coords, c)
			}
		}
	}
	return coords
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
