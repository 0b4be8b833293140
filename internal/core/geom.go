// Package core provides the host-facing types shared by the hexmatch modes
// and the terminal platform: runtime config, input frames, the screen buffer
// and save slots. It has no external dependencies (especially no Bubble Tea)
// so game logic stays pure and testable.
package core

// Point is a terminal cell position.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned area of the screen, used for panels and hit tests.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
