package core

// Color is the foreground color of a screen cell. The platform maps each
// value to an ANSI 256-color code.
type Color uint8

// Predefined colors. The first block mirrors the tile palette.
const (
	ColorDefault Color = iota
	ColorPink
	ColorBlue
	ColorGreen
	ColorYellow
	ColorPurple
	ColorOrange
	ColorRainbow // Shown with a bright white glyph
	ColorRed
	ColorCyan
	ColorWhite
	ColorGray
)

// Attr is a set of text attributes for a screen cell.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrReverse
	AttrFaint
)

// Has reports whether every attribute in other is set.
func (a Attr) Has(other Attr) bool {
	return a&other == other
}
