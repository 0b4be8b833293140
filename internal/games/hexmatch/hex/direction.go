package hex

// Direction indexes the six neighbors of a hex, clockwise in screen space
// (y grows downward). Edge i of a tile faces the neighbor in direction i.
type Direction uint8

const (
	SouthEast Direction = iota
	South
	SouthWest
	NorthWest
	North
	NorthEast
	DirectionCount // Sentinel value for iteration
)

// offsets is the fixed direction table. Entry i and entry (i+3)%6 are always
// opposite vectors.
var offsets = [DirectionCount]Coord{
	{Q: 1, R: 0},
	{Q: 0, R: 1},
	{Q: -1, R: 1},
	{Q: -1, R: 0},
	{Q: 0, R: -1},
	{Q: 1, R: -1},
}

// Directions returns all six directions in edge-index order.
func Directions() [DirectionCount]Direction {
	return [DirectionCount]Direction{SouthEast, South, SouthWest, NorthWest, North, NorthEast}
}

// Offset returns the axial delta for one step in this direction.
func (d Direction) Offset() Coord {
	return offsets[d%DirectionCount]
}

// Opposite returns the direction pointing back the other way.
func (d Direction) Opposite() Direction {
	return (d + 3) % DirectionCount
}

// String returns the compass name of the direction.
func (d Direction) String() string {
	switch d {
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case NorthWest:
		return "NW"
	case North:
		return "N"
	case NorthEast:
		return "NE"
	default:
		return "?"
	}
}
