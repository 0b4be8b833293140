package engine

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/hexmatch/internal/games/hexmatch/hex"
)

// Edge is one side of a tile.
type Edge struct {
	Color Color `json:"color"`
}

// Edges holds the six edges of a tile, indexed by hex.Direction: edge i faces
// the neighbor in direction i.
type Edges [hex.DirectionCount]Edge

// EdgesOf builds an edge array from six colors.
func EdgesOf(colors ...Color) Edges {
	var e Edges
	for i := range e {
		if i < len(colors) {
			e[i].Color = colors[i]
		}
	}
	return e
}

// Uniform returns edges that are all the same color.
func Uniform(c Color) Edges {
	return EdgesOf(c, c, c, c, c, c)
}

// RotateClockwise shifts every edge one step clockwise: [last, ...rest].
func (e Edges) RotateClockwise() Edges {
	return e.Rotate(1)
}

// RotateCounterClockwise shifts every edge one step counter-clockwise: [...rest, first].
func (e Edges) RotateCounterClockwise() Edges {
	return e.Rotate(-1)
}

// Rotate shifts the edges by steps positions; positive is clockwise.
// Rotate(3) is its own inverse.
func (e Edges) Rotate(steps int) Edges {
	n := int(hex.DirectionCount)
	steps = ((steps % n) + n) % n
	var out Edges
	for i := range e {
		out[(i+steps)%n] = e[i]
	}
	return out
}

// Facing returns the edge pointing in the given direction.
func (e Edges) Facing(d hex.Direction) Edge {
	return e[d%hex.DirectionCount]
}

// PowerUpType identifies a power-up effect.
type PowerUpType uint8

const (
	PowerUpFreeze PowerUpType = iota
	PowerUpColorShift
	PowerUpMultiplier
	PowerUpTypeCount // Sentinel value for iteration
)

// String returns the name of the power-up type.
func (p PowerUpType) String() string {
	switch p {
	case PowerUpFreeze:
		return "freeze"
	case PowerUpColorShift:
		return "colorShift"
	case PowerUpMultiplier:
		return "multiplier"
	default:
		return "unknown"
	}
}

// MarshalText encodes the power-up type by name.
func (p PowerUpType) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a power-up type name.
func (p *PowerUpType) UnmarshalText(text []byte) error {
	for t := PowerUpType(0); t < PowerUpTypeCount; t++ {
		if t.String() == string(text) {
			*p = t
			return nil
		}
	}
	return fmt.Errorf("engine: unknown power-up %q", text)
}

// PowerUp is the effect a power-up tile carries. It activates once, when the
// tile is placed.
type PowerUp struct {
	Type            PowerUpType `json:"type"`
	Duration        int         `json:"duration,omitempty"` // seconds; 0 for instant effects
	MultiplierValue float64     `json:"multiplierValue,omitempty"`
}

// KindTag names the variant held by a Kind.
type KindTag uint8

const (
	KindNormal KindTag = iota
	KindMirror
	KindJoker
	KindPowerUp
)

// String returns the name of the kind tag.
func (k KindTag) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindMirror:
		return "mirror"
	case KindJoker:
		return "joker"
	case KindPowerUp:
		return "powerUp"
	default:
		return "unknown"
	}
}

// Kind is the tile variant: Normal, Mirror, Joker or PowerUp(config).
// Fields are unexported so a tile can never be a joker and carry a power-up.
type Kind struct {
	tag   KindTag
	power PowerUp
}

// Normal returns the plain tile kind.
func Normal() Kind { return Kind{tag: KindNormal} }

// Mirror returns the mirror tile kind.
func Mirror() Kind { return Kind{tag: KindMirror} }

// Joker returns the joker (rainbow) tile kind.
func Joker() Kind { return Kind{tag: KindJoker} }

// WithPowerUp returns a power-up tile kind carrying p.
func WithPowerUp(p PowerUp) Kind { return Kind{tag: KindPowerUp, power: p} }

// Tag returns the variant tag.
func (k Kind) Tag() KindTag { return k.tag }

// IsMirror reports whether the kind is Mirror.
func (k Kind) IsMirror() bool { return k.tag == KindMirror }

// IsJoker reports whether the kind is Joker.
func (k Kind) IsJoker() bool { return k.tag == KindJoker }

// PowerUp returns the carried power-up, if any.
func (k Kind) PowerUp() (PowerUp, bool) {
	if k.tag != KindPowerUp {
		return PowerUp{}, false
	}
	return k.power, true
}

// String returns a short description of the kind.
func (k Kind) String() string {
	if k.tag == KindPowerUp {
		return "powerUp:" + k.power.Type.String()
	}
	return k.tag.String()
}

type kindJSON struct {
	Type    string   `json:"type"`
	PowerUp *PowerUp `json:"powerUp,omitempty"`
}

// MarshalJSON encodes the kind as {"type": ..., "powerUp": {...}}.
func (k Kind) MarshalJSON() ([]byte, error) {
	out := kindJSON{Type: k.tag.String()}
	if k.tag == KindPowerUp {
		p := k.power
		out.PowerUp = &p
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a kind. A power-up kind without its config decodes
// as Normal.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var in kindJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Type {
	case "normal", "":
		*k = Normal()
	case "mirror":
		*k = Mirror()
	case "joker":
		*k = Joker()
	case "powerUp":
		if in.PowerUp == nil {
			*k = Normal()
			return nil
		}
		*k = WithPowerUp(*in.PowerUp)
	default:
		return fmt.Errorf("engine: unknown tile kind %q", in.Type)
	}
	return nil
}

// Tile is a hex tile. Queued tiles are unplaced and their coordinate is
// meaningless until placement.
type Tile struct {
	hex.Coord
	Edges  Edges `json:"edges"`
	Value  int   `json:"value"` // cached weighted match count, see TileValue
	Kind   Kind  `json:"kind"`
	Placed bool  `json:"isPlaced"`
}

// NewTile creates an unplaced tile.
func NewTile(edges Edges, kind Kind) Tile {
	if kind.IsJoker() {
		edges = Uniform(ColorRainbow)
	}
	return Tile{Edges: edges, Kind: kind}
}

// PlacedAt returns a copy of the tile committed to the given cell.
func (t Tile) PlacedAt(c hex.Coord) Tile {
	t.Coord = c
	t.Placed = true
	return t
}
