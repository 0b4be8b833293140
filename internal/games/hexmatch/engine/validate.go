package engine

import (
	"fmt"

	"github.com/vovakirdan/hexmatch/internal/games/hexmatch/hex"
)

// ValidationError describes a broken board invariant.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks every board invariant. A nil result means the state is
// consistent.
func (b *Board) Validate() error {
	seen := make(map[hex.Coord]bool, len(b.placed))
	for _, t := range b.placed {
		if !hex.InBounds(t.Coord, b.rules.Radius) {
			return ValidationError{"OUT_OF_BOUNDS", fmt.Sprintf("tile at %v outside radius %d", t.Coord, b.rules.Radius)}
		}
		if seen[t.Coord] {
			return ValidationError{"OVERLAP", fmt.Sprintf("two tiles at %v", t.Coord)}
		}
		seen[t.Coord] = true
		if !t.Placed {
			return ValidationError{"NOT_PLACED", fmt.Sprintf("tile at %v is not marked placed", t.Coord)}
		}
		if err := validateKind(t); err != nil {
			return err
		}
	}
	if len(b.placed) == 0 {
		return ValidationError{"EMPTY_BOARD", "board has no tiles"}
	}

	for i, t := range RecomputeValues(b.placed) {
		if b.placed[i].Value != t.Value {
			return ValidationError{"STALE_VALUE", fmt.Sprintf("tile at %v has value %d, live count is %d", t.Coord, b.placed[i].Value, t.Value)}
		}
	}

	if len(b.next) != QueueSize {
		return ValidationError{"QUEUE_SIZE", fmt.Sprintf("queue has %d tiles, expected %d", len(b.next), QueueSize)}
	}
	for i, t := range b.next {
		if t.Placed {
			return ValidationError{"QUEUE_PLACED", fmt.Sprintf("queued tile %d is marked placed", i)}
		}
		if err := validateKind(t); err != nil {
			return err
		}
	}
	if b.selected < -1 || b.selected >= len(b.next) {
		return ValidationError{"SELECTION", fmt.Sprintf("selected index %d out of range", b.selected)}
	}

	if b.rotation != 0 && b.rotation != 180 {
		return ValidationError{"ROTATION", fmt.Sprintf("rotation %d is not 0 or 180", b.rotation)}
	}

	c := b.combo
	if c.Count < 0 || c.Timer < 0 || c.Multiplier < 1 {
		return ValidationError{"COMBO", fmt.Sprintf("invalid combo %+v", c)}
	}
	if b.powerUps.FreezeRemaining < 0 || b.powerUps.MultiplierRemaining < 0 {
		return ValidationError{"POWER_UPS", fmt.Sprintf("negative power-up timer %+v", b.powerUps)}
	}

	if b.rules.TimedMode {
		if b.timeLeft < 0 {
			return ValidationError{"TIME_LEFT", fmt.Sprintf("timed session has timeLeft %d", b.timeLeft)}
		}
	} else if b.timeLeft != Untimed {
		return ValidationError{"TIME_LEFT", fmt.Sprintf("untimed session has timeLeft %d", b.timeLeft)}
	}
	return nil
}

// validateKind checks that a joker carries only rainbow edges and that no
// other tile does.
func validateKind(t Tile) error {
	for _, e := range t.Edges {
		if t.Kind.IsJoker() != (e.Color == ColorRainbow) {
			return ValidationError{"EDGE_COLOR", fmt.Sprintf("%s tile at %v has %s edge", t.Kind, t.Coord, e.Color)}
		}
		if e.Color != ColorRainbow && e.Color >= ColorCount {
			return ValidationError{"EDGE_COLOR", fmt.Sprintf("tile at %v has unknown color %d", t.Coord, e.Color)}
		}
	}
	return nil
}
