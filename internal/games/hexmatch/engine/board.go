package engine

import (
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/hexmatch/internal/games/hexmatch/hex"
)

// Untimed is the timeLeft sentinel of a session without a match clock.
const Untimed = -1

// Rewards accumulates progression earned during a session.
type Rewards struct {
	Experience    int `json:"experience"`
	UpgradePoints int `json:"upgradePoints"`
	GridClears    int `json:"gridClears"`
}

// Options configures a new board.
type Options struct {
	Rules    Rules
	Upgrades Upgrades
	Rand     Rand      // nil seeds math/rand from Start
	Start    time.Time // zero means time.Now()
}

// undoState is the single-level undo snapshot taken before a placement. Its
// combo and power-up timers keep decaying with the live ones.
type undoState struct {
	placed   []Tile
	next     []Tile
	score    int
	combo    ComboState
	powerUps PowerUpState
	rewards  Rewards
}

// Board is the authoritative state of one session: placed tiles, the next
// tile queue, score, combo, power-ups and the clocks. It is not safe for
// concurrent use; the host serializes input and ticks.
type Board struct {
	rules    Rules
	upgrades Upgrades
	factory  *Factory

	placed   []Tile
	next     []Tile
	selected int // -1 when idle
	rotation int // 0 or 180
	score    int
	timeLeft int // seconds, or Untimed
	combo    ComboState
	powerUps PowerUpState
	rewards  Rewards
	gameOver bool

	startTime   int64 // epoch millis
	elapsed     time.Duration
	secondAcc   time.Duration
	rotationAcc time.Duration
	warning     bool

	undo *undoState
}

// New creates a board holding only the seed tile and a fresh queue.
func New(opts Options) *Board {
	b := newBoard(opts)
	b.placed = RecomputeValues([]Tile{b.factory.SeedTile()})
	b.next = b.factory.NextQueue(QueueSize, b.upgrades)
	if b.rules.TimedMode {
		b.timeLeft = b.rules.TimeLimitSecs
	}
	return b
}

// newBoard sets up everything except the tiles.
func newBoard(opts Options) *Board {
	rules := opts.Rules
	if rules.Radius <= 0 {
		rules = DefaultRules()
	}
	start := opts.Start
	if start.IsZero() {
		start = time.Now()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(start.UnixNano()))
	}
	return &Board{
		rules:     rules,
		upgrades:  opts.Upgrades,
		factory:   NewFactory(rng, rules),
		selected:  -1,
		timeLeft:  Untimed,
		combo:     NoCombo(),
		startTime: start.UnixMilli(),
	}
}

// Rules returns the session rules.
func (b *Board) Rules() Rules { return b.rules }

// Radius returns the board radius.
func (b *Board) Radius() int { return b.rules.Radius }

// Upgrades returns the progression input.
func (b *Board) Upgrades() Upgrades { return b.upgrades }

// SetUpgrades replaces the progression input used for new tiles and multipliers.
func (b *Board) SetUpgrades(u Upgrades) { b.upgrades = u }

// Placed returns a copy of the placed tiles.
func (b *Board) Placed() []Tile { return slices.Clone(b.placed) }

// Next returns a copy of the next-tile queue.
func (b *Board) Next() []Tile { return slices.Clone(b.next) }

// Selected returns the selected queue index, or -1.
func (b *Board) Selected() int { return b.selected }

// Rotation returns the committed board rotation, 0 or 180.
func (b *Board) Rotation() int { return b.rotation }

// RotationWarning reports whether a board flip is imminent.
func (b *Board) RotationWarning() bool { return b.warning }

// Score returns the current score.
func (b *Board) Score() int { return b.score }

// TimeLeft returns the remaining seconds, or Untimed.
func (b *Board) TimeLeft() int { return b.timeLeft }

// Timed reports whether the session runs a match clock.
func (b *Board) Timed() bool { return b.rules.TimedMode }

// Combo returns the combo state.
func (b *Board) Combo() ComboState { return b.combo }

// PowerUps returns the power-up timers.
func (b *Board) PowerUps() PowerUpState { return b.powerUps }

// Rewards returns the progression earned so far.
func (b *Board) Rewards() Rewards { return b.rewards }

// GameOver reports whether the session has ended.
func (b *Board) GameOver() bool { return b.gameOver }

// CanUndo reports whether an undo snapshot exists.
func (b *Board) CanUndo() bool { return b.undo != nil && !b.gameOver }

// StartTime returns the session start in epoch millis.
func (b *Board) StartTime() int64 { return b.startTime }

// Elapsed returns the running time fed through Tick.
func (b *Board) Elapsed() time.Duration { return b.elapsed }

// Now returns the session clock in epoch millis.
func (b *Board) Now() int64 { return b.startTime + b.elapsed.Milliseconds() }

// TileAt returns the placed tile at c.
func (b *Board) TileAt(c hex.Coord) (Tile, bool) {
	for _, t := range b.placed {
		if t.Coord == c {
			return t, true
		}
	}
	return Tile{}, false
}

// Occupied reports whether a tile is placed at c.
func (b *Board) Occupied(c hex.Coord) bool {
	_, ok := b.TileAt(c)
	return ok
}

// CanPlace reports whether c is a free in-bounds cell.
func (b *Board) CanPlace(c hex.Coord) bool {
	return hex.InBounds(c, b.rules.Radius) && !b.Occupied(c)
}

// SelectTile toggles selection of a queued tile. Selecting the selected tile
// deselects it.
func (b *Board) SelectTile(index int) bool {
	if b.gameOver || index < 0 || index >= len(b.next) || b.next[index].Placed {
		return false
	}
	if b.selected == index {
		b.selected = -1
	} else {
		b.selected = index
	}
	return true
}

// RotateSelected turns the selected queued tile one step. Placed tiles are
// never affected.
func (b *Board) RotateSelected(clockwise bool) bool {
	if b.gameOver || b.selected < 0 {
		return false
	}
	t := &b.next[b.selected]
	if clockwise {
		t.Edges = t.Edges.RotateClockwise()
	} else {
		t.Edges = t.Edges.RotateCounterClockwise()
	}
	return true
}

// Place commits the selected tile to c. An invalid attempt (nothing
// selected, out of bounds, occupied, game over) changes nothing and returns
// false. On success the events describe what happened, in order.
func (b *Board) Place(c hex.Coord) ([]Event, bool) {
	if b.gameOver || b.selected < 0 || !b.CanPlace(c) {
		return nil, false
	}

	b.undo = &undoState{
		placed:   slices.Clone(b.placed),
		next:     slices.Clone(b.next),
		score:    b.score,
		combo:    b.combo,
		powerUps: b.powerUps,
		rewards:  b.rewards,
	}

	slot := b.selected
	tile := b.next[slot].PlacedAt(c)
	// Matching is computed in unrotated edge space.
	if b.rotation == 180 {
		tile.Edges = tile.Edges.Rotate(3)
	}

	tile, mirrorBonus := UpdateMirrorEdges(tile, b.placed, b.rules.MirrorEdgePoints)

	b.placed = RecomputeValues(append(b.placed, tile))
	tile = b.placed[len(b.placed)-1]

	events := []Event{TilePlacedEvent{Tile: tile}}
	delta := 0
	colorShift := false

	matchCount := MatchingEdges(tile, b.placed).Len()
	if matchCount > 0 {
		breakdown, combo := ScorePlacement(b.rules, Placement{
			MatchCount:      matchCount,
			Value:           tile.Value,
			MirrorBonus:     mirrorBonus,
			Now:             b.Now(),
			Level:           b.upgrades.level(),
			PowerMultiplier: b.powerUps.ScoreMultiplier(),
		}, b.combo)
		delta = breakdown.Total
		b.combo = combo
		b.rewards.UpgradePoints += breakdown.MatchBonus
		events = append(events,
			MatchEvent{Tile: tile, MatchCount: matchCount, Points: breakdown.Total, Breakdown: breakdown},
			ComboChangedEvent{Combo: combo},
		)

		if p, ok := tile.Kind.PowerUp(); ok {
			b.powerUps = b.powerUps.activate(p)
			colorShift = p.Type == PowerUpColorShift
			events = append(events, PowerUpActivatedEvent{PowerUp: p})
		}
	} else {
		delta = mirrorBonus
	}
	b.score += delta

	b.next[slot] = b.factory.RandomTile(hex.Coord{}, b.upgrades)
	if colorShift {
		for i := range b.next {
			b.next[i] = b.factory.RerollEdges(b.next[i])
		}
	}
	b.selected = -1

	events = append(events, b.CheckGridFull()...)
	return events, true
}

// CheckGridFull clears a full board: the grid-clear bonus is scored, the
// rewards are granted and the board is reseeded with one tile. It does
// nothing unless every cell is occupied, so it fires once per full board.
func (b *Board) CheckGridFull() []Event {
	if b.gameOver || len(b.placed) != hex.CellCount(b.rules.Radius) {
		return nil
	}
	points := CalculateScore(b.rules.GridClearPoints, b.powerUps.ScoreMultiplier(), b.combo.Multiplier)
	b.score += points
	b.placed = RecomputeValues([]Tile{b.factory.SeedTile()})
	b.rewards.Experience += b.rules.GridClearExperience
	b.rewards.UpgradePoints += b.rules.GridClearUpgradePoints
	b.rewards.GridClears++
	// Undoing into a full board would leave no free cell.
	b.undo = nil
	return []Event{GridClearedEvent{Points: points}}
}

// Undo restores the placed tiles, the queue, the score, the combo, the
// power-ups and the rewards to the state before the last placement. There is
// a single level of undo.
func (b *Board) Undo() bool {
	if !b.CanUndo() {
		return false
	}
	b.placed = b.undo.placed
	b.next = b.undo.next
	b.score = b.undo.score
	b.combo = b.undo.combo
	b.powerUps = b.undo.powerUps
	b.rewards = b.undo.rewards
	b.undo = nil
	b.selected = -1
	return true
}

// RotateBoard flips the committed rotation between 0 and 180. Placed tiles
// keep their edges; only tiles placed while flipped are compensated.
func (b *Board) RotateBoard() BoardRotatedEvent {
	if b.rotation == 180 {
		b.rotation = 0
	} else {
		b.rotation = 180
	}
	b.warning = false
	b.rotationAcc = 0
	return BoardRotatedEvent{Degrees: b.rotation}
}

// End finishes the session. It emits GameOver once.
func (b *Board) End() []Event {
	if b.gameOver {
		return nil
	}
	b.gameOver = true
	b.selected = -1
	b.undo = nil
	return []Event{GameOverEvent{Score: b.score}}
}
