// Package hexmatch adapts the hexmatch engine to the platform game loop:
// cursor and pointer input, terminal rendering and save hooks.
package hexmatch

import (
	"context"
	"math/rand"
	"time"

	"github.com/vovakirdan/hexmatch/internal/config"
	"github.com/vovakirdan/hexmatch/internal/core"
	"github.com/vovakirdan/hexmatch/internal/games/hexmatch/engine"
	"github.com/vovakirdan/hexmatch/internal/games/hexmatch/hex"
	"github.com/vovakirdan/hexmatch/internal/registry"
)

// Mode identifiers.
const (
	ModeClassic = "hexmatch"
	ModeTimed   = "hexmatch_timed"
)

// flashSeconds is how long the last notice stays on screen.
const flashSeconds = 2

// Game implements registry.Game for one hexmatch mode.
type Game struct {
	cfg   config.HexMatchConfig
	timed bool
	now   func() time.Time

	board    *engine.Board
	cursor   hex.Coord // display space
	paused   bool
	tooSmall bool
	resumed  bool

	screenW  int
	screenH  int
	tickRate int

	slot          core.SaveSlot
	persist       engine.PersistenceAdapter
	resumeChecked bool
	savedSecond   int64

	flash      string
	flashTicks int
}

// New creates a game for the given configuration.
func New(cfg config.HexMatchConfig, timed bool) *Game {
	return &Game{cfg: cfg, timed: timed, now: time.Now}
}

// RegisterModes registers the classic and timed modes with the registry.
func RegisterModes(cfg config.HexMatchConfig) {
	registry.Register(ModeClassic, func() registry.Game {
		return New(cfg, false)
	})
	registry.Register(ModeTimed, func() registry.Game {
		return New(cfg, true)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.timed {
		return ModeTimed
	}
	return ModeClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.timed {
		return "HexMatch (Timed)"
	}
	return "HexMatch"
}

// AttachSlot sets the save slot. The first Reset resumes from it.
func (g *Game) AttachSlot(slot core.SaveSlot) {
	g.slot = slot
	g.persist = nil
	if slot != nil {
		g.persist = NewSlotAdapter(slot)
	}
	g.resumeChecked = false
}

// Board returns the running session.
func (g *Game) Board() *engine.Board {
	return g.board
}

// Reset starts a session. The first Reset after a slot is attached resumes
// the saved game if there is one; later resets always start fresh.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = g.now().UnixNano()
	}
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	opts := engine.Options{
		Rules:    g.cfg.Rules(g.timed),
		Upgrades: g.cfg.Upgrades(),
		Rand:     rand.New(rand.NewSource(seed)),
		Start:    g.now(),
	}
	if g.persist != nil && !g.resumeChecked {
		g.board, g.resumed = engine.Resume(context.Background(), g.persist, opts)
	} else {
		g.board, g.resumed = engine.New(opts), false
	}
	g.resumeChecked = true

	g.cursor = hex.Coord{}
	g.paused = false
	g.flash = ""
	g.flashTicks = 0
	g.savedSecond = g.secondsElapsed()
	if g.resumed {
		g.notify("Welcome back")
	}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to a new screen size, keeping the session.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	l := g.layout()
	g.tooSmall = width < l.minW || height < l.minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.flashTicks > 0 {
		g.flashTicks--
	}
	if g.tooSmall || g.board.GameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var events []engine.Event
	settled := false

	switch {
	case in.Has(core.ActionSelect1):
		g.board.SelectTile(0)
	case in.Has(core.ActionSelect2):
		g.board.SelectTile(1)
	case in.Has(core.ActionSelect3):
		g.board.SelectTile(2)
	}
	switch {
	case in.Has(core.ActionRotateCW):
		g.board.RotateSelected(true)
	case in.Has(core.ActionRotateCCW):
		g.board.RotateSelected(false)
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(hex.North.Offset())
	case in.Has(core.ActionDown):
		g.moveCursor(hex.South.Offset())
	case in.Has(core.ActionLeft):
		g.moveCursor(sideStep(g.cursor, -1))
	case in.Has(core.ActionRight):
		g.moveCursor(sideStep(g.cursor, 1))
	}

	if p, ok := in.Click(); ok {
		evs, placed := g.handleClick(p)
		events = append(events, evs...)
		settled = settled || placed
	}

	if in.Has(core.ActionPlace) {
		evs, placed := g.placeAtCursor()
		events = append(events, evs...)
		settled = settled || placed
	}

	if in.Has(core.ActionUndo) {
		if g.board.Undo() {
			g.notify("Undone")
			settled = true
		} else {
			g.notify("Nothing to undo")
		}
	}

	if in.Has(core.ActionEnd) {
		events = append(events, g.board.End()...)
	}

	events = append(events, g.board.Tick(time.Second/time.Duration(g.tickRate))...)

	notices := make([]string, 0, len(events))
	for _, e := range events {
		if _, ok := e.(engine.BoardRotatedEvent); ok {
			settled = true
		}
		if n := describe(e); n != "" {
			notices = append(notices, n)
			g.notify(n)
		}
	}

	g.persistState(settled)

	return core.StepResult{State: g.State(), Notices: notices}
}

// placeAtCursor places the selected tile at the cursor.
func (g *Game) placeAtCursor() ([]engine.Event, bool) {
	if g.board.Selected() < 0 {
		g.notify("Select a tile with 1-3")
		return nil, false
	}
	events, ok := g.board.Place(g.toLogical(g.cursor))
	if !ok {
		g.notify("Cannot place there")
	}
	return events, ok
}

// handleClick selects a queued tile or moves the cursor to the clicked hex,
// placing the selected tile there.
func (g *Game) handleClick(p core.Point) ([]engine.Event, bool) {
	l := g.layout()
	for i, r := range l.queue {
		if r.Contains(p.X, p.Y) {
			g.board.SelectTile(i)
			return nil, false
		}
	}
	c, ok := l.hexAt(p.X, p.Y, g.board.Radius())
	if !ok {
		return nil, false
	}
	g.cursor = c
	if g.board.Selected() < 0 {
		return nil, false
	}
	return g.placeAtCursor()
}

func (g *Game) moveCursor(delta hex.Coord) {
	next := g.cursor.Add(delta)
	if hex.InBounds(next, g.board.Radius()) {
		g.cursor = next
	}
}

// sideStep returns the left (dir -1) or right (dir 1) neighbor offset. Even
// columns step down and odd columns step up, so left undoes right.
func sideStep(c hex.Coord, dir int) hex.Coord {
	even := c.Q%2 == 0
	switch {
	case dir > 0 && even:
		return hex.SouthEast.Offset()
	case dir > 0:
		return hex.NorthEast.Offset()
	case even:
		return hex.SouthWest.Offset()
	default:
		return hex.NorthWest.Offset()
	}
}

// toLogical maps a display coordinate to the board coordinate under the
// current rotation. The mapping is its own inverse.
func (g *Game) toLogical(display hex.Coord) hex.Coord {
	if g.board.Rotation() == 180 {
		return display.Neg()
	}
	return display
}

// toDisplay maps a board coordinate to where it is drawn.
func (g *Game) toDisplay(c hex.Coord) hex.Coord {
	return g.toLogical(c)
}

// persistState saves after settled transitions and once per elapsed
// second, and drops the save when the session is over.
func (g *Game) persistState(settled bool) {
	if g.slot == nil {
		return
	}
	ctx := context.Background()
	if g.board.GameOver() {
		//nolint:errcheck // Best-effort, the slot logs its own failures
		g.slot.Delete(ctx)
		return
	}
	sec := g.secondsElapsed()
	if !settled && sec == g.savedSecond {
		return
	}
	g.savedSecond = sec
	//nolint:errcheck // Best-effort, the slot logs its own failures
	g.persist.Save(ctx, g.board.Snapshot())
}

func (g *Game) secondsElapsed() int64 {
	if g.board == nil {
		return 0
	}
	return int64(g.board.Elapsed() / time.Second)
}

func (g *Game) notify(msg string) {
	g.flash = msg
	g.flashTicks = flashSeconds * max(g.tickRate, 1)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.board.Score(),
		GameOver: g.board.GameOver(),
		Paused:   g.paused || g.tooSmall,
		Resumed:  g.resumed,
	}
}
