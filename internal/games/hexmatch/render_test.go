package hexmatch

import (
	"strings"
	"testing"

	"github.com/vovakirdan/hexmatch/internal/core"
	"github.com/vovakirdan/hexmatch/internal/games/hexmatch/engine"
	"github.com/vovakirdan/hexmatch/internal/games/hexmatch/hex"
)

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, false, nil)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "HexMatch") {
		t.Errorf("Row(0) = %q, expected title", screen.Row(0))
	}
	if !strings.Contains(screen.String(), "Score") {
		t.Error("HUD should show the score")
	}

	seed, _ := g.Board().TileAt(hex.C(0, 0))
	l := g.layout()
	x, y := l.cellOrigin(hex.C(0, 0))
	for dy, row := range glyph {
		for dx, d := range row {
			c := screen.GetCell(x+dx, y+dy)
			if d == centerCell {
				continue
			}
			if c.Rune != '█' || c.Color != screenColor(seed.Edges[d].Color) {
				t.Errorf("cell (%d,%d) = %+v, expected edge %v", dx, dy, c, d)
			}
			if !c.Attr.Has(core.AttrReverse) {
				t.Error("cursor starts on the seed tile")
			}
		}
	}

	ex, ey := l.cellOrigin(hex.C(2, 0))
	if screen.Get(ex, ey) != '/' {
		t.Errorf("empty cell glyph = %q", screen.Get(ex, ey))
	}
}

func TestRenderRotatedBoard(t *testing.T) {
	g := newTestGame(t, false, nil)
	g.Board().RotateBoard()

	// A tile placed while flipped looks the way it was queued.
	g.cursor = hex.C(0, 1)
	g.Step(frame(core.ActionSelect1))
	queued := g.Board().Next()[0]
	g.Step(frame(core.ActionPlace))
	if _, ok := g.Board().TileAt(hex.C(0, -1)); !ok {
		t.Fatal("display (0,1) is board (0,-1) when flipped")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	x, y := g.layout().cellOrigin(hex.C(0, 1))
	for dy, row := range glyph {
		for dx, d := range row {
			if d == centerCell {
				continue
			}
			if got := screen.GetCell(x+dx, y+dy).Color; got != screenColor(queued.Edges[d].Color) {
				t.Fatalf("flipped tile edge %v drawn %v, expected %v", d, got, screenColor(queued.Edges[d].Color))
			}
		}
	}
}

func TestRenderColorBlind(t *testing.T) {
	g := newTestGame(t, false, nil)
	g.cfg.Display.ColorBlind = true
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	seed, _ := g.Board().TileAt(hex.C(0, 0))
	x, y := g.layout().cellOrigin(hex.C(0, 0))
	if got := screen.Get(x, y); got != seed.Edges[hex.NorthWest].Color.Char() {
		t.Errorf("color-blind edge = %q, expected %q", got, seed.Edges[hex.NorthWest].Color.Char())
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, false, nil)
	g.Step(frame(core.ActionPause))
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	g.Step(frame(core.ActionPause))
	g.Step(frame(core.ActionEnd))
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestKindRune(t *testing.T) {
	tests := []struct {
		kind     engine.Kind
		expected rune
	}{
		{engine.Normal(), ' '},
		{engine.Mirror(), 'M'},
		{engine.Joker(), '*'},
		{engine.WithPowerUp(engine.PowerUp{Type: engine.PowerUpFreeze}), 'F'},
		{engine.WithPowerUp(engine.PowerUp{Type: engine.PowerUpColorShift}), 'C'},
		{engine.WithPowerUp(engine.PowerUp{Type: engine.PowerUpMultiplier}), 'X'},
	}
	for _, tc := range tests {
		if got := kindRune(tc.kind); got != tc.expected {
			t.Errorf("kindRune(%v) = %q, expected %q", tc.kind, got, tc.expected)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		event    engine.Event
		expected string
	}{
		{engine.MatchEvent{MatchCount: 2, Points: 12}, "+12 2 edges"},
		{engine.MatchEvent{MatchCount: 1, Points: 9, Breakdown: engine.Breakdown{Quick: true}}, "+9 quick! 1 edges"},
		{engine.GridClearedEvent{Points: 1500}, "Grid cleared! +1500"},
		{engine.PowerUpActivatedEvent{PowerUp: engine.PowerUp{Type: engine.PowerUpFreeze}}, "freeze activated"},
		{engine.PowerUpExpiredEvent{Type: engine.PowerUpMultiplier}, "multiplier expired"},
		{engine.ComboExpiredEvent{}, "Combo lost"},
		{engine.RotationWarningEvent{}, "Board flips soon!"},
		{engine.BoardRotatedEvent{Degrees: 180}, "Board rotated to 180°"},
		{engine.GameOverEvent{Score: 40}, "Game over: 40"},
		{engine.TilePlacedEvent{}, ""},
		{engine.ComboChangedEvent{}, ""},
	}
	for _, tc := range tests {
		if got := describe(tc.event); got != tc.expected {
			t.Errorf("describe(%T) = %q, expected %q", tc.event, got, tc.expected)
		}
	}
}
