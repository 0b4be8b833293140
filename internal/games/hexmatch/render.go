package hexmatch

import (
	"fmt"
	"math"

	"github.com/vovakirdan/hexmatch/internal/core"
	"github.com/vovakirdan/hexmatch/internal/games/hexmatch/engine"
	"github.com/vovakirdan/hexmatch/internal/games/hexmatch/hex"
)

// Tiles are drawn 5 cells wide and 2 rows tall on a doubled-row grid: a hex
// sits tileStep columns right of its q-1 neighbor and one row below or above
// it, and two rows below its north neighbor.
const (
	tileW    = 5
	tileH    = 2
	tileStep = tileW + 1
	hudRows  = 2
	panelW   = 26
)

// centerCell marks the middle cell of the top row, which shows the kind.
const centerCell = hex.DirectionCount

// glyph maps each cell of a tile to the edge it shows.
var glyph = [tileH][tileW]hex.Direction{
	{hex.NorthWest, hex.North, centerCell, hex.North, hex.NorthEast},
	{hex.SouthWest, hex.South, hex.South, hex.South, hex.SouthEast},
}

var sqrt3 = math.Sqrt(3)

// layout holds screen positions derived from the board radius.
type layout struct {
	originX, originY int // top-left cell of the center hex
	panelX           int
	queue            [engine.QueueSize]core.Rect
	minW, minH       int
}

func (g *Game) layout() layout {
	radius := g.cfg.Board.Radius
	if g.board != nil {
		radius = g.board.Radius()
	}
	boardW := (2*radius+1)*tileStep - 1
	boardH := 4*radius + tileH

	l := layout{
		originX: 1 + radius*tileStep,
		originY: hudRows + 2*radius,
		panelX:  1 + boardW + 3,
	}
	queueY := hudRows + 9
	for i := range l.queue {
		l.queue[i] = core.NewRect(l.panelX, queueY+i*(tileH+1), tileW+4, tileH)
	}
	l.minW = l.panelX + panelW
	l.minH = max(hudRows+boardH, l.queue[len(l.queue)-1].Bottom()) + 3
	return l
}

// cellOrigin returns the top-left screen cell of a display coordinate.
func (l layout) cellOrigin(d hex.Coord) (int, int) {
	return l.originX + tileStep*d.Q, l.originY + 2*d.R + d.Q
}

// hexAt maps a screen cell to the display coordinate drawn there. It treats
// the doubled-row grid as a flat-top hex layout of size 1 so the exact
// pixel-to-axial inverse applies.
func (l layout) hexAt(x, y, radius int) (hex.Coord, bool) {
	p := hex.Point{
		X: float64(x-l.originX-tileW/2) / 4,
		Y: sqrt3 / 2 * (float64(y-l.originY) - 0.5),
	}
	c := hex.PixelToAxial(p, hex.Point{}, 1)
	return c, hex.InBounds(c, radius)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.board == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	g.renderHUD(dst)
	g.renderBoard(dst, l)
	g.renderPanel(dst, l)
	g.renderOverlays(dst, l)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	l := g.layout()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", l.minW, l.minH))
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, g.Title(), core.ColorCyan)
	for x := 0; x < g.screenW; x++ {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

func (g *Game) renderBoard(dst *core.Screen, l layout) {
	radius := g.board.Radius()
	for _, d := range hex.AllCoords(radius) {
		x, y := l.cellOrigin(d)
		t, ok := g.board.TileAt(g.toLogical(d))
		if !ok {
			drawEmpty(dst, x, y)
			continue
		}
		edges := t.Edges
		if g.board.Rotation() == 180 {
			edges = edges.Rotate(3)
		}
		g.drawTile(dst, x, y, edges, kindRune(t.Kind), 0)
	}

	// Cursor, with a ghost of the selected tile on free cells.
	x, y := l.cellOrigin(g.cursor)
	if sel := g.board.Selected(); sel >= 0 && !g.board.Occupied(g.toLogical(g.cursor)) {
		t := g.board.Next()[sel]
		g.drawTile(dst, x, y, t.Edges, kindRune(t.Kind), core.AttrFaint)
	}
	for dy := 0; dy < tileH; dy++ {
		for dx := 0; dx < tileW; dx++ {
			dst.Style(x+dx, y+dy, core.AttrReverse)
		}
	}
}

func (g *Game) renderPanel(dst *core.Screen, l layout) {
	x, y := l.panelX, hudRows
	line := func(label, value string, c core.Color) {
		dst.DrawTextColored(x, y, label, core.ColorGray)
		dst.DrawTextColored(x+8, y, value, c)
		y++
	}

	b := g.board
	line("Score", fmt.Sprintf("%d", b.Score()), core.ColorWhite)

	combo := b.Combo()
	if combo.Active() {
		line("Combo", fmt.Sprintf("x%.2f (%d) %ds", combo.Multiplier, combo.Count, combo.Timer), core.ColorYellow)
	} else {
		line("Combo", "-", core.ColorGray)
	}

	p := b.PowerUps()
	switch {
	case p.MultiplierRemaining > 0 && p.FreezeRemaining > 0:
		line("Power", fmt.Sprintf("x%g %ds  ice %ds", p.ScoreMultiplier(), p.MultiplierRemaining, p.FreezeRemaining), core.ColorPurple)
	case p.MultiplierRemaining > 0:
		line("Power", fmt.Sprintf("x%g %ds", p.ScoreMultiplier(), p.MultiplierRemaining), core.ColorPurple)
	case p.FreezeRemaining > 0:
		line("Power", fmt.Sprintf("ice %ds", p.FreezeRemaining), core.ColorCyan)
	default:
		line("Power", "-", core.ColorGray)
	}

	if b.Timed() {
		c := core.ColorWhite
		if b.TimeLeft() <= 10 {
			c = core.ColorRed
		}
		line("Time", fmt.Sprintf("%d:%02d", b.TimeLeft()/60, b.TimeLeft()%60), c)
	} else {
		line("Time", "untimed", core.ColorGray)
	}

	if b.RotationWarning() {
		line("Board", fmt.Sprintf("%d° flipping!", b.Rotation()), core.ColorRed)
	} else {
		line("Board", fmt.Sprintf("%d°", b.Rotation()), core.ColorWhite)
	}

	r := b.Rewards()
	line("Reward", fmt.Sprintf("%dxp %dup %dclr", r.Experience, r.UpgradePoints, r.GridClears), core.ColorGreen)

	y++
	dst.DrawTextColored(x, y, "Next", core.ColorGray)

	for i, t := range b.Next() {
		rect := l.queue[i]
		label := core.Cell{Rune: rune('1' + i), Color: core.ColorWhite}
		if i == b.Selected() {
			label.Attr = core.AttrReverse | core.AttrBold
		}
		dst.SetCell(rect.X, rect.Y, label)
		g.drawTile(dst, rect.X+2, rect.Y, t.Edges, kindRune(t.Kind), 0)
		if i == b.Selected() {
			dst.SetColored(rect.X+tileW+3, rect.Y, '◀', core.ColorWhite)
		}
	}

	if b.CanUndo() {
		dst.DrawTextColored(x, l.queue[len(l.queue)-1].Bottom()+1, "u: undo", core.ColorGray)
	}
}

func (g *Game) renderOverlays(dst *core.Screen, l layout) {
	if g.flashTicks > 0 && g.flash != "" {
		dst.DrawTextColored(1, g.screenH-1, g.flash, core.ColorYellow)
	}

	cy := l.originY
	switch {
	case g.board.GameOver():
		msg := fmt.Sprintf(" GAME OVER  %d ", g.board.Score())
		drawBanner(dst, cy, msg, core.ColorRed)
		drawBanner(dst, cy+1, " r: restart  q: quit ", core.ColorWhite)
	case g.paused:
		drawBanner(dst, cy, " PAUSED ", core.ColorYellow)
	}
}

func drawBanner(dst *core.Screen, y int, msg string, c core.Color) {
	x := (dst.Width() - len([]rune(msg))) / 2
	for i, r := range []rune(msg) {
		dst.SetCell(x+i, y, core.Cell{Rune: r, Color: c, Attr: core.AttrReverse | core.AttrBold})
	}
}

// drawTile draws edges and the center rune with extra attributes.
func (g *Game) drawTile(dst *core.Screen, x, y int, edges engine.Edges, center rune, attr core.Attr) {
	for dy, row := range glyph {
		for dx, d := range row {
			cell := core.Cell{Attr: attr}
			if d == centerCell {
				cell.Rune = center
				cell.Color = core.ColorWhite
				cell.Attr |= core.AttrBold
			} else {
				e := edges[d].Color
				cell.Color = screenColor(e)
				cell.Rune = '█'
				if g.cfg.Display.ColorBlind {
					cell.Rune = e.Char()
				}
			}
			dst.SetCell(x+dx, y+dy, cell)
		}
	}
}

func drawEmpty(dst *core.Screen, x, y int) {
	dst.DrawTextColored(x, y, "/‾‾‾\\", core.ColorGray)
	dst.DrawTextColored(x, y+1, "\\___/", core.ColorGray)
}

// kindRune is the center symbol of a tile.
func kindRune(k engine.Kind) rune {
	switch k.Tag() {
	case engine.KindMirror:
		return 'M'
	case engine.KindJoker:
		return '*'
	case engine.KindPowerUp:
		p, _ := k.PowerUp()
		switch p.Type {
		case engine.PowerUpFreeze:
			return 'F'
		case engine.PowerUpColorShift:
			return 'C'
		case engine.PowerUpMultiplier:
			return 'X'
		}
	}
	return ' '
}

// screenColor maps an edge color to a screen color.
func screenColor(c engine.Color) core.Color {
	switch c {
	case engine.ColorPink:
		return core.ColorPink
	case engine.ColorBlue:
		return core.ColorBlue
	case engine.ColorGreen:
		return core.ColorGreen
	case engine.ColorYellow:
		return core.ColorYellow
	case engine.ColorPurple:
		return core.ColorPurple
	case engine.ColorOrange:
		return core.ColorOrange
	case engine.ColorRainbow:
		return core.ColorRainbow
	default:
		return core.ColorDefault
	}
}

// describe returns the notice text for an event, or "" for quiet events.
func describe(e engine.Event) string {
	switch e := e.(type) {
	case engine.MatchEvent:
		if e.Breakdown.Quick {
			return fmt.Sprintf("+%d quick! %d edges", e.Points, e.MatchCount)
		}
		return fmt.Sprintf("+%d %d edges", e.Points, e.MatchCount)
	case engine.GridClearedEvent:
		return fmt.Sprintf("Grid cleared! +%d", e.Points)
	case engine.PowerUpActivatedEvent:
		return fmt.Sprintf("%s activated", e.PowerUp.Type)
	case engine.PowerUpExpiredEvent:
		return fmt.Sprintf("%s expired", e.Type)
	case engine.ComboExpiredEvent:
		return "Combo lost"
	case engine.RotationWarningEvent:
		return "Board flips soon!"
	case engine.BoardRotatedEvent:
		return fmt.Sprintf("Board rotated to %d°", e.Degrees)
	case engine.GameOverEvent:
		return fmt.Sprintf("Game over: %d", e.Score)
	default:
		return ""
	}
}
