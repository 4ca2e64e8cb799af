package wezzle

import (
	"fmt"

	"github.com/vovakirdan/tui-wezzle/internal/core"
)

const (
	cellWidth  = 2 // screen columns per board cell
	panelWidth = 24
	panelGap   = 2
)

// minSize returns the smallest screen the game can be drawn on.
func (g *Game) minSize() (int, int) {
	b := g.cfg.Board
	w := b.Columns*cellWidth + 2 + panelGap + panelWidth
	h := b.Rows + 2 + 2 // box, title and help line
	return w, h
}

// fits reports whether the current screen is large enough. A zero size
// means headless play.
func (g *Game) fits() bool {
	if g.screenW == 0 && g.screenH == 0 {
		return true
	}
	w, h := g.minSize()
	return g.screenW >= w && g.screenH >= h
}

func tileGlyph(t *Tile) rune {
	switch {
	case t.scale < 400:
		return '·'
	case t.scale < 800:
		return '•'
	}
	switch t.Type {
	case TileX2:
		return '2'
	case TileX3:
		return '3'
	case TileX4:
		return '4'
	case TileRocket:
		return '»'
	case TileBomb:
		return '✱'
	case TileStar:
		return '★'
	default:
		return '●'
	}
}

// roundCells converts animation units to the nearest whole cell.
func roundCells(v int) int {
	if v < 0 {
		return -((-v + cellUnits/2) / cellUnits)
	}
	return (v + cellUnits/2) / cellUnits
}

// Render draws the board, the piece and the side panel.
func (g *Game) Render(dst *core.Screen) {
	if g.hub == nil {
		return
	}
	minW, minH := g.minSize()
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d, have %dx%d", minW, minH, dst.Width(), dst.Height()), core.ColorGray)
		return
	}

	board := g.hub.Board
	area := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(minW, minH)
	dst.DrawTextColored(area.X, area.Y, g.Title(), core.ColorBrightWhite)

	box := core.NewRect(area.X, area.Y+1, board.Columns()*cellWidth+2, board.Rows()+2)
	dst.DrawBox(box, core.ColorGray)
	cellXY := func(col, row int) (int, int) {
		return box.X + 1 + col*cellWidth, box.Y + 1 + row
	}

	g.renderPiece(dst, cellXY)

	hovered := make(map[int]bool, len(g.hub.Pieces.Hover()))
	for _, i := range g.hub.Pieces.Hover() {
		hovered[i] = true
	}
	for i := 0; i < board.Size(); i++ {
		t := board.TileAt(i)
		if t == nil {
			continue
		}
		col, row := board.Position(i)
		dx, dy := t.Offset()
		x, y := cellXY(col+roundCells(dx), row+roundCells(dy))
		glyph := tileGlyph(t)
		if hovered[i] && !g.IsTileManipulating() && glyph == '●' {
			glyph = '◉'
		}
		dst.SetColored(x, y, glyph, t.Color.Screen())
	}

	g.renderOverlay(dst, box)
	g.renderPanel(dst, core.NewRect(box.Right()+panelGap, box.Y, panelWidth, box.H))
	dst.DrawTextColored(area.X, box.Bottom(), "←↑↓→ move  x rotate  space commit  p pause", core.ColorGray)
}

// renderPiece marks every board cell under the piece.
func (g *Game) renderPiece(dst *core.Screen, cellXY func(int, int) (int, int)) {
	if g.gameOverStart {
		return
	}
	board := g.hub.Board
	cursor := g.hub.Pieces.Cursor()
	for _, off := range g.hub.Pieces.Piece().Cells() {
		p := cursor.Add(off)
		if !board.InBounds(p.X, p.Y) {
			continue
		}
		x, y := cellXY(p.X, p.Y)
		dst.SetColored(x, y, '+', core.ColorGray)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, box core.Rect) {
	mid := box.Y + box.H/2
	center := func(y int, text string, c core.Color) {
		x := box.X + (box.W-len([]rune(text)))/2
		dst.DrawTextColored(x, y, text, c)
	}
	switch {
	case g.gameOver:
		center(mid-1, "GAME OVER", core.ColorRed)
		center(mid+1, "R restart", core.ColorWhite)
	case g.gameOverStart:
		center(mid, "GAME OVER", core.ColorRed)
	case g.paused:
		center(mid, "PAUSED", core.ColorYellow)
	case g.showTicks > 0:
		center(mid, "READY", core.ColorGreen)
	}
}

type panelLine struct {
	text  string
	color core.Color
}

func (g *Game) renderPanel(dst *core.Screen, r core.Rect) {
	s := g.hub.Score
	lines := []panelLine{
		{fmt.Sprintf("Score  %d", s.Score()), core.ColorBrightWhite},
		{fmt.Sprintf("Level  %d", s.Level()), core.ColorCyan},
		{fmt.Sprintf("Lines  %d", s.Lines()), core.ColorWhite},
		{"", core.ColorDefault},
		{fmt.Sprintf("Moves  %d", g.moves), core.ColorWhite},
		{fmt.Sprintf("Piece  %s", g.hub.Pieces.Piece().Shape), core.ColorWhite},
		{fmt.Sprintf("Drop   %d per move", s.DropAmount()), core.ColorGray},
		{fmt.Sprintf("Items  %d/%d", g.hub.Board.ItemCount(), g.hub.Items.MaximumItems()), core.ColorGray},
	}
	if next := s.LinesToNext(); next > 0 {
		lines[3] = panelLine{fmt.Sprintf("Next   %d lines", next), core.ColorGray}
	}
	for i, l := range lines {
		if i >= r.H {
			break
		}
		dst.DrawTextColored(r.X, r.Y+i, l.text, l.color)
	}
}
