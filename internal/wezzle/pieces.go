package wezzle

import (
	"math/rand"

	"github.com/vovakirdan/tui-wezzle/internal/core"
)

// PieceShape names a piece layout.
type PieceShape int

const (
	ShapeDot PieceShape = iota
	ShapeDash
	ShapeLine
	ShapeDiagonal
	ShapeCorner
	shapeCount
)

var shapeNames = [...]string{"Dot", "Dash", "Line", "Diagonal", "Corner"}

func (s PieceShape) String() string {
	if s < 0 || s >= shapeCount {
		return "?"
	}
	return shapeNames[s]
}

// shapeCells are offsets from the cursor, before rotation.
var shapeCells = [...][]core.Point{
	ShapeDot:      {{X: 0, Y: 0}},
	ShapeDash:     {{X: 0, Y: 0}, {X: 1, Y: 0}},
	ShapeLine:     {{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}},
	ShapeDiagonal: {{X: -1, Y: -1}, {X: 0, Y: 0}, {X: 1, Y: 1}},
	ShapeCorner:   {{X: 0, Y: -1}, {X: 0, Y: 0}, {X: 1, Y: 0}},
}

// Piece is a shape with its current rotation.
type Piece struct {
	Shape PieceShape
	cells []core.Point
}

func newPiece(s PieceShape) Piece {
	cells := make([]core.Point, len(shapeCells[s]))
	copy(cells, shapeCells[s])
	return Piece{Shape: s, cells: cells}
}

// Cells returns the offsets covered by the piece.
func (p Piece) Cells() []core.Point {
	return p.cells
}

// PieceManager owns the current piece, its cursor, and the set of tiles
// it hovers over.
type PieceManager struct {
	rng    *rand.Rand
	cols   int
	rows   int
	piece  Piece
	cursor core.Point
	hover  []int
}

// NewPieceManager creates a manager with a random first piece centered on board.
func NewPieceManager(board *Board, rng *rand.Rand) *PieceManager {
	m := &PieceManager{
		rng:    rng,
		cols:   board.Columns(),
		rows:   board.Rows(),
		cursor: core.Point{X: board.Columns() / 2, Y: board.Rows() / 2},
	}
	m.piece = newPiece(PieceShape(rng.Intn(int(shapeCount))))
	return m
}

// Piece returns the current piece.
func (m *PieceManager) Piece() Piece {
	return m.piece
}

// Cursor returns the cursor cell.
func (m *PieceManager) Cursor() core.Point {
	return m.cursor
}

// Next replaces the current piece with a new random one.
func (m *PieceManager) Next() {
	m.piece = newPiece(PieceShape(m.rng.Intn(int(shapeCount))))
}

// Move shifts the cursor, clamped to the board.
func (m *PieceManager) Move(dx, dy int, board *Board) {
	m.MoveTo(m.cursor.X+dx, m.cursor.Y+dy, board)
}

// MoveTo places the cursor at (col, row), clamped to the board.
func (m *PieceManager) MoveTo(col, row int, board *Board) {
	m.cursor = core.Point{
		X: core.Clamp(col, 0, m.cols-1),
		Y: core.Clamp(row, 0, m.rows-1),
	}
	m.NotifyRefactored(board)
}

// Rotate turns the piece a quarter turn clockwise.
func (m *PieceManager) Rotate(board *Board) {
	for i, p := range m.piece.cells {
		m.piece.cells[i] = p.RotateCW()
	}
	m.NotifyRefactored(board)
}

// Covered returns the occupied cell indices under the piece.
func (m *PieceManager) Covered(board *Board) []int {
	var out []int
	for _, off := range m.piece.cells {
		p := m.cursor.Add(off)
		if !board.InBounds(p.X, p.Y) {
			continue
		}
		if i := board.Index(p.X, p.Y); board.TileAt(i) != nil {
			out = append(out, i)
		}
	}
	return out
}

// Hover returns the covered indices as of the last board change.
func (m *PieceManager) Hover() []int {
	return m.hover
}

// NotifyRefactored recomputes the hovered tiles after the board changed.
func (m *PieceManager) NotifyRefactored(board *Board) {
	m.hover = m.Covered(board)
}
