// Package wezzle implements the Wezzle tile-matching engine: the board and
// its gravity shifts, line detection, the refactorer that settles the board
// in two phases, the tile dropper that refills it, and the game session that
// drives them once per tick.
package wezzle

import (
	"fmt"
	"math/rand"
	"strings"
)

// Direction is a gravity direction.
type Direction int

const (
	DirNone Direction = iota
	DirDown
	DirUp
	DirLeft
	DirRight
)

// Gravity holds the vertical and horizontal pull of the board.
type Gravity struct {
	Vertical   Direction // DirDown or DirUp
	Horizontal Direction // DirLeft, DirRight or DirNone
}

// ParseGravity converts configuration strings into a Gravity.
func ParseGravity(vertical, horizontal string) Gravity {
	g := Gravity{Vertical: DirDown, Horizontal: DirNone}
	if vertical == "up" {
		g.Vertical = DirUp
	}
	switch horizontal {
	case "left":
		g.Horizontal = DirLeft
	case "right":
		g.Horizontal = DirRight
	}
	return g
}

// Board is a fixed grid of cells holding at most one tile each.
// Cells are stored row-major: index = row*columns + col, row 0 at the top.
type Board struct {
	cols, rows int
	colors     int
	gravity    Gravity
	rng        *rand.Rand

	cells   []*Tile
	pending []*Tile // layout planned by a shift, committed by Synchronize
	nextID  uint64
}

// NewBoard creates an empty board.
func NewBoard(cols, rows, colors int, gravity Gravity, rng *rand.Rand) *Board {
	if cols <= 0 || rows <= 0 {
		panic(fmt.Sprintf("board: invalid size %dx%d", cols, rows))
	}
	return &Board{
		cols:    cols,
		rows:    rows,
		colors:  max(colors, 1),
		gravity: gravity,
		rng:     rng,
		cells:   make([]*Tile, cols*rows),
	}
}

func (b *Board) Columns() int { return b.cols }
func (b *Board) Rows() int { return b.rows }
func (b *Board) Size() int { return len(b.cells) }
func (b *Board) Gravity() Gravity { return b.gravity }
func (b *Board) NumberOfColors() int { return b.colors }
func (b *Board) Index(col, row int) int { return row*b.cols + col }
func (b *Board) Position(i int) (int, int) { return i % b.cols, i / b.cols }

// InBounds reports whether (col, row) is on the board.
func (b *Board) InBounds(col, row int) bool {
	return col >= 0 && col < b.cols && row >= 0 && row < b.rows
}

// TileAt returns the tile at index i, or nil.
func (b *Board) TileAt(i int) *Tile {
	if i < 0 || i >= len(b.cells) {
		return nil
	}
	return b.cells[i]
}

// IndexOf returns the cell index of t, or -1 if it is not on the board.
func (b *Board) IndexOf(t *Tile) int {
	if t == nil {
		return -1
	}
	for i, c := range b.cells {
		if c == t {
			return i
		}
	}
	return -1
}

// Count returns the number of tiles on the board.
func (b *Board) Count() int {
	n := 0
	for _, t := range b.cells {
		if t != nil {
			n++
		}
	}
	return n
}

// ItemCount returns the number of item tiles on the board.
func (b *Board) ItemCount() int {
	return b.countWhere(TileType.IsItem)
}

// MultiplierCount returns the number of multiplier tiles on the board.
func (b *Board) MultiplierCount() int {
	return b.countWhere(TileType.IsMultiplier)
}

func (b *Board) countWhere(pred func(TileType) bool) int {
	n := 0
	for _, t := range b.cells {
		if t != nil && pred(t.Type) {
			n++
		}
	}
	return n
}

func (b *Board) mustStable(op string) {
	if b.pending != nil {
		panic("board: " + op + " during an unsynchronized shift")
	}
}

// CreateTile places a new tile at index i. Panics if the cell is taken.
func (b *Board) CreateTile(i int, typ TileType, color TileColor) *Tile {
	b.mustStable("CreateTile")
	if i < 0 || i >= len(b.cells) {
		panic(fmt.Sprintf("board: CreateTile index %d out of range", i))
	}
	if b.cells[i] != nil {
		panic(fmt.Sprintf("board: CreateTile on occupied cell %d", i))
	}
	b.nextID++
	t := &Tile{id: b.nextID, Type: typ, Color: color, scale: 1000}
	b.cells[i] = t
	return t
}

// RemoveTile empties cell i and returns the tile that was there, if any.
func (b *Board) RemoveTile(i int) *Tile {
	b.mustStable("RemoveTile")
	t := b.TileAt(i)
	if t != nil {
		b.cells[i] = nil
	}
	return t
}

// ReplaceTile swaps the tile at i for a new tile of the same type with
// the given color. Panics if the cell is empty.
func (b *Board) ReplaceTile(i int, color TileColor) *Tile {
	old := b.RemoveTile(i)
	if old == nil {
		panic(fmt.Sprintf("board: ReplaceTile on empty cell %d", i))
	}
	return b.CreateTile(i, old.Type, color)
}

// RandomColor returns a uniformly random color in play.
func (b *Board) RandomColor() TileColor {
	return TileColor(b.rng.Intn(b.colors))
}

// RandomColorExcept returns a uniformly random color in play other than c.
// With a single color in play it returns c.
func (b *Board) RandomColorExcept(c TileColor) TileColor {
	if b.colors <= 1 {
		return c
	}
	if int(c) < 0 || int(c) >= b.colors {
		return b.RandomColor()
	}
	n := TileColor(b.rng.Intn(b.colors - 1))
	if n >= c {
		n++
	}
	return n
}

// FillRow returns the row new tiles enter from: the edge opposite vertical gravity.
func (b *Board) FillRow() int {
	if b.gravity.Vertical == DirUp {
		return b.rows - 1
	}
	return 0
}

// OpenCells returns the empty cell indices of row, in ascending order.
func (b *Board) OpenCells(row int) []int {
	var open []int
	for col := 0; col < b.cols; col++ {
		if i := b.Index(col, row); b.cells[i] == nil {
			open = append(open, i)
		}
	}
	return open
}

// Clone returns a deep copy of the board layout. The copy shares the RNG,
// so simulations on it consume the same random stream.
func (b *Board) Clone() *Board {
	b.mustStable("Clone")
	c := *b
	c.cells = make([]*Tile, len(b.cells))
	for i, t := range b.cells {
		if t != nil {
			cp := *t
			c.cells[i] = &cp
		}
	}
	return &c
}

// String dumps the layout one row per line, using color letters for tiles
// and '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.cols; col++ {
			if t := b.cells[b.Index(col, row)]; t != nil {
				sb.WriteByte(t.Color.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
