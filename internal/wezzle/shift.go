package wezzle

// move records a tile travelling from one cell to another during a shift.
type move struct {
	tile     *Tile
	from, to int
}

// verticalLayout compacts every column of src toward vertical gravity.
func (b *Board) verticalLayout(src []*Tile) ([]*Tile, []move) {
	dst := make([]*Tile, len(src))
	var moves []move

	start, step := b.rows-1, -1
	if b.gravity.Vertical == DirUp {
		start, step = 0, 1
	}
	for col := 0; col < b.cols; col++ {
		target := start
		for k, row := 0, start; k < b.rows; k, row = k+1, row+step {
			i := b.Index(col, row)
			t := src[i]
			if t == nil {
				continue
			}
			j := b.Index(col, target)
			dst[j] = t
			if i != j {
				moves = append(moves, move{tile: t, from: i, to: j})
			}
			target += step
		}
	}
	return dst, moves
}

// horizontalLayout closes fully empty columns of src by sliding the other
// columns toward horizontal gravity. Returns nil when there is no
// horizontal gravity.
func (b *Board) horizontalLayout(src []*Tile) ([]*Tile, []move) {
	if b.gravity.Horizontal != DirLeft && b.gravity.Horizontal != DirRight {
		return nil, nil
	}
	dst := make([]*Tile, len(src))
	var moves []move

	start, step := 0, 1
	if b.gravity.Horizontal == DirRight {
		start, step = b.cols-1, -1
	}
	target := start
	for k, col := 0, start; k < b.cols; k, col = k+1, col+step {
		if b.columnEmpty(src, col) {
			continue
		}
		for row := 0; row < b.rows; row++ {
			i, j := b.Index(col, row), b.Index(target, row)
			t := src[i]
			if t == nil {
				continue
			}
			dst[j] = t
			if i != j {
				moves = append(moves, move{tile: t, from: i, to: j})
			}
		}
		target += step
	}
	return dst, moves
}

func (b *Board) columnEmpty(src []*Tile, col int) bool {
	for row := 0; row < b.rows; row++ {
		if src[b.Index(col, row)] != nil {
			return false
		}
	}
	return true
}

// StartVerticalShift plans the vertical compaction and returns one move
// animation per travelling tile. The logical layout only changes on
// Synchronize.
func (b *Board) StartVerticalShift(speed, gravity int) []Animation {
	b.mustStable("StartVerticalShift")
	dst, moves := b.verticalLayout(b.cells)
	b.pending = dst

	anims := make([]Animation, 0, len(moves))
	for _, m := range moves {
		_, fromRow := b.Position(m.from)
		_, toRow := b.Position(m.to)
		anims = append(anims, NewMoveAnimation(m.tile, AxisVertical, toRow-fromRow, speed, gravity))
	}
	return anims
}

// StartHorizontalShift plans closing the empty columns and returns one
// move animation per travelling tile. No-op without horizontal gravity.
func (b *Board) StartHorizontalShift(speed, acceleration int) []Animation {
	b.mustStable("StartHorizontalShift")
	dst, moves := b.horizontalLayout(b.cells)
	if dst == nil {
		return nil
	}
	b.pending = dst

	anims := make([]Animation, 0, len(moves))
	for _, m := range moves {
		fromCol, _ := b.Position(m.from)
		toCol, _ := b.Position(m.to)
		anims = append(anims, NewMoveAnimation(m.tile, AxisHorizontal, toCol-fromCol, speed, acceleration))
	}
	return anims
}

// IsShifting reports whether a planned shift awaits Synchronize.
func (b *Board) IsShifting() bool {
	return b.pending != nil
}

// Synchronize commits the planned layout and clears in-flight offsets.
func (b *Board) Synchronize() {
	if b.pending != nil {
		b.cells = b.pending
		b.pending = nil
	}
	for _, t := range b.cells {
		if t != nil {
			t.offsetX, t.offsetY = 0, 0
		}
	}
}

// InstantRefactor applies the vertical then horizontal compaction at once.
func (b *Board) InstantRefactor() {
	b.mustStable("InstantRefactor")
	b.cells, _ = b.verticalLayout(b.cells)
	if dst, _ := b.horizontalLayout(b.cells); dst != nil {
		b.cells = dst
	}
}
