package wezzle

// TileRemover clears lines found after a refactor and tiles hit by a
// piece, expanding item effects, then hands the board back to the
// refactorer.
type TileRemover struct {
	active    bool
	indices   []int
	anims     []Animation
	zoomTicks int

	cascade   int           // consecutive line scans that found lines
	blasted   bool          // an item fired; the next refactor runs at SHIFT speed
	baseSpeed RefactorSpeed // speed to restore after a blast refactor
}

// NewTileRemover creates an idle remover.
func NewTileRemover(zoomTicks int) *TileRemover {
	return &TileRemover{zoomTicks: zoomTicks}
}

// IsActive reports whether tiles are being removed.
func (r *TileRemover) IsActive() bool {
	return r.active
}

// Cascade returns how many consecutive scans found lines.
func (r *TileRemover) Cascade() int {
	return r.cascade
}

// ScanLines looks for lines after a finished refactor. When any exist it
// scores them, starts removing their tiles and returns true.
func (r *TileRemover) ScanLines(s Session, hub *Hub) bool {
	if s == nil || hub == nil {
		panic("remover: ScanLines needs a session and a hub")
	}
	r.restoreSpeed(hub)

	set := NewIndexSet()
	lines := hub.Board.FindXMatch(set) + hub.Board.FindYMatch(set)
	if lines == 0 {
		r.cascade = 0
		return false
	}
	r.cascade++

	lineTiles := set.Len()
	mult := 1
	set.m.ForEach(func(i int, _ struct{}) bool {
		mult *= hub.Board.TileAt(i).Type.Multiplier()
		return true
	})
	blast := expandItems(hub.Board, set)
	points := hub.Score.AddLines(lines, set.Len(), mult, r.cascade)

	if blast {
		hub.Sound.Play(SoundBlast)
	} else {
		hub.Sound.Play(SoundLine)
	}
	hub.Logger.Debug("lines", "lines", lines, "line_tiles", lineTiles, "removed", set.Len(), "points", points, "cascade", r.cascade)
	r.begin(hub, set, blast)
	return true
}

// RemoveTiles starts removing the tiles at indices hit by a piece.
// Items among them fire. Returns the number of tiles removed.
func (r *TileRemover) RemoveTiles(hub *Hub, indices []int) int {
	set := NewIndexSet()
	for _, i := range indices {
		if hub.Board.TileAt(i) != nil {
			set.Add(i)
		}
	}
	if set.Len() == 0 {
		return 0
	}
	r.cascade = 0
	blast := expandItems(hub.Board, set)
	hub.Score.AddPiece(set.Len())
	if blast {
		hub.Sound.Play(SoundBlast)
	}
	r.begin(hub, set, blast)
	return set.Len()
}

func (r *TileRemover) begin(hub *Hub, set *IndexSet, blast bool) {
	r.indices = set.Sorted()
	r.anims = r.anims[:0]
	for _, i := range r.indices {
		a := NewZoomOut(hub.Board.TileAt(i), r.zoomTicks)
		r.anims = append(r.anims, a)
		hub.Animations.Add(a)
	}
	if blast && !r.blasted {
		r.blasted = true
		r.baseSpeed = hub.Refactorer.RefactorSpeed()
		hub.Refactorer.SetRefactorSpeed(hub.Speeds.Shift)
	}
	r.active = true
}

func (r *TileRemover) restoreSpeed(hub *Hub) {
	if r.blasted {
		r.blasted = false
		hub.Refactorer.SetRefactorSpeed(r.baseSpeed)
	}
}

// UpdateLogic removes the tiles once their zoom-out finished and starts
// a refactor.
func (r *TileRemover) UpdateLogic(s Session, hub *Hub) {
	if s == nil || hub == nil {
		panic("remover: UpdateLogic needs a session and a hub")
	}
	if !r.active || !allFinished(r.anims) {
		return
	}
	for _, i := range r.indices {
		hub.Board.RemoveTile(i)
	}
	r.indices = nil
	r.anims = r.anims[:0]
	r.active = false
	hub.Refactorer.StartRefactor()
}

// ResetState drops any removal in progress.
func (r *TileRemover) ResetState() {
	*r = TileRemover{zoomTicks: r.zoomTicks}
}

// expandItems adds the area of every item tile in set to set, following
// chains until no new item fires. Returns true if any item fired.
func expandItems(b *Board, set *IndexSet) bool {
	fired := NewIndexSet()
	for {
		var next []int
		for _, i := range set.Sorted() {
			t := b.TileAt(i)
			if t == nil || !t.Type.IsItem() || fired.Has(i) {
				continue
			}
			fired.Add(i)
			next = append(next, itemArea(b, i, t)...)
		}
		if len(next) == 0 {
			return fired.Len() > 0
		}
		for _, i := range next {
			if b.TileAt(i) != nil {
				set.Add(i)
			}
		}
	}
}

// itemArea returns the cells affected by item tile t at index i.
func itemArea(b *Board, i int, t *Tile) []int {
	col, row := b.Position(i)
	var area []int
	switch t.Type {
	case TileRocket:
		for c := 0; c < b.cols; c++ {
			area = append(area, b.Index(c, row))
		}
	case TileBomb:
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if b.InBounds(col+dx, row+dy) {
					area = append(area, b.Index(col+dx, row+dy))
				}
			}
		}
	case TileStar:
		for j, u := range b.cells {
			if u != nil && u.Color == t.Color {
				area = append(area, j)
			}
		}
	}
	return area
}
