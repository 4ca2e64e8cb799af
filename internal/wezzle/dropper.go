package wezzle

import (
	"github.com/vovakirdan/tui-wezzle/internal/config"
)

// DropStats counts what the dropper did over a session.
type DropStats struct {
	Batches  int // batches placed
	Tiles    int // tiles placed
	Specials int // item or multiplier tiles placed
	CapHits  int // batches accepted after the correction pass cap
}

// TileDropper refills the board from the fill row in small parallel
// batches. Colors are chosen so that, once the batch has settled, no
// dropped tile forms a line, apart from one deliberate reroll per batch.
type TileDropper struct {
	dropOnCommit bool
	tileDropping bool
	animating    bool
	dropAmount   int

	batch []*Tile
	anims []Animation

	parallelMax      int
	correctionPasses int
	zoomTicks        int

	stats DropStats
}

// NewTileDropper creates an idle dropper.
func NewTileDropper(cfg config.DropConfig, zoomTicks int) *TileDropper {
	return &TileDropper{
		parallelMax:      max(cfg.ParallelMax, 1),
		correctionPasses: max(cfg.CorrectionPasses, 1),
		zoomTicks:        zoomTicks,
	}
}

// StartDrop begins dropping the amount set with SetDropAmount. Calling it
// while a drop runs has no effect, and with nothing to drop it stays idle.
func (d *TileDropper) StartDrop() {
	if d.dropAmount > 0 {
		d.tileDropping = true
	}
}

// SetDropAmount sets the number of tiles still to drop.
func (d *TileDropper) SetDropAmount(n int) {
	if n < 0 {
		panic("dropper: negative drop amount")
	}
	d.dropAmount = n
}

// DropAmount returns the number of tiles still to drop.
func (d *TileDropper) DropAmount() int {
	return d.dropAmount
}

// IsTileDropping reports whether a drop phase is in progress.
func (d *TileDropper) IsTileDropping() bool {
	return d.tileDropping
}

// SetDropOnCommit marks that a drop should follow the current move.
func (d *TileDropper) SetDropOnCommit(v bool) {
	d.dropOnCommit = v
}

// IsDropOnCommit reports whether a drop should follow the current move.
func (d *TileDropper) IsDropOnCommit() bool {
	return d.dropOnCommit
}

// Stats returns the session counters.
func (d *TileDropper) Stats() DropStats {
	return d.stats
}

// ResetState stops any drop and clears the counters.
func (d *TileDropper) ResetState() {
	d.dropOnCommit = false
	d.tileDropping = false
	d.animating = false
	d.dropAmount = 0
	d.batch = nil
	d.anims = nil
	d.stats = DropStats{}
}

// UpdateLogic advances the drop by one tick. It does nothing while the
// session is in a board-level sequence or another component is moving tiles.
func (d *TileDropper) UpdateLogic(s Session, hub *Hub) {
	if s == nil || hub == nil {
		panic("dropper: UpdateLogic needs a session and a hub")
	}
	if s.IsContextManipulating() || hub.Refactorer.IsRefactoring() || hub.Remover.IsActive() {
		return
	}
	if !d.tileDropping {
		return
	}

	if d.animating {
		if allFinished(d.anims) {
			d.finishBatch(hub)
		}
		return
	}
	d.startBatch(s, hub)
}

func (d *TileDropper) startBatch(s Session, hub *Hub) {
	board := hub.Board
	open := board.OpenCells(board.FillRow())
	if len(open) == 0 {
		// Board full with tiles left to drop.
		d.tileDropping = false
		hub.Logger.Info("no room to drop", "remaining", d.dropAmount)
		s.StartGameOver()
		return
	}

	// A special tile is only offered when the open cells exactly fit
	// what is left to drop.
	fits := len(open) == d.dropAmount
	parallel := min(d.parallelMax, d.dropAmount, len(open))
	hub.RNG.Shuffle(len(open), func(i, j int) {
		open[i], open[j] = open[j], open[i]
	})
	slots := open[:parallel]

	types := make([]TileType, parallel)
	items, mults := board.ItemCount(), board.MultiplierCount()
	if fits &&
		(items < hub.Items.MaximumItems() || mults < hub.Items.MaximumMultipliers()) {
		types[parallel-1] = hub.Items.GetItem(items, mults)
	}

	colors := d.resolveColors(hub, slots, types)
	// One free reroll keeps drops from being perfectly line-proof.
	colors[0] = board.RandomColor()

	d.batch = d.batch[:0]
	d.anims = d.anims[:0]
	for i, idx := range slots {
		d.batch = append(d.batch, board.CreateTile(idx, types[i], colors[i]))
		if types[i] != TileNormal {
			d.stats.Specials++
		}
	}
	for _, t := range d.batch {
		if t == nil {
			panic("dropper: nil tile in batch")
		}
		a := NewZoomIn(t, d.zoomTicks)
		d.anims = append(d.anims, a)
		hub.Animations.Add(a)
	}

	d.animating = true
	d.stats.Batches++
	d.stats.Tiles += parallel
	hub.Sound.Play(SoundBleep)
	hub.Logger.Debug("drop batch", "tiles", parallel, "remaining", d.dropAmount)
}

// resolveColors simulates the batch settling on a copy of the board and
// recolors batch tiles until none of them is part of a line, or the pass
// cap is hit. Returns the final color of each slot.
func (d *TileDropper) resolveColors(hub *Hub, slots []int, types []TileType) []TileColor {
	sim := hub.Board.Clone()
	tiles := make([]*Tile, len(slots))
	for i, idx := range slots {
		tiles[i] = sim.CreateTile(idx, types[i], sim.RandomColor())
	}
	sim.InstantRefactor()

	for pass := 0; ; pass++ {
		set := NewIndexSet()
		sim.FindXMatch(set)
		sim.FindYMatch(set)

		var matched []int
		for i, t := range tiles {
			if set.Has(sim.IndexOf(t)) {
				matched = append(matched, i)
			}
		}
		if len(matched) == 0 {
			break
		}
		if pass == d.correctionPasses {
			d.stats.CapHits++
			hub.Logger.Warn("drop color correction hit its pass cap, accepting batch", "passes", pass)
			break
		}
		for _, i := range matched {
			t := tiles[i]
			tiles[i] = sim.ReplaceTile(sim.IndexOf(t), sim.RandomColorExcept(t.Color))
		}
	}

	colors := make([]TileColor, len(tiles))
	for i, t := range tiles {
		colors[i] = t.Color
	}
	return colors
}

func (d *TileDropper) finishBatch(hub *Hub) {
	hub.Refactorer.StartRefactor()
	d.SetDropAmount(d.dropAmount - len(d.batch))
	d.batch = d.batch[:0]
	d.anims = d.anims[:0]
	d.animating = false
	if d.dropAmount == 0 {
		d.tileDropping = false
		hub.Logger.Debug("drop finished")
	}
}
