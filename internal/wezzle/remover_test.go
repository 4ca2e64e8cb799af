package wezzle

import "testing"

// place swaps the tile at (col, row) for a special tile.
func place(b *Board, col, row int, typ TileType, color TileColor) {
	i := b.Index(col, row)
	if b.TileAt(i) != nil {
		b.RemoveTile(i)
	}
	b.CreateTile(i, typ, color)
}

func TestScanLinesClearsAndScores(t *testing.T) {
	hub := newTestHub(t, testConfig(), 1,
		"GBY",
		"RRR",
	)
	snd := &recordingSound{}
	hub.Sound = snd
	s := &fakeSession{}

	if !hub.Remover.ScanLines(s, hub) {
		t.Fatal("ScanLines should find the red line")
	}
	if got := hub.Score.Score(); got != 3*10+50 {
		t.Errorf("score = %d, want 80", got)
	}
	if hub.Score.Lines() != 1 || hub.Remover.Cascade() != 1 {
		t.Errorf("lines=%d cascade=%d, want 1/1", hub.Score.Lines(), hub.Remover.Cascade())
	}
	if snd.count(SoundLine) != 1 {
		t.Error("clearing a line should play the line sound")
	}

	settle(t, s, hub)
	if got, want := hub.Board.String(), dump("...", "GBY"); got != want {
		t.Errorf("board\n%s\nwant\n%s", got, want)
	}

	if hub.Remover.ScanLines(s, hub) {
		t.Error("no lines should be left")
	}
	if hub.Remover.Cascade() != 0 {
		t.Error("an empty scan should reset the cascade")
	}
}

func TestScanLinesAppliesMultiplierAndCascade(t *testing.T) {
	hub := newTestHub(t, testConfig(), 1,
		"GBY",
		"RRR",
	)
	place(hub.Board, 1, 1, TileX3, ColorRed)
	s := &fakeSession{}

	hub.Remover.ScanLines(s, hub)
	if got := hub.Score.Score(); got != 80*3 {
		t.Errorf("score with x3 = %d, want 240", got)
	}
	settle(t, s, hub)

	// A second line found right after the first is worth double.
	place(hub.Board, 0, 0, TileNormal, ColorGreen)
	place(hub.Board, 1, 0, TileNormal, ColorGreen)
	place(hub.Board, 2, 0, TileNormal, ColorGreen)
	hub.Remover.cascade = 1
	before := hub.Score.Score()
	hub.Remover.ScanLines(s, hub)
	if got := hub.Score.Score() - before; got != 160 {
		t.Errorf("cascade 2 line worth %d, want 160", got)
	}
}

func TestRemoveTilesItemAreas(t *testing.T) {
	full := []string{
		"RGBY",
		"GBYR",
		"BYRG",
		"YRGB",
	}
	tests := []struct {
		name    string
		setup   func(b *Board)
		hit     [2]int
		removed int
	}{
		{
			name:    "normal tile",
			setup:   func(b *Board) {},
			hit:     [2]int{0, 0},
			removed: 1,
		},
		{
			name:    "rocket clears its row",
			setup:   func(b *Board) { place(b, 1, 2, TileRocket, ColorYellow) },
			hit:     [2]int{1, 2},
			removed: 4,
		},
		{
			name:    "bomb clears its neighbourhood",
			setup:   func(b *Board) { place(b, 1, 1, TileBomb, ColorBlue) },
			hit:     [2]int{1, 1},
			removed: 9,
		},
		{
			name:    "bomb in a corner",
			setup:   func(b *Board) { place(b, 0, 0, TileBomb, ColorRed) },
			hit:     [2]int{0, 0},
			removed: 4,
		},
		{
			name:    "star clears its color",
			setup:   func(b *Board) { place(b, 0, 0, TileStar, ColorRed) },
			hit:     [2]int{0, 0},
			removed: 4,
		},
		{
			name: "rocket sets off a bomb",
			setup: func(b *Board) {
				place(b, 0, 0, TileRocket, ColorRed)
				place(b, 3, 0, TileBomb, ColorYellow)
			},
			hit:     [2]int{0, 0},
			removed: 6,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hub := newTestHub(t, testConfig(), 1, full...)
			tc.setup(hub.Board)
			n := hub.Remover.RemoveTiles(hub, []int{hub.Board.Index(tc.hit[0], tc.hit[1])})
			if n != tc.removed {
				t.Errorf("removed %d tiles, want %d", n, tc.removed)
			}
			settle(t, &fakeSession{}, hub)
			if got := hub.Board.Count(); got != 16-tc.removed {
				t.Errorf("board holds %d tiles, want %d", got, 16-tc.removed)
			}
		})
	}
}

func TestBlastRefactorsAtShiftSpeed(t *testing.T) {
	hub := newTestHub(t, testConfig(), 1,
		"GBY",
		"R.B",
	)
	place(hub.Board, 1, 1, TileRocket, ColorGreen)
	snd := &recordingSound{}
	hub.Sound = snd
	s := &fakeSession{}
	base := hub.Refactorer.RefactorSpeed()

	if n := hub.Remover.RemoveTiles(hub, []int{hub.Board.Index(1, 1)}); n != 3 {
		t.Fatalf("rocket removed %d tiles, want 3", n)
	}
	if snd.count(SoundBlast) != 1 {
		t.Error("a fired item should play the blast sound")
	}
	if hub.Refactorer.RefactorSpeed() != hub.Speeds.Shift {
		t.Error("a blast should switch the refactor to shift speed")
	}

	settle(t, s, hub)
	hub.Remover.ScanLines(s, hub)
	if hub.Refactorer.RefactorSpeed() != base {
		t.Error("the next scan should restore the base speed")
	}
}

func TestRemoveTilesIgnoresEmptyCells(t *testing.T) {
	hub := newTestHub(t, testConfig(), 1, "...", "R..")
	if n := hub.Remover.RemoveTiles(hub, []int{0, 1, 2}); n != 0 {
		t.Errorf("removed %d tiles from empty cells", n)
	}
	if hub.Remover.IsActive() {
		t.Error("remover should stay idle")
	}
}

func TestRemoverStartsRefactorWhenDone(t *testing.T) {
	hub := newTestHub(t, testConfig(), 1, "R..", "G..")
	s := &fakeSession{}
	hub.Remover.RemoveTiles(hub, []int{hub.Board.Index(0, 1)})

	for i := 0; i < 100 && hub.Remover.IsActive(); i++ {
		hub.Animations.Update()
		hub.Remover.UpdateLogic(s, hub)
		if hub.Remover.IsActive() && hub.Board.Count() != 2 {
			t.Fatal("tiles must stay until their zoom-out finished")
		}
	}
	if hub.Board.Count() != 1 {
		t.Errorf("board holds %d tiles, want 1", hub.Board.Count())
	}
	if hub.Refactorer.State() != RefactorPending {
		t.Errorf("refactorer state = %v, want pending", hub.Refactorer.State())
	}
}
