package wezzle

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-wezzle/internal/config"
)

// testConfig returns a config with short animations and no items.
func testConfig() config.WezzleConfig {
	cfg := config.DefaultWezzleConfig()
	cfg.Animation.ZoomTicks = 2
	cfg.Animation.ShowTicks = 0
	cfg.Animation.GameOverTicks = 1
	cfg.Items.Enabled = false
	return cfg
}

// fillBoard places tiles described by rows: '.' is empty, a color letter
// (RGYBPCO) is a normal tile of that color.
func fillBoard(t *testing.T, b *Board, rows ...string) {
	t.Helper()
	if len(rows) != b.Rows() {
		t.Fatalf("got %d rows, board has %d", len(rows), b.Rows())
	}
	for row, line := range rows {
		if len(line) != b.Columns() {
			t.Fatalf("row %d has %d cells, board has %d", row, len(line), b.Columns())
		}
		for col := 0; col < len(line); col++ {
			if line[col] == '.' {
				continue
			}
			c := strings.IndexByte(colorLetters, line[col])
			if c < 0 {
				t.Fatalf("unknown color letter %q", line[col])
			}
			b.CreateTile(b.Index(col, row), TileNormal, TileColor(c))
		}
	}
}

// newBoard builds a board sized to rows and fills it.
func newBoard(t *testing.T, g Gravity, colors int, rows ...string) *Board {
	t.Helper()
	b := NewBoard(len(rows[0]), len(rows), colors, g, rand.New(rand.NewSource(1)))
	fillBoard(t, b, rows...)
	return b
}

func dump(rows ...string) string {
	return strings.Join(rows, "\n")
}

var downLeft = Gravity{Vertical: DirDown, Horizontal: DirLeft}

// newTestHub builds a hub whose board matches rows.
func newTestHub(t *testing.T, cfg config.WezzleConfig, seed int64, rows ...string) *Hub {
	t.Helper()
	cfg.Board.Columns = len(rows[0])
	cfg.Board.Rows = len(rows)
	hub := NewHub(cfg, rand.New(rand.NewSource(seed)), nil)
	fillBoard(t, hub.Board, rows...)
	return hub
}

// fakeSession records game-over requests.
type fakeSession struct {
	manipulating bool
	gameOvers    int
}

func (s *fakeSession) IsContextManipulating() bool { return s.manipulating }
func (s *fakeSession) StartGameOver() { s.gameOvers++ }

// tick runs one frame of the engine without the game's line scanning.
func tick(s Session, hub *Hub) {
	hub.Animations.Update()
	hub.Remover.UpdateLogic(s, hub)
	hub.Refactorer.UpdateLogic(s, hub)
	hub.Dropper.UpdateLogic(s, hub)
}

// settle ticks until no component is busy.
func settle(t *testing.T, s Session, hub *Hub) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		tick(s, hub)
		if !hub.IsBusy() {
			return
		}
	}
	t.Fatal("engine did not settle")
}

// recordingSound collects played sounds.
type recordingSound struct {
	played []Sound
}

func (r *recordingSound) Play(s Sound) { r.played = append(r.played, s) }

func (r *recordingSound) count(s Sound) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}
