package sim

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-wezzle/internal/config"
	"github.com/vovakirdan/tui-wezzle/internal/wezzle"
)

func testOptions() Options {
	return Options{
		Games:  4,
		Seed:   11,
		Moves:  4,
		Config: config.DefaultWezzleConfig(),
	}
}

func TestRunIsReproducible(t *testing.T) {
	serial := testOptions()
	serial.Workers = 1
	parallel := testOptions()
	parallel.Workers = 4

	a, err := Run(context.Background(), serial)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	b, err := Run(context.Background(), parallel)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	for i := range a.Results {
		if a.Results[i] != b.Results[i] {
			t.Errorf("game %d differs: %+v vs %+v", i, a.Results[i], b.Results[i])
		}
		if a.Results[i].Seed != 11+int64(i) {
			t.Errorf("game %d seed = %d", i, a.Results[i].Seed)
		}
	}
}

func TestRunStopsAtMoves(t *testing.T) {
	rep, err := Run(context.Background(), testOptions())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if rep.Games != 4 || len(rep.Results) != 4 {
		t.Fatalf("report covers %d games, want 4", rep.Games)
	}
	for _, r := range rep.Results {
		if r.Moves != 4 && !r.GameOver {
			t.Errorf("seed %d stopped after %d moves without game over", r.Seed, r.Moves)
		}
		if r.Drops.Batches == 0 || r.Drops.Tiles == 0 {
			t.Errorf("seed %d placed no drops: %+v", r.Seed, r.Drops)
		}
	}
}

func TestRunMaxTicks(t *testing.T) {
	opts := testOptions()
	opts.Games = 1
	opts.Moves = 0
	opts.MaxTicks = 50

	rep, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if got := rep.Results[0].Ticks; got != 50 {
		t.Errorf("ticks = %d, want 50", got)
	}
}

func TestRunValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"no games", func(o *Options) { o.Games = 0 }},
		{"negative moves", func(o *Options) { o.Moves = -1 }},
		{"invalid config", func(o *Options) { o.Config.Board.Columns = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions()
			tt.modify(&opts)
			if _, err := Run(context.Background(), opts); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, testOptions())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestRunTutorialMode(t *testing.T) {
	opts := testOptions()
	opts.Games = 2
	opts.Mode = wezzle.ModeTutorial

	rep, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if rep.Specials != 0 {
		t.Errorf("tutorial placed %d special tiles, want none", rep.Specials)
	}
}

func TestNewReport(t *testing.T) {
	var results []GameResult
	for i, s := range []int{2, 4, 4, 4, 5, 5, 7, 9} {
		results = append(results, GameResult{
			Seed:     int64(i),
			Score:    s,
			Level:    1 + i%3,
			Lines:    1,
			GameOver: i%2 == 0,
			Drops:    wezzle.DropStats{Batches: 2, Tiles: 6, CapHits: i % 2},
		})
	}

	r := NewReport(results, time.Second)
	if r.MeanScore != 5 {
		t.Errorf("mean = %v, want 5", r.MeanScore)
	}
	if want := math.Sqrt(32.0 / 7); math.Abs(r.StdScore-want) > 1e-9 {
		t.Errorf("stddev = %v, want %v", r.StdScore, want)
	}
	if r.MaxScore != 9 || r.MaxLevel != 3 || r.GameOvers != 4 {
		t.Errorf("report = %+v", r)
	}
	if r.Lines != 8 || r.Batches != 16 || r.DropTiles != 48 || r.CapHits != 4 {
		t.Errorf("totals = lines %d, batches %d, tiles %d, caps %d", r.Lines, r.Batches, r.DropTiles, r.CapHits)
	}

	single := NewReport(results[:1], 0)
	if single.MeanScore != 2 || single.StdScore != 0 {
		t.Errorf("single game report = %v/%v, want 2/0", single.MeanScore, single.StdScore)
	}
}

func TestReportWrite(t *testing.T) {
	r := NewReport([]GameResult{{Score: 1234}, {Score: 5678}}, 1500*time.Millisecond)

	var buf bytes.Buffer
	if err := r.Write(&buf); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"SIMULATION", "Mean score", "3,456.0", "5,678", "1.5s"} {
		if !strings.Contains(out, want) {
			t.Errorf("report is missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	width := runewidth.StringWidth(lines[0])
	for i, line := range lines {
		if w := runewidth.StringWidth(line); w != width {
			t.Errorf("line %d is %d wide, want %d: %q", i, w, width, line)
		}
	}
}
