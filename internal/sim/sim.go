// Package sim plays seeded games headlessly with random legal commits and
// aggregates the results.
package sim

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wezzle/internal/config"
	"github.com/vovakirdan/tui-wezzle/internal/core"
	"github.com/vovakirdan/tui-wezzle/internal/wezzle"
)

// moveSalt separates the move picker stream from the engine stream of the
// same seed.
const moveSalt = 0x5eed

// Options configures a simulation batch.
type Options struct {
	Games    int    // number of games, seeded Seed, Seed+1, ...
	Seed     int64  // first seed
	Moves    int    // commits per game before stopping (0 = until game over)
	MaxTicks uint64 // hard stop per game (0 = DefaultMaxTicks)
	Workers  int    // parallel games (0 = GOMAXPROCS)
	Mode     wezzle.Mode
	Config   config.WezzleConfig
	Progress io.Writer   // progress bar output, nil hides it
	Logger   *log.Logger // nil discards
}

// DefaultMaxTicks stops a game after one simulated hour at 60 ticks/s.
const DefaultMaxTicks = 60 * 60 * 60

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Seed     int64
	Score    int
	Level    int
	Lines    int
	Moves    int
	Ticks    uint64
	GameOver bool
	Drops    wezzle.DropStats
}

// Run plays opts.Games games and returns the aggregated report. Results
// are ordered by seed whatever the worker count, so a batch is
// reproducible. A cancelled ctx stops the batch and returns ctx.Err().
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Games <= 0 {
		return nil, errors.New("sim: games must be > 0")
	}
	if opts.Moves < 0 {
		return nil, errors.New("sim: moves must be >= 0")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if opts.MaxTicks == 0 {
		opts.MaxTicks = DefaultMaxTicks
	}
	if opts.Mode == "" {
		opts.Mode = wezzle.ModeClassic
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, opts.Games)
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}
	bar := pb.New(opts.Games).SetWriter(progress).Start()

	results := make([]GameResult, opts.Games)
	jobs := make(chan int)
	wg := new(sync.WaitGroup)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = playOne(ctx, opts, opts.Seed+int64(i))
				bar.Increment()
			}
		}()
	}

feed:
	for i := 0; i < opts.Games; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	used := time.Since(bar.StartTime())
	bar.Finish()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report := NewReport(results, used)
	logger.Info("simulation done", "games", report.Games, "mean", report.MeanScore, "elapsed", used.Round(time.Millisecond))
	return report, nil
}

// playOne plays a single headless game. The cursor is parked on a random
// occupied cell whenever the board accepts a commit.
func playOne(ctx context.Context, opts Options, seed int64) GameResult {
	g := wezzle.NewWithConfig(opts.Mode, opts.Config)
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: seed})
	picker := rand.New(rand.NewSource(seed ^ moveSalt))
	empty := core.NewInputFrame()

	for g.Ticks() < opts.MaxTicks {
		if g.Ticks()%1024 == 0 && ctx.Err() != nil {
			break
		}
		if opts.Moves > 0 && g.State().Moves >= opts.Moves && g.Ready() {
			break
		}
		if g.Ready() {
			if col, row, ok := randomTile(g.Board(), picker); ok {
				g.CommitAt(col, row)
			}
		}
		if g.Step(empty).State.GameOver {
			break
		}
	}

	st := g.State()
	return GameResult{
		Seed:     seed,
		Score:    st.Score,
		Level:    st.Level,
		Lines:    st.Lines,
		Moves:    st.Moves,
		Ticks:    g.Ticks(),
		GameOver: st.GameOver,
		Drops:    g.DropStats(),
	}
}

// randomTile picks a uniformly random occupied cell.
func randomTile(b *wezzle.Board, rng *rand.Rand) (col, row int, ok bool) {
	n := b.Count()
	if n == 0 {
		return 0, 0, false
	}
	k := rng.Intn(n)
	for i := 0; i < b.Size(); i++ {
		if b.TileAt(i) == nil {
			continue
		}
		if k == 0 {
			col, row = b.Position(i)
			return col, row, true
		}
		k--
	}
	return 0, 0, false
}
