package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wezzle/internal/config"
	"github.com/vovakirdan/tui-wezzle/internal/registry"
	"github.com/vovakirdan/tui-wezzle/internal/sim"
	"github.com/vovakirdan/tui-wezzle/internal/wezzle"
)

var (
	flagSimGames    int
	flagSimMoves    int
	flagSimMaxTicks uint64
	flagSimWorkers  int
	flagSimMode     string
	flagSimQuiet    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Autoplay seeded games headlessly",
	Long: `Play games without a terminal, committing the piece on a random
occupied cell whenever the board is ready, and print aggregate statistics.

Game i uses seed --seed + i, so a run is reproducible.

Examples:
  wezzle sim --games 100 --seed 1
  wezzle sim --games 20 --moves 50 --difficulty hard
  wezzle sim --mode wezzle_tutorial --quiet`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	f := simCmd.Flags()
	f.IntVar(&flagSimGames, "games", 50, "Number of games")
	f.IntVar(&flagSimMoves, "moves", 0, "Commits per game (0 = until game over)")
	f.Uint64Var(&flagSimMaxTicks, "max-ticks", sim.DefaultMaxTicks, "Tick limit per game")
	f.IntVar(&flagSimWorkers, "workers", 0, "Parallel games (0 = number of CPUs)")
	f.StringVar(&flagSimMode, "mode", string(wezzle.ModeClassic), "Mode to simulate")
	f.BoolVar(&flagSimQuiet, "quiet", false, "Hide the progress bar")
}

func runSim(cmd *cobra.Command, _ []string) error {
	if !registry.Exists(flagSimMode) {
		return fmt.Errorf("unknown mode %q", flagSimMode)
	}

	cfg, err := config.LoadWezzle(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyWezzlePreset(&cfg, difficulty)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	opts := sim.Options{
		Games:    flagSimGames,
		Seed:     seed,
		Moves:    flagSimMoves,
		MaxTicks: flagSimMaxTicks,
		Workers:  flagSimWorkers,
		Mode:     wezzle.Mode(flagSimMode),
		Config:   cfg,
		Logger:   logger,
	}
	if !flagSimQuiet {
		opts.Progress = os.Stderr
	}

	report, err := sim.Run(ctx, opts)
	if err != nil {
		return err
	}
	fmt.Printf("mode %s, difficulty %s, seeds %d..%d\n", flagSimMode, difficulty, seed, seed+int64(flagSimGames)-1)
	return report.Write(os.Stdout)
}
