// wezzle is a tile-matching puzzle for the terminal.
//
// Usage:
//
//	wezzle list              - List available modes
//	wezzle play [mode]       - Play a mode (default: wezzle)
//	wezzle menu              - Start menu to pick modes interactively
//	wezzle serve             - Start SSH server for remote play
//	wezzle scores <mode>     - Show high scores for a mode
//	wezzle sim               - Autoplay seeded games headlessly
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.wezzle/scores.db)
//	--config <path>       - Custom wezzle.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write engine logs to a file
//	--debug               - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wezzle/internal/config"
	"github.com/vovakirdan/tui-wezzle/internal/core"
	"github.com/vovakirdan/tui-wezzle/internal/storage"
	"github.com/vovakirdan/tui-wezzle/internal/wezzle"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool

	// logger is set up by the root command before any subcommand runs.
	logger = log.New(io.Discard)
	// difficulty is the parsed --difficulty flag.
	difficulty = config.DifficultyNormal
	logCloser  io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wezzle",
	Short: "Wezzle - a tile-matching puzzle in your terminal",
	Long: `Wezzle is a tile-matching puzzle: drop a piece on the board to clear
the tiles under it, let the board settle, and line up three or more tiles
of one color before the drops fill the board.

Available commands:
  list     - Show all modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Autoplay seeded games and print statistics

Examples:
  wezzle play
  wezzle play wezzle_tutorial
  wezzle menu --difficulty hard
  wezzle serve --ssh :2222 --http :8080
  wezzle sim --games 200 --seed 1`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.wezzle/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom wezzle config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal belongs to the game)")
	pf.BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// setup validates the global flags and wires logging and engine settings.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	difficulty = preset

	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logCloser = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "wezzle",
		})
	}
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	wezzle.SetLogger(logger.WithPrefix("engine"))
	wezzle.SetConfigPath(flagConfig)
	wezzle.SetDifficulty(difficulty)
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database, or returns nil with a warning so
// the game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
