package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wezzle/internal/platform/tui"
	"github.com/vovakirdan/tui-wezzle/internal/registry"
	"github.com/vovakirdan/tui-wezzle/internal/wezzle"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: wezzle).

Controls:
  Arrows/WASD/HJKL - Move the piece
  X/Tab            - Rotate the piece
  Space            - Drop the piece on the board
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow refactor, fewer colors
  normal - Default settings
  hard   - Fast refactor, more colors, larger drops
  fixed  - No level progression

Examples:
  wezzle play
  wezzle play wezzle_tutorial
  wezzle play --difficulty hard
  wezzle play --seed 42
  wezzle play --config ./my-wezzle.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := string(wezzle.ModeClassic)
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'wezzle list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	logger.Info("play", "mode", gameID, "difficulty", difficulty, "seed", flagSeed)

	store := openStore()
	runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
