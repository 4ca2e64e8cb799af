package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wezzle/internal/platform/tui"
	"github.com/vovakirdan/tui-wezzle/internal/registry"
	"github.com/vovakirdan/tui-wezzle/internal/wezzle"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a mode, left/right to change the difficulty
and Enter to play. After a game you return to the menu to play again.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Select mode
  Tab             - High scores
  Q               - Quit

Examples:
  wezzle menu
  wezzle menu --fps 30
  wezzle menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	cfg := runtimeConfig()
	preset := difficulty

	for {
		menuResult, err := tui.RunMenu(store, cfg, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep size changes and the chosen difficulty across rounds
		cfg = menuResult.Config
		preset = menuResult.Difficulty

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if g, ok := game.(*wezzle.Game); ok {
			g.SetDifficulty(preset)
		}

		// Fresh seed for each round unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		logger.Info("menu play", "mode", menuResult.GameID, "difficulty", preset)

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
