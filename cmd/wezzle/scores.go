package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/tui-wezzle/internal/registry"
	"github.com/vovakirdan/tui-wezzle/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the best runs for the specified mode, with level, lines
and the seed that replays them.

Examples:
  wezzle scores wezzle
  wezzle scores wezzle_tutorial --limit 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'wezzle list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	p := message.NewPrinter(language.English)
	p.Printf("High Scores - %s\n\n", info.Title)

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'wezzle play %s' to set the first high score!\n", gameID)
		return
	}

	p.Printf("  %-4s  %10s  %5s  %6s  %5s  %-20s  %s\n", "Rank", "Score", "Level", "Lines", "Moves", "Seed", "Date")
	p.Printf("  %-4s  %10s  %5s  %6s  %5s  %-20s  %s\n", "----", "-----", "-----", "-----", "-----", "----", "----")
	for i, r := range runs {
		p.Printf("  %-4d  %10d  %5d  %6d  %5d  %-20s  %s\n",
			i+1, r.Score, r.Level, r.Lines, r.Moves,
			fmt.Sprint(r.Seed), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		p.Printf("Games: %d  Best: %d  Average: %.0f  Max level: %d  Lines: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.MaxLevel, stats.TotalLines)
	}
}
