package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockflap/internal/game"
	"github.com/vovakirdan/blockflap/internal/platform/tui"
	"github.com/vovakirdan/blockflap/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded runs.

In a terminal the scoreboard is interactive (tab switches between top scores
and recent runs). With --plain, or when output is not a terminal, the table
is printed once.

Examples:
  blockflap scores
  blockflap scores --limit 25 --plain
  blockflap scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print the table instead of opening the scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(game.ID); err != nil {
			fatalf("%v", err)
		}
		fmt.Println("Scores cleared.")
		return
	}

	width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
	if !flagScoresPlain && termErr == nil && width > 0 {
		if err := tui.RunScoreboard(store, flagScoresLimit, height); err != nil {
			fatalf("%v", err)
		}
		return
	}

	printScores(store)
}

// printScores writes the top runs as a static table.
func printScores(store *storage.Store) {
	runs, err := store.TopScores(game.ID, flagScoresLimit)
	if err != nil {
		fatalf("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blockflap play' to set the first high score!")
		return
	}

	t := tui.NewScoreTable(len(runs) + 1)
	t.SetRows(tui.ScoreRows(runs))
	t.Blur()
	fmt.Println(t.View())

	// Show high score
	fmt.Println()
	if stats, err := store.GetGameStats(game.ID); err == nil {
		fmt.Printf("Best: %d  (%d runs, avg %.1f)\n", stats.HighScore, stats.RunsCount, stats.AvgScore)
	}
}
