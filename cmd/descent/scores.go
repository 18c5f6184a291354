package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-descent/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the best runs",
	Long: `Display the best runs from the run history and the high score file.

Examples:
  descent scores
  descent scores -n 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Descent")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'descent play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-10s  %-10s  %-8s  %-8s  %s\n", "Rank", "Score", "Mileage", "Time", "Level", "When")
		fmt.Printf("  %-4s  %-10s  %-10s  %-8s  %-8s  %s\n", "----", "-----", "-------", "----", "-----", "----")
		for i, r := range runs {
			played := time.Duration(r.Ticks) * time.Second / time.Duration(max(flagFPS, 1))
			fmt.Printf("  %-4d  %-10s  %-10s  %-8s  %-8s  %s\n",
				i+1,
				humanize.Comma(int64(r.Score)),
				humanize.FormatFloat("#,###.##", r.Mileage),
				played.Round(time.Second),
				r.Difficulty,
				humanize.Time(r.CreatedAt),
			)
		}
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil && stats.Runs > 0 {
		fmt.Printf("Runs: %s  Average: %s  Distance: %s\n",
			humanize.Comma(int64(stats.Runs)),
			humanize.FormatFloat("#,###.#", stats.AvgScore),
			humanize.FormatFloat("#,###.#", stats.TotalMileage),
		)
	}
	if hs, err := storage.LoadHighScore(flagScoreFile); err == nil && hs > 0 {
		fmt.Printf("High score file: %s\n", humanize.Comma(int64(hs)))
	}
}
