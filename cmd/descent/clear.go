package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-descent/internal/storage"
)

var (
	flagYes        bool
	flagClearScore bool
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the run history",
	Long: `Delete every run from the run history. With --score-file-too the high
score file is reset to zero as well.`,
	Args: cobra.NoArgs,
	Run:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation")
	clearCmd.Flags().BoolVar(&flagClearScore, "score-file-too", false, "Also reset the high score file")
}

func runClear(cmd *cobra.Command, args []string) {
	if !flagYes {
		fmt.Print("Delete all recorded runs? [y/N] ")
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("Aborted.")
			return
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ClearRuns(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Run history cleared.")

	if flagClearScore {
		if err := storage.SaveHighScore(flagScoreFile, 0); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("High score reset.")
	}
}
