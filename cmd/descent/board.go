package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-descent/internal/platform/tui"
	"github.com/vovakirdan/tui-descent/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse the run history",
	Long: `Open an interactive scoreboard of past runs.
Tab switches between the best and the most recent runs.`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func runBoard(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.RunScoreboard(store, width, height, flagFPS)
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
