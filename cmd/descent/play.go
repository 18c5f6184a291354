package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-descent/internal/config"
	"github.com/vovakirdan/tui-descent/internal/core"
	"github.com/vovakirdan/tui-descent/internal/games/descent"
	"github.com/vovakirdan/tui-descent/internal/platform/tui"
	"github.com/vovakirdan/tui-descent/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Descent.

Controls:
  Left/H/A     - Steer left
  Right/L/D    - Steer right
  P/Esc        - Pause
  Any key      - Start / retry
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Barriers start thin and thicken with distance
  normal - Start at 30% barrier thickness, progresses to max
  hard   - Start at 70% barrier thickness, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  descent play
  descent play --difficulty hard
  descent play --config ./my-descent.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadGameConfig loads the configuration and applies the difficulty preset.
func loadGameConfig() (config.DescentConfig, string, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.DescentConfig{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.LoadDescent(flagConfig)
	if err != nil {
		return config.DescentConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)

	label := string(preset)
	if label == "" {
		label = "default"
	}
	return cfg, label, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, difficulty, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(flagLogFile, flagVerbose)
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		store = nil
	}

	highScore, err := storage.LoadHighScore(flagScoreFile)
	if err != nil {
		logger.Warn("could not read high score file", "error", err)
	}
	if store != nil {
		if best, err := store.BestScore(); err == nil {
			highScore = max(highScore, best)
		} else {
			logger.Warn("could not read best score", "error", err)
		}
	}

	game := descent.New(cfg)
	game.SetHighScore(highScore)
	logger.Info("starting", "difficulty", difficulty, "high_score", highScore)

	runErr := tui.Run(game, rc, tui.Options{
		Store:      store,
		Logger:     logger,
		Difficulty: difficulty,
	})

	if err := storage.SaveHighScore(flagScoreFile, game.HighScore()); err != nil {
		logger.Warn("could not write high score file", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game loop failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
