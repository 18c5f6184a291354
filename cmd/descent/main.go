// descent is a terminal reflex game: steer a falling token through the gaps
// of an endless shaft of barriers.
//
// Usage:
//
//	descent play             - Play the game
//	descent scores           - Print the best runs
//	descent board            - Browse the run history interactively
//	descent config           - Print the default or effective configuration
//	descent clear            - Delete the run history
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set run history path (default: ~/.descent/runs.db)
//	--score-file <path>   - Set high score file (default: ~/.descent/highscore.dat)
//	--log-file <path>     - Set log file (default: ~/.descent/descent.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagScoreFile string
	flagLogFile   string
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "descent",
	Short: "Descent - steer through the gaps",
	Long: `Descent is a terminal reflex game. A token falls down an endless shaft;
steer it left and right through the gaps in the barriers. The further you
fall the faster it gets and the thicker the barriers grow.

Available commands:
  play     - Play the game
  scores   - Print the best runs
  board    - Browse the run history
  config   - Print the configuration
  clear    - Delete the run history

Examples:
  descent play
  descent play --difficulty hard
  descent play --seed 42
  descent scores -n 20
  descent config --effective --format toml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.descent/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagScoreFile, "score-file", "~/.descent/highscore.dat", "Path to high score file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.descent/descent.log", "Path to log file (empty disables logging)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(clearCmd)
}
