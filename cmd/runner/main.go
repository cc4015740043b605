// runner is a three-lane endless runner for the terminal, steered by
// keyboard or by hand gestures streamed from a browser recognizer.
//
// Usage:
//
//	runner play              - Play in the current terminal
//	runner serve             - Start SSH server for remote play
//	runner scores            - Show run history
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.runner/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Gesture Runner - A hand-steered endless runner in your terminal",
	Long: `Gesture Runner is a three-lane endless runner played in the terminal.
Steer with the keyboard, or open the browser hand recognizer and steer
by moving your hand: point at a lane to switch, make a fist to jump.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View run history

Examples:
  runner play
  runner play --gesture-listen :8765
  runner serve --ssh :2222
  runner scores --recent`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
