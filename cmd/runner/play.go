package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gesture-runner/internal/clock"
	"github.com/vovakirdan/gesture-runner/internal/config"
	"github.com/vovakirdan/gesture-runner/internal/core"
	"github.com/vovakirdan/gesture-runner/internal/games/runner"
	"github.com/vovakirdan/gesture-runner/internal/gesture"
	"github.com/vovakirdan/gesture-runner/internal/input"
	"github.com/vovakirdan/gesture-runner/internal/platform/tui"
	"github.com/vovakirdan/gesture-runner/internal/storage"
)

var (
	flagConfig        string
	flagGestureListen string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a run in the current terminal.

Controls:
  Left/H/A   - Switch lane left
  Right/L/D  - Switch lane right
  Space/Up/W - Jump
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

With --gesture-listen, a websocket endpoint is opened for the browser
hand recognizer. Point at a lane to steer, make a fist to jump. Any
keypress takes priority over gestures for one second.

Examples:
  runner play
  runner play --gesture-listen :8765
  runner play --config ./my-runner.yaml
  runner play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagGestureListen, "gesture-listen", "", "Websocket address for the hand recognizer (e.g. :8765); empty disables gestures")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// TUI owns stdout, so diagnostics go to stderr.
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "runner"})

	var bridge *gesture.Bridge
	if flagGestureListen != "" {
		bridge = gesture.NewBridge(flagGestureListen, logger)
		if err := bridge.Start(); err != nil {
			// Gestures are optional; the keyboard always works.
			fmt.Fprintf(os.Stderr, "Warning: gesture bridge failed to start: %v\n", err)
			bridge = nil
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	clk := clock.New(clock.WithLogger(logger))
	game := runner.New(clk, gameCfg)
	agg := input.New()

	runErr := tui.Run(tui.NewModel(clk, game, agg, bridge, store, rt))

	if bridge != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		//nolint:errcheck // Best-effort shutdown on exit
		bridge.Shutdown(ctx)
		cancel()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
