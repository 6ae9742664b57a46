package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start a 2048 run in this terminal.

Controls:
  Arrows/WASD/HJKL - Move
  Mouse drag       - Swipe
  P/Esc            - Pause
  X                - Finish the run
  R/Enter          - Restart (after the run is over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a screenshot to ~/.arcade/screenshots

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	// The game reloads its config on every restart and falls back to
	// defaults quietly, so a bad --config has to be caught here.
	if err := checkPlayConfig(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Logs would tear the alt screen, so only warnings about storage go out
	// before the program starts.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(t2048.New(), store, cfg, tui.WithSessionID("local"))

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// checkPlayConfig reports a config the game would silently replace with defaults.
func checkPlayConfig(path string) error {
	_, err := config.LoadT2048(path)
	return err
}
