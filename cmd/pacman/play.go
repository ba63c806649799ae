package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
)

var (
	flagMaze      string
	flagSprites   string
	flagDebugAddr string
	flagPanel     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Pac-Man in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/IJKL  - Move
  P                 - Pause
  G                 - Toggle debug grid
  +/-               - Debug speed (ticks per second)
  ?                 - Full help
  Q/Ctrl+C          - Quit
  Any key           - Restart after game over

Debug surface:
  --debug-addr starts an HTTP server next to the game:
    GET  /debug        - JSON status
    PUT  /debug/speed  - {"speed": n}
    POST /debug/grid   - toggle the grid

Examples:
  pacman play
  pacman play --maze classic --seed 42
  pacman play --maze ./my-maze.yaml
  pacman play --sprites ./sprites --panel
  pacman play --debug-addr 127.0.0.1:8080`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMaze, "maze", "", "Bundled maze ID or path to a maze YAML (default: classic)")
	playCmd.Flags().StringVar(&flagSprites, "sprites", "", "Directory with sprite YAML overrides")
	playCmd.Flags().StringVar(&flagDebugAddr, "debug-addr", "", "Serve the debug HTTP API on this address")
	playCmd.Flags().BoolVar(&flagPanel, "panel", false, "Show the debug panel")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closer, err := setupLogger(flagLogLevel, flagLogFile, defaultLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	setup, err := buildSetup(flagConfig, flagMaze, flagSprites, flagFPS, flagSeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := setup.session
	opts.Config.ScreenW = width
	opts.Config.ScreenH = height
	opts.ShowPanel = opts.ShowPanel || flagPanel
	opts.Logger = logger

	logger.Info("starting game",
		"maze", setup.options.Maze.ID,
		"tick_rate", opts.Config.TickRate,
		"seed", opts.Config.Seed,
	)

	if err := tui.Run(setup.newGame(), opts, flagDebugAddr); err != nil {
		logger.Error("game exited with error", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}
