package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/assets"
	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
)

// setupLogger builds the process logger and installs it as the default.
// An empty path logs to fallback; "-" forces stderr.
func setupLogger(level, path string, fallback func() (string, error)) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if path == "" && fallback != nil {
		path, err = fallback()
		if err != nil {
			return nil, nil, err
		}
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)
	if path != "" && path != "-" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pacman",
		Level:           lvl,
	})
	log.SetDefault(logger)
	return logger, closer, nil
}

// defaultLogPath is ~/.pacman/pacman.log.
func defaultLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, ".pacman", "pacman.log"), nil
}

// gameSetup is everything derived from the config and flags.
type gameSetup struct {
	cfg     config.PacmanConfig
	options pacman.Options
	runtime core.RuntimeConfig
	session tui.Options
}

// buildSetup loads the config and maze and applies flag overrides.
func buildSetup(configPath, mazeRef, spritesDir string, fps int, seed int64) (gameSetup, error) {
	cfg, err := config.LoadPacman(configPath)
	if err != nil {
		return gameSetup{}, err
	}

	maze, err := pacman.ResolveMaze(mazeRef)
	if err != nil {
		return gameSetup{}, err
	}

	if spritesDir == "" {
		spritesDir = cfg.Assets.SpritesDir
	}

	tickRate := cfg.Gameplay.TickRate
	if fps > 0 {
		tickRate = core.Clamp(fps, cfg.Debug.MinSpeed, cfg.Debug.MaxSpeed)
	}

	rc := core.DefaultConfig()
	rc.TickRate = tickRate
	rc.Seed = seed

	return gameSetup{
		cfg: cfg,
		options: pacman.Options{
			Maze: maze,
			Rules: pacman.Rules{
				TileSize:   cfg.Board.TileSize,
				Lives:      cfg.Gameplay.Lives,
				FoodPoints: cfg.Gameplay.FoodPoints,
			},
			MinSpeed: cfg.Debug.MinSpeed,
			MaxSpeed: cfg.Debug.MaxSpeed,
			ShowGrid: cfg.Debug.ShowGrid,
		},
		runtime: rc,
		session: tui.Options{
			Config:    rc,
			Keys:      tui.NewKeyMap(cfg.Keys),
			Loader:    assets.NewLoader(spritesDir),
			ShowPanel: cfg.Debug.Panel,
		},
	}, nil
}

// newGame builds a game from the setup. Each call returns an independent game.
func (s gameSetup) newGame() tui.Game {
	return pacman.New(s.options)
}
