// Package config provides YAML-based game configuration loading for the
// Pac-Man game.
package config

import (
	"errors"
	"fmt"
)

// PacmanConfig contains all configuration for the Pac-Man game.
type PacmanConfig struct {
	Board    PacmanBoard    `yaml:"board"`
	Gameplay PacmanGameplay `yaml:"gameplay"`
	Debug    PacmanDebug    `yaml:"debug"`
	Keys     PacmanKeys     `yaml:"keys"`
	Assets   PacmanAssets   `yaml:"assets"`
}

// PacmanBoard defines maze geometry.
type PacmanBoard struct {
	TileSize int `yaml:"tile_size"` // Canvas pixels per tile
}

// PacmanGameplay defines rules that are tunable without code changes.
type PacmanGameplay struct {
	Lives      int `yaml:"lives"`
	FoodPoints int `yaml:"food_points"`
	TickRate   int `yaml:"tick_rate"` // Ticks per second
}

// PacmanDebug defines the debug control surface defaults.
type PacmanDebug struct {
	ShowGrid bool `yaml:"show_grid"`
	Panel    bool `yaml:"panel"`
	MinSpeed int  `yaml:"min_speed"`
	MaxSpeed int  `yaml:"max_speed"`
}

// PacmanKeys lists the physical keys bound to each direction.
type PacmanKeys struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
}

// PacmanAssets points at optional sprite overrides.
type PacmanAssets struct {
	SpritesDir string `yaml:"sprites_dir"`
}

// Validate checks the invariants the simulation relies on.
func (c PacmanConfig) Validate() error {
	var errs []error

	if c.Board.TileSize <= 0 || c.Board.TileSize%8 != 0 {
		errs = append(errs, fmt.Errorf("board.tile_size must be a positive multiple of 8, got %d", c.Board.TileSize))
	}
	if c.Gameplay.Lives < 1 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be at least 1, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.FoodPoints < 0 {
		errs = append(errs, fmt.Errorf("gameplay.food_points must not be negative, got %d", c.Gameplay.FoodPoints))
	}
	if c.Debug.MinSpeed < 1 || c.Debug.MaxSpeed < c.Debug.MinSpeed {
		errs = append(errs, fmt.Errorf("debug speed range [%d, %d] is invalid", c.Debug.MinSpeed, c.Debug.MaxSpeed))
	} else if c.Gameplay.TickRate < c.Debug.MinSpeed || c.Gameplay.TickRate > c.Debug.MaxSpeed {
		errs = append(errs, fmt.Errorf("gameplay.tick_rate %d outside debug speed range [%d, %d]",
			c.Gameplay.TickRate, c.Debug.MinSpeed, c.Debug.MaxSpeed))
	}
	if len(c.Keys.Up) == 0 || len(c.Keys.Down) == 0 || len(c.Keys.Left) == 0 || len(c.Keys.Right) == 0 {
		errs = append(errs, errors.New("keys: every direction needs at least one binding"))
	}

	return errors.Join(errs...)
}
