package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default Pac-Man configuration.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Board: PacmanBoard{
			TileSize: 32,
		},
		Gameplay: PacmanGameplay{
			Lives:      3,
			FoodPoints: 10,
			TickRate:   20, // 50ms loop period
		},
		Debug: PacmanDebug{
			ShowGrid: false,
			Panel:    false,
			MinSpeed: 1,
			MaxSpeed: 60,
		},
		Keys: PacmanKeys{
			Up:    []string{"up", "w", "i"},
			Down:  []string{"down", "s", "k"},
			Left:  []string{"left", "a", "j"},
			Right: []string{"right", "d", "l"},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPacmanYAML
}
