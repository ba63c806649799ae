// pacman is a terminal Pac-Man.
//
// Usage:
//
//	pacman play              - Play in this terminal
//	pacman serve             - Start SSH server for remote play
//	pacman mazes             - List bundled mazes
//	pacman config            - Print the default config
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search ~/.pacman/configs, ./configs)
//	--fps <rate>        - Override the tick rate (default: from config, 20)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Log destination
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man in your terminal",
	Long: `Pac-Man for the terminal: eat every pellet, avoid the ghosts.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  mazes    - List bundled mazes
  config   - Print the default config

Examples:
  pacman play
  pacman play --maze ./my-maze.yaml --seed 42
  pacman play --debug-addr 127.0.0.1:8080
  pacman serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in ticks per second (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default: ~/.pacman/pacman.log for play, stderr for serve)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mazesCmd)
	rootCmd.AddCommand(configCmd)
}
