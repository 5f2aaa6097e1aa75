// skyraid is a vertical scrolling shooter for the terminal.
//
// Usage:
//
//	skyraid play [game]      - Play (default: skyraid)
//	skyraid list             - List available game variants
//	skyraid scores [game]    - Show high scores and recent runs
//	skyraid serve            - Start SSH server for remote play
//	skyraid config           - Print the effective game config
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.skyraid/skyraid.db)
//	--log-file <path>    - Log destination (default: ~/.skyraid/skyraid.log)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/skyraid/internal/games/skyraid"
	"github.com/vovakirdan/skyraid/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyraid",
	Short: "Skyraid - a vertical shooter in your terminal",
	Long: `Skyraid is a vertical scrolling shooter played in the terminal.
Hold the bottom of the screen, shoot down the waves and collect power-ups.

Available commands:
  play     - Start a game
  list     - Show the game variants
  scores   - View high scores and recent runs
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  skyraid play
  skyraid play skyraid_hard
  skyraid play --difficulty easy --seed 42
  skyraid serve --ssh :2222
  skyraid scores --limit 20`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogPath, "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
