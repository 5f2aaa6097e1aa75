package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/platform/tui"
	"github.com/vovakirdan/skyraid/internal/registry"
	"github.com/vovakirdan/skyraid/internal/storage"
)

const defaultGame = "skyraid"

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start a game. The game id defaults to "skyraid".

Controls:
  Arrows/WASD  - Move
  Space/Z      - Fire (hold)
  Enter        - Start
  P/Esc        - Pause
  B            - Back to menu (paused or game over)
  R            - Restart (after game over)
  Ctrl+S       - Screenshot to ~/.skyraid/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More lives, slower spawns
  normal - Start at 30% difficulty
  hard   - Fewer lives, faster spawns, start at 70% difficulty
  fixed  - No progression, stays at the config's initial level

Examples:
  skyraid play
  skyraid play skyraid_hard
  skyraid play --difficulty easy
  skyraid play --seed 42 --fps 30
  skyraid play --config ./my-skyraid.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'skyraid list' to see available games", gameID)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	logger, closer, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		// Continue without storage - game still works
	}
	if store != nil {
		defer store.Close()
	}

	game, err := tui.NewGame(tui.SessionOptions{
		GameID:     gameID,
		Store:      store,
		Logger:     logger,
		ConfigPath: flagConfig,
		Preset:     preset,
	})
	if err != nil {
		return err
	}

	logger.Info("session started", "game", gameID, "fps", flagFPS, "seed", flagSeed, "difficulty", string(preset))
	if err := tui.Run(game, cfg); err != nil {
		logger.Error("session failed", "err", err)
		return fmt.Errorf("error running game: %w", err)
	}
	logger.Info("session ended", "game", gameID)
	return nil
}
