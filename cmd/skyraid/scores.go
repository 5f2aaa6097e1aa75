package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyraid/internal/platform/tui"
	"github.com/vovakirdan/skyraid/internal/registry"
	"github.com/vovakirdan/skyraid/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and recent runs",
	Long: `Display the top scores and the most recent runs of a game.

Examples:
  skyraid scores
  skyraid scores skyraid_hard --limit 20
  skyraid scores --tui
  skyraid scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and runs of the game")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'skyraid list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n\n", gameID)

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'skyraid play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-3s  %-8s  %s\n", "Rank", "Score", "Lv", "Run", "Date")
	fmt.Printf("  %-4s  %-8s  %-3s  %-8s  %s\n", "----", "-----", "--", "---", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-3d  %-8s  %s\n", i+1, e.Score, e.Level, shortID(e.RunID), e.CreatedAt.Format("2006-01-02 15:04"))
	}

	runs, err := store.RecentRuns(gameID, 5)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}
	if len(runs) > 0 {
		fmt.Println()
		fmt.Println("Recent runs:")
		for _, r := range runs {
			fmt.Printf("  %-8s  score %-6d  kills %-4d  lv %-2d  %5.1fs  seed %d\n",
				shortID(r.RunID), r.Score, r.Kills, r.Level, float64(r.DurationMs)/1000, r.Seed)
		}
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func shortID(id string) string {
	switch {
	case id == "":
		return "-"
	case len(id) > 8:
		return id[:8]
	default:
		return id
	}
}
