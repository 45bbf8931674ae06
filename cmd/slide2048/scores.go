package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/slide2048/internal/autoplay"
	"github.com/vovakirdan/slide2048/internal/platform/tui"
	"github.com/vovakirdan/slide2048/internal/storage"
)

var (
	flagLimit       int
	flagStrategy    string
	flagScoresTUI   bool
	flagClearScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded results",
	Long: `Display the best recorded games.

Results are stored for human games and for autoplay runs started with
--record. Use --strategy to show only one player.

Examples:
  slide2048 scores
  slide2048 scores --strategy human --limit 20
  slide2048 scores --tui
  slide2048 scores --strategy random --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().StringVar(&flagStrategy, "strategy", "", "Only show results of this player (human or a strategy)")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse results in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the selected results")
}

func runScores(cmd *cobra.Command, args []string) error {
	if flagStrategy != "" && flagStrategy != storage.StrategyHuman && !autoplay.Exists(flagStrategy) {
		return fmt.Errorf("unknown player %q (run 'slide2048 strategies' to list them)", flagStrategy)
	}

	store, err := openStore()
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClearScores {
		return clearScores(store)
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	results, err := store.TopResults(flagStrategy, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	title := "all players"
	if flagStrategy != "" {
		title = flagStrategy
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'slide2048 play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-3s  %-8s  %s\n", "Rank", "Score", "Tile", "Moves", "Won", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-3s  %-8s  %s\n", "----", "-----", "----", "-----", "---", "------", "----")

	for i, r := range results {
		won := ""
		if r.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-3s  %-8s  %s\n",
			i+1, r.Score, r.MaxTile, r.Moves, won, r.Strategy, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(flagStrategy)
	if err != nil {
		logger.Warn("could not compute stats", "error", err)
		return nil
	}
	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Average: %.0f  Top tile: %d  Wins: %d\n",
		stats.Games, stats.HighScore, stats.AvgScore, stats.BestTile, stats.Wins)
	return nil
}

func clearScores(store *storage.Store) error {
	if err := store.Clear(flagStrategy); err != nil {
		return fmt.Errorf("clearing scores: %w", err)
	}
	if flagStrategy == "" {
		fmt.Println("All results deleted.")
	} else {
		fmt.Printf("Results of %s deleted.\n", flagStrategy)
	}
	return nil
}
