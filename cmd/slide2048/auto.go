package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/autoplay"
	"github.com/vovakirdan/slide2048/internal/storage"
)

var (
	flagAutoStrategy string
	flagGames        int
	flagMaxMoves     int
	flagWorkers      int
	flagRecord       bool
)

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Let a strategy play headlessly",
	Long: `Play games with an autoplay strategy and print a summary.

Game i of a batch is seeded with seed+i, so a batch with a fixed --seed
is reproducible. Defaults come from the autoplay section of the config.

Examples:
  slide2048 auto
  slide2048 auto --strategy corner --games 100 --seed 1
  slide2048 auto --strategy greedy --games 50 --record`,
	Args: cobra.NoArgs,
	RunE: runAuto,
}

func init() {
	autoCmd.Flags().StringVar(&flagAutoStrategy, "strategy", "", "Strategy to play with (default from config)")
	autoCmd.Flags().IntVar(&flagGames, "games", 0, "Number of games (default from config)")
	autoCmd.Flags().IntVar(&flagMaxMoves, "max-moves", 0, "Stop each game after this many moves (0 = no limit)")
	autoCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Games played at once (0 = number of CPUs)")
	autoCmd.Flags().BoolVar(&flagRecord, "record", false, "Store the results in the scores database")
}

func runAuto(cmd *cobra.Command, args []string) error {
	auto := appConfig.Autoplay
	name := auto.Strategy
	if flagAutoStrategy != "" {
		name = flagAutoStrategy
	}
	if !autoplay.Exists(name) {
		return fmt.Errorf("unknown strategy %q (run 'slide2048 strategies' to list them)", name)
	}

	games := auto.Games
	if flagGames > 0 {
		games = flagGames
	}
	if games <= 0 {
		games = 1
	}
	maxMoves := auto.MaxMoves
	if cmd.Flags().Changed("max-moves") {
		maxMoves = flagMaxMoves
	}
	seed := auto.Seed
	if cmd.Flags().Changed("seed") {
		seed = flagSeed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("autoplay started", "strategy", name, "games", games, "seed", seed)
	results, err := autoplay.RunMany(ctx, name, games, autoplay.Options{
		Seed:     seed,
		MaxMoves: maxMoves,
		Workers:  flagWorkers,
		Logger:   logger,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("interrupted")
		}
		return err
	}

	printResults(results)

	if flagRecord {
		return recordResults(results)
	}
	return nil
}

func printResults(results []autoplay.Result) {
	fmt.Printf("  %-4s  %-20s  %-8s  %-6s  %-6s  %s\n", "Game", "Seed", "Score", "Tile", "Moves", "End")
	for i, r := range results {
		end := "stuck"
		switch {
		case r.Won && r.GameOver:
			end = "won, stuck"
		case r.Won:
			end = "won"
		case !r.GameOver:
			end = "move limit"
		}
		fmt.Printf("  %-4d  %-20d  %-8d  %-6d  %-6d  %s\n", i+1, r.Seed, r.Score, r.MaxTile, r.Moves, end)
	}

	s := autoplay.Summarize(results)
	fmt.Println()
	fmt.Printf("Games: %d  Wins: %d  Best: %d  Average: %.0f  Average moves: %.0f\n",
		s.Games, s.Wins, s.Best, s.AvgScore, s.AvgMoves)

	tiles := make([]int, 0, len(s.TileCounts))
	for tile := range s.TileCounts {
		tiles = append(tiles, tile)
	}
	slices.Sort(tiles)
	fmt.Println("Max tile reached:")
	for _, tile := range slices.Backward(tiles) {
		n := s.TileCounts[tile]
		fmt.Printf("  %-6d  %4d  %5.1f%%\n", tile, n, 100*float64(n)/float64(s.Games))
	}
}

func recordResults(results []autoplay.Result) error {
	store, err := openStore()
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	for _, r := range results {
		_, err := store.SaveResult(storage.Result{
			Score:    r.Score,
			MaxTile:  r.MaxTile,
			Moves:    r.Moves,
			Won:      r.Won,
			Strategy: r.Strategy,
		})
		if err != nil {
			return fmt.Errorf("saving result: %w", err)
		}
	}
	logger.Info("results recorded", "count", len(results), "db", flagDBPath)
	return nil
}
