package autoplay

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/slide2048/internal/games/t2048/board"
)

// strategySalt separates the strategy's random stream from the board's.
const strategySalt = 0x5eed

// Options configures Run and RunMany.
type Options struct {
	Seed     int64 // 0 picks a seed from the clock
	MaxMoves int   // 0 plays until game over
	Workers  int   // games played at once by RunMany; 0 means GOMAXPROCS
	Logger   *log.Logger
}

// Result is the outcome of one game.
type Result struct {
	Strategy string
	Seed     int64
	Score    int
	MaxTile  int
	Moves    int
	Won      bool
	GameOver bool // false when the game was cut off by MaxMoves
}

// Run plays one game with the named strategy until the board is dead or
// MaxMoves moves were played. Cancellation is checked between moves; on
// cancellation the partial result is returned with the context's error.
func Run(ctx context.Context, name string, opts Options) (Result, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s, err := Create(name, rand.New(rand.NewSource(seed^strategySalt)))
	if err != nil {
		return Result{}, err
	}

	boardOpts := []board.Option{board.WithRand(rand.New(rand.NewSource(seed)))}
	if opts.Logger != nil {
		boardOpts = append(boardOpts, board.WithLogger(opts.Logger))
	}
	b := board.New(boardOpts...)

	res := Result{Strategy: name, Seed: seed}
	for !b.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return fill(res, b), err
		}
		if opts.MaxMoves > 0 && b.MoveCount() >= opts.MaxMoves {
			break
		}

		m, ok := s.Next(b)
		if !ok {
			break
		}
		b.ApplyMove(m)
		if !b.Moved() {
			return fill(res, b), fmt.Errorf("autoplay: strategy %q chose %s which does not change the board", name, m)
		}
	}

	res = fill(res, b)
	if opts.Logger != nil {
		opts.Logger.Debug("game finished",
			"strategy", name, "seed", seed, "score", res.Score,
			"max_tile", res.MaxTile, "moves", res.Moves, "won", res.Won)
	}
	return res, nil
}

func fill(res Result, b *board.Board) Result {
	res.Score = b.Score()
	res.MaxTile = b.MaxTile()
	res.Moves = b.MoveCount()
	res.Won = b.IsGameWon()
	res.GameOver = b.IsGameOver()
	return res
}

// RunMany plays games with seeds Seed, Seed+1, ... and returns the results
// in seed order. Games run concurrently on up to Workers goroutines; the
// first error cancels the rest.
func RunMany(ctx context.Context, name string, games int, opts Options) ([]Result, error) {
	if games <= 0 {
		return nil, nil
	}
	if !Exists(name) {
		return nil, fmt.Errorf("autoplay: unknown strategy %q", name)
	}

	base := opts.Seed
	if base == 0 {
		base = time.Now().UnixNano()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range games {
		g.Go(func() error {
			o := opts
			o.Seed = base + int64(i)
			// A derived seed of 0 would mean "pick from the clock".
			if o.Seed == 0 {
				o.Seed = -1
			}
			res, err := Run(ctx, name, o)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summary aggregates a batch of results.
type Summary struct {
	Games    int
	Wins     int
	Best     int
	BestTile int
	AvgScore float64
	AvgMoves float64
	// TileCounts counts games by their max tile.
	TileCounts map[int]int
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	s := Summary{TileCounts: make(map[int]int)}
	if len(results) == 0 {
		return s
	}

	var totalScore, totalMoves int
	for _, r := range results {
		s.Games++
		if r.Won {
			s.Wins++
		}
		s.Best = max(s.Best, r.Score)
		s.BestTile = max(s.BestTile, r.MaxTile)
		s.TileCounts[r.MaxTile]++
		totalScore += r.Score
		totalMoves += r.Moves
	}
	s.AvgScore = float64(totalScore) / float64(s.Games)
	s.AvgMoves = float64(totalMoves) / float64(s.Games)
	return s
}
