package autoplay

import (
	"math/rand"

	"github.com/vovakirdan/slide2048/internal/games/t2048/board"
)

func init() {
	Register("random", "uniformly random move among those that change the board",
		func(rng *rand.Rand) Strategy { return &randomStrategy{rng: rng} })
	Register("corner", "keeps tiles in the bottom-left corner: down, left, right, then up",
		func(*rand.Rand) Strategy { return cornerStrategy{} })
	Register("greedy", "one move lookahead maximizing score gain, then empty cells",
		func(*rand.Rand) Strategy { return greedyStrategy{} })
}

// legalMoves returns the catalog moves that would change the board.
func legalMoves(b *board.Board) []board.Move {
	var legal []board.Move
	for _, m := range board.Moves() {
		if b.CanMove(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

type randomStrategy struct {
	rng *rand.Rand
}

func (s *randomStrategy) Name() string { return "random" }

func (s *randomStrategy) Next(b *board.Board) (board.Move, bool) {
	legal := legalMoves(b)
	if len(legal) == 0 {
		return board.Move{}, false
	}
	return legal[s.rng.Intn(len(legal))], true
}

type cornerStrategy struct{}

var cornerOrder = []board.Move{board.Down, board.Left, board.Right, board.Up}

func (cornerStrategy) Name() string { return "corner" }

func (cornerStrategy) Next(b *board.Board) (board.Move, bool) {
	for _, m := range cornerOrder {
		if b.CanMove(m) {
			return m, true
		}
	}
	return board.Move{}, false
}

type greedyStrategy struct{}

func (greedyStrategy) Name() string { return "greedy" }

// Next simulates every move on a clone and keeps the one with the largest
// score gain. Ties go to the move leaving the most empty cells, then to
// catalog order.
func (greedyStrategy) Next(b *board.Board) (board.Move, bool) {
	var (
		best      board.Move
		found     bool
		bestGain  = -1
		bestEmpty = -1
	)

	for _, m := range board.Moves() {
		sim := b.Clone()
		sim.ApplyMove(m)
		if !sim.Moved() {
			continue
		}

		gain := sim.Score() - b.Score()
		// The clone spawned a tile; count it as empty so the spawn
		// position does not bias the choice.
		empty := board.TotalCells - len(sim.ActiveTiles()) + 1
		if gain > bestGain || (gain == bestGain && empty > bestEmpty) {
			best, found = m, true
			bestGain, bestEmpty = gain, empty
		}
	}
	return best, found
}
