package board

import (
	"fmt"
	"math/rand"
)

// lookaheadSeed seeds the private random source of every clone, so
// simulating a move never advances the live board's source.
const lookaheadSeed = 2048

// checkIfGameOver sets the sticky game-over flag when the board is full and
// none of the four moves changes anything.
func (b *Board) checkIfGameOver() {
	active := len(b.ActiveTiles())
	b.debugBoard(fmt.Sprintf("checking for game over (%d of %d spaces filled)", active, TotalCells))

	if active < TotalCells {
		return
	}
	if !b.moveExists() {
		b.gameOver = true
		b.debug("game over", "score", b.score, "max_tile", b.MaxTile())
	}
}

func (b *Board) moveExists() bool {
	for _, m := range Moves() {
		if b.CanMove(m) {
			return true
		}
	}
	return false
}

// CanMove reports whether applying m would move or merge any tile.
// The move is simulated on a clone; the board itself is not touched.
func (b *Board) CanMove(m Move) bool {
	sim := b.Clone()
	sim.applyMove(m, true)
	return sim.moved
}

// Clone returns an independent deep copy. Tiles get fresh identities and the
// copy has its own random source and no logger.
func (b *Board) Clone() *Board {
	c := &Board{
		tiles:    make([]*Tile, 0, len(b.tiles)+1),
		score:    b.score,
		gameOver: b.gameOver,
		moves:    b.moves,
		moved:    b.moved,
		rng:      rand.New(rand.NewSource(lookaheadSeed)),
	}
	for _, t := range b.tiles {
		c.tiles = append(c.tiles, t.Clone())
	}
	return c
}
