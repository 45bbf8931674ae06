package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// newEmptyBoard returns a seeded board with no tiles.
func newEmptyBoard(t *testing.T, seed int64) *Board {
	t.Helper()
	b := New(WithRand(rand.New(rand.NewSource(seed))))
	b.Clear()
	return b
}

func place(t *testing.T, b *Board, x, y, value int) *Tile {
	t.Helper()
	tile, err := b.Place(NewPosition(x, y), value)
	require.NoError(t, err)
	return tile
}

// fillGrid places a tile for every non-zero cell of grid.
func fillGrid(t *testing.T, b *Board, grid [Size][Size]int) {
	t.Helper()
	for x := range Size {
		for y := range Size {
			if grid[x][y] != 0 {
				place(t, b, x, y, grid[x][y])
			}
		}
	}
}

// countingSource records how many draws were made.
type countingSource struct {
	src   Source
	draws int
}

func (c *countingSource) Intn(n int) int {
	c.draws++
	return c.src.Intn(n)
}

func (c *countingSource) Float64() float64 {
	c.draws++
	return c.src.Float64()
}

func sumValues(tiles []*Tile) int {
	total := 0
	for _, t := range tiles {
		total += t.Value()
	}
	return total
}
