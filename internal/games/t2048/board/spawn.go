package board

// Source is the randomness the board draws on. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// twoChance is the probability that a spawned tile is a 2 rather than a 4.
const twoChance = 0.9

// addRandomTile places a 2 or a 4 on a random empty cell. On a full board
// it does nothing and returns nil.
func (b *Board) addRandomTile() *Tile {
	pos, ok := b.randomEmptyPosition()
	if !ok {
		b.debug("failed to find empty position for new tile")
		return nil
	}

	value := 2
	if b.rng.Float64() >= twoChance {
		value = 4
	}

	t := NewTile(pos, value)
	b.tiles = append(b.tiles, t)
	return t
}

// randomEmptyPosition draws cells uniformly until it finds an empty one.
// At least one cell is empty, so the loop terminates.
func (b *Board) randomEmptyPosition() (Position, bool) {
	if len(b.ActiveTiles()) >= TotalCells {
		return Position{}, false
	}

	for {
		pos := NewPosition(b.rng.Intn(Size), b.rng.Intn(Size))
		if b.TileAt(pos) == nil {
			return pos, true
		}
	}
}
