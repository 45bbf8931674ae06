package board

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewBoardSeedsTwoTiles(t *testing.T) {
	b := New(WithRand(rand.New(rand.NewSource(7))))

	require.Len(t, b.Tiles(), 2)
	require.Zero(t, b.Score())
	require.False(t, b.IsGameOver())
	require.NotEqual(t, b.Tiles()[0].Position(), b.Tiles()[1].Position())
	for _, tile := range b.Tiles() {
		require.Contains(t, []int{2, 4}, tile.Value())
	}

	_, ok := b.Spawned()
	require.False(t, ok)
}

func TestStartNewGameResets(t *testing.T) {
	b := newEmptyBoard(t, 3)
	place(t, b, 0, 0, 2)
	place(t, b, 0, 1, 2)
	b.ApplyMove(Left)
	require.Equal(t, 4, b.Score())

	b.gameOver = true
	b.StartNewGame()

	require.Zero(t, b.Score())
	require.False(t, b.IsGameOver())
	require.Len(t, b.Tiles(), 2)
	require.Zero(t, b.MoveCount())
}

func TestDeterministicSeed(t *testing.T) {
	b1 := New(WithRand(rand.New(rand.NewSource(12345))))
	b2 := New(WithRand(rand.New(rand.NewSource(12345))))
	require.Equal(t, b1.Grid(), b2.Grid())

	for _, m := range []Move{Left, Up, Right, Down, Left, Left} {
		b1.ApplyMove(m)
		b2.ApplyMove(m)
	}
	require.Equal(t, b1.Grid(), b2.Grid())
	require.Equal(t, b1.Score(), b2.Score())
}

func TestIsGameWon(t *testing.T) {
	t.Run("high score alone does not win", func(t *testing.T) {
		b := newEmptyBoard(t, 1)
		b.score = 4096
		place(t, b, 0, 0, 1024)
		require.False(t, b.IsGameWon())
	})

	t.Run("2048 tile wins", func(t *testing.T) {
		b := newEmptyBoard(t, 1)
		place(t, b, 0, 0, 2048)
		require.True(t, b.IsGameWon())
	})

	t.Run("larger tile wins", func(t *testing.T) {
		b := newEmptyBoard(t, 1)
		place(t, b, 0, 0, 4096)
		require.True(t, b.IsGameWon())
	})
}

func TestApplyMoveShifts(t *testing.T) {
	tests := []struct {
		name string
		move Move
		// starting cells of tile1 (2), tile2 (4), tile3 (8)
		want [3]Position
	}{
		{"right", Right, [3]Position{NewPosition(0, 3), NewPosition(1, 3), NewPosition(1, 2)}},
		{"left", Left, [3]Position{NewPosition(0, 0), NewPosition(1, 1), NewPosition(1, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newEmptyBoard(t, 11)
			tile1 := place(t, b, 0, 1, 2)
			tile2 := place(t, b, 1, 2, 4)
			tile3 := place(t, b, 1, 0, 8)

			b.ApplyMove(tt.move)

			require.Len(t, b.Tiles(), 4)
			require.Equal(t, tt.want[0], tile1.Position())
			require.Equal(t, tt.want[1], tile2.Position())
			require.Equal(t, tt.want[2], tile3.Position())
			require.Equal(t, 2, tile1.Value())
			require.Equal(t, 4, tile2.Value())
			require.Equal(t, 8, tile3.Value())
		})
	}
}

func TestApplyMoveShiftsColumns(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want [3]Position
	}{
		{"up", Up, [3]Position{NewPosition(1, 2), NewPosition(0, 2), NewPosition(0, 0)}},
		{"down", Down, [3]Position{NewPosition(3, 2), NewPosition(2, 2), NewPosition(3, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newEmptyBoard(t, 12)
			tile1 := place(t, b, 3, 2, 2)
			tile2 := place(t, b, 1, 2, 4)
			tile3 := place(t, b, 1, 0, 8)

			b.ApplyMove(tt.move)

			require.Len(t, b.Tiles(), 4)
			require.Equal(t, tt.want[0], tile1.Position())
			require.Equal(t, tt.want[1], tile2.Position())
			require.Equal(t, tt.want[2], tile3.Position())
		})
	}
}

func TestCombineNeighbours(t *testing.T) {
	b := newEmptyBoard(t, 5)
	tile1 := place(t, b, 0, 1, 2)
	tile2 := place(t, b, 0, 2, 2)
	tile3 := place(t, b, 1, 0, 8)

	b.ApplyMove(Right)

	require.True(t, tile2.Destroyed())
	require.True(t, tile1.Combined())
	require.Equal(t, NewPosition(0, 3), tile1.Position())
	require.Equal(t, 4, tile1.Value())
	require.Equal(t, NewPosition(1, 3), tile3.Position())
	require.Equal(t, 8, tile3.Value())
	require.Equal(t, 4, b.Score())
}

func TestCombineAcrossGap(t *testing.T) {
	b := newEmptyBoard(t, 5)
	tile1 := place(t, b, 0, 0, 2)
	tile2 := place(t, b, 0, 3, 2)

	b.ApplyMove(Right)

	require.True(t, tile2.Destroyed())
	require.True(t, tile1.Combined())
	require.Equal(t, NewPosition(0, 3), tile1.Position())
	require.Equal(t, 4, tile1.Value())
}

func TestCombineInDirectionOfTravel(t *testing.T) {
	b := newEmptyBoard(t, 5)
	tile1 := place(t, b, 0, 1, 2)
	tile2 := place(t, b, 0, 2, 2)
	tile3 := place(t, b, 0, 3, 2)

	b.ApplyMove(Right)

	require.True(t, tile3.Destroyed())
	require.True(t, tile2.Combined())
	require.False(t, tile1.Combined())
	require.Equal(t, NewPosition(0, 2), tile1.Position())
	require.Equal(t, 2, tile1.Value())
	require.Equal(t, NewPosition(0, 3), tile2.Position())
	require.Equal(t, 4, tile2.Value())
}

func TestCombineOneLevel(t *testing.T) {
	b := newEmptyBoard(t, 5)
	tile0 := place(t, b, 0, 0, 2)
	tile1 := place(t, b, 0, 1, 2)
	tile2 := place(t, b, 0, 2, 2)
	tile3 := place(t, b, 0, 3, 2)

	b.ApplyMove(Right)

	require.True(t, tile3.Destroyed())
	require.True(t, tile1.Destroyed())
	require.True(t, tile2.Combined())
	require.True(t, tile0.Combined())
	require.Equal(t, NewPosition(0, 2), tile0.Position())
	require.Equal(t, 4, tile0.Value())
	require.Equal(t, NewPosition(0, 3), tile2.Position())
	require.Equal(t, 4, tile2.Value())
	require.Equal(t, 8, b.Score())

	row := b.Grid()[0]
	require.Equal(t, 4, row[2])
	require.Equal(t, 4, row[3])
}

func TestCombineNotTwice(t *testing.T) {
	b := newEmptyBoard(t, 5)
	tile0 := place(t, b, 0, 0, 2)
	tile1 := place(t, b, 0, 1, 8)
	tile2 := place(t, b, 0, 2, 4)
	tile3 := place(t, b, 0, 3, 4)

	b.ApplyMove(Right)

	require.True(t, tile3.Destroyed())
	require.False(t, tile2.Destroyed())
	require.True(t, tile2.Combined())
	require.False(t, tile1.Combined())
	require.False(t, tile3.Combined())
	require.Equal(t, NewPosition(0, 1), tile0.Position())
	require.Equal(t, 2, tile0.Value())
	require.Equal(t, NewPosition(0, 2), tile1.Position())
	require.Equal(t, 8, tile1.Value())
	require.Equal(t, NewPosition(0, 3), tile2.Position())
	require.Equal(t, 8, tile2.Value())
	require.Equal(t, 8, b.Score())
}

func TestMergedTileDoesNotMergeAgain(t *testing.T) {
	// 2,2,4 sliding left: the 2s merge into a 4 that must not absorb the old 4.
	b := newEmptyBoard(t, 5)
	place(t, b, 0, 0, 2)
	place(t, b, 0, 1, 2)
	place(t, b, 0, 2, 4)

	b.ApplyMove(Left)

	row := b.Grid()[0]
	require.Equal(t, 4, row[0])
	require.Equal(t, 4, row[1])
	require.Equal(t, 4, b.Score())
}

func TestSlidesMatchValueGrid(t *testing.T) {
	start := [Size][Size]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	tests := []struct {
		move  Move
		want  [Size][Size]int
		score int
	}{
		{Left, [Size][Size]int{
			{4, 0, 0, 0},
			{8, 0, 0, 0},
			{4, 4, 0, 0},
			{2, 0, 0, 0},
		}, 20},
		{Right, [Size][Size]int{
			{0, 0, 0, 4},
			{0, 0, 0, 8},
			{0, 0, 4, 4},
			{0, 0, 0, 2},
		}, 20},
		{Up, [Size][Size]int{
			{2, 4, 4, 4},
			{4, 0, 2, 0},
			{2, 0, 0, 0},
			{0, 0, 0, 0},
		}, 8},
		{Down, [Size][Size]int{
			{0, 0, 0, 0},
			{2, 0, 0, 0},
			{4, 0, 4, 0},
			{2, 4, 2, 4},
		}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.move.String(), func(t *testing.T) {
			b := newEmptyBoard(t, 9)
			fillGrid(t, b, start)

			b.ApplyMove(tt.move)

			id, ok := b.Spawned()
			require.True(t, ok)
			got := b.Grid()
			for _, tile := range b.ActiveTiles() {
				if tile.ID() == id {
					got[tile.Position().X()][tile.Position().Y()] = 0
				}
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.move, diff)
			}
			require.Equal(t, tt.score, b.Score())
		})
	}
}

func TestNoMovementLeavesTilesClean(t *testing.T) {
	b := newEmptyBoard(t, 5)
	place(t, b, 0, 0, 2)

	b.ApplyMove(Left)

	require.Len(t, b.Tiles(), 1, "no tile may spawn when nothing moved")
	require.False(t, b.Moved())
	for _, tile := range b.Tiles() {
		require.False(t, tile.Dirty())
	}
	_, ok := b.Spawned()
	require.False(t, ok)
}

func TestDirtyFlagsClearedBetweenMoves(t *testing.T) {
	b := newEmptyBoard(t, 5)
	tile := place(t, b, 0, 0, 2)
	tile.dirty = true

	b.ApplyMove(Left)

	for _, tile := range b.Tiles() {
		require.False(t, tile.Dirty())
	}
}

func TestDestroyedTilesPurgedOnNextMove(t *testing.T) {
	b := newEmptyBoard(t, 21)
	place(t, b, 0, 0, 2)
	gone := place(t, b, 0, 1, 2)

	b.ApplyMove(Left)
	require.Contains(t, b.Tiles(), gone, "destroyed tile is kept for one move")
	require.NotContains(t, b.ActiveTiles(), gone)
	require.Nil(t, b.TileAt(NewPosition(0, 1)), "destroyed tiles do not occupy cells")

	b.ApplyMove(Up)
	require.NotContains(t, b.Tiles(), gone)
}

func TestSpawnAfterMove(t *testing.T) {
	b := newEmptyBoard(t, 33)
	place(t, b, 0, 3, 2)
	place(t, b, 2, 2, 4)

	b.ApplyMove(Left)

	id, ok := b.Spawned()
	require.True(t, ok)
	require.Len(t, b.Tiles(), 3)

	var spawned *Tile
	for _, tile := range b.Tiles() {
		if tile.ID() == id {
			spawned = tile
		}
	}
	require.NotNil(t, spawned)
	require.Contains(t, []int{2, 4}, spawned.Value())
	require.False(t, spawned.Dirty())

	// the spawn cell was empty after the slide
	pos := spawned.Position()
	require.NotEqual(t, NewPosition(0, 0), pos)
	require.NotEqual(t, NewPosition(2, 0), pos)
}

func TestSpawnOnFullBoardIsNoop(t *testing.T) {
	b := newEmptyBoard(t, 1)
	for x := range Size {
		for y := range Size {
			place(t, b, x, y, 2<<((x*Size+y)%10))
		}
	}

	require.Nil(t, b.addRandomTile())
	require.Len(t, b.Tiles(), TotalCells)
}

func TestSpawnValueDistribution(t *testing.T) {
	b := newEmptyBoard(t, 99)
	fours := 0
	const draws = 5000
	for range draws {
		b.Clear()
		if b.addRandomTile().Value() == 4 {
			fours++
		}
	}

	ratio := float64(fours) / draws
	require.InDelta(t, 0.1, ratio, 0.03)
}

func TestGameOverWhenNoMovesRemain(t *testing.T) {
	b := newEmptyBoard(t, 17)
	for _, row := range Range(0, Size-1) {
		for _, col := range Range(0, Size-1) {
			if row == Size-1 && col == Size-1 {
				continue
			}
			place(t, b, row, col, (col+1)*((row+4)*8))
		}
	}

	b.ApplyMove(Right)

	require.Len(t, b.ActiveTiles(), TotalCells)
	require.True(t, b.IsGameOver())

	// sticky: further moves are ignored
	score := b.Score()
	grid := b.Grid()
	for _, m := range Moves() {
		b.ApplyMove(m)
	}
	require.True(t, b.IsGameOver())
	require.Equal(t, score, b.Score())
	require.Equal(t, grid, b.Grid())
}

func TestTerminalDetection(t *testing.T) {
	tests := []struct {
		name string
		grid [Size][Size]int
		over bool
	}{
		{
			name: "no adjacent pairs",
			grid: [Size][Size]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			over: true,
		},
		{
			name: "vertical pair",
			grid: [Size][Size]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 4096},
			},
			over: false,
		},
		{
			name: "checkerboard",
			grid: [Size][Size]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			over: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newEmptyBoard(t, 2)
			fillGrid(t, b, tt.grid)

			// rows hold no pairs, so a left slide changes nothing and only runs the check
			b.ApplyMove(Left)

			require.False(t, b.Moved())
			require.Equal(t, tt.over, b.IsGameOver())
		})
	}
}

func TestHorizontalPairKeepsGameAlive(t *testing.T) {
	b := newEmptyBoard(t, 2)
	fillGrid(t, b, [Size][Size]int{
		{2, 2, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	})

	b.ApplyMove(Up)

	require.False(t, b.Moved())
	require.False(t, b.IsGameOver())
	require.True(t, b.CanMove(Left))
	require.True(t, b.CanMove(Right))
	require.False(t, b.CanMove(Up))
	require.False(t, b.CanMove(Down))
}

func TestLookaheadHasNoSideEffects(t *testing.T) {
	src := &countingSource{src: rand.New(rand.NewSource(4))}
	b := New(WithRand(src))
	b.Clear()
	place(t, b, 0, 0, 2)
	place(t, b, 0, 1, 2)
	place(t, b, 3, 3, 8)

	draws := src.draws
	before := b.Tiles()
	grid := b.Grid()

	for _, m := range Moves() {
		require.True(t, b.CanMove(m))
	}

	require.Equal(t, draws, src.draws, "lookahead must not draw from the live source")
	require.Equal(t, grid, b.Grid())
	require.Equal(t, before, b.Tiles())
	require.Zero(t, b.Score())
	for _, tile := range b.Tiles() {
		require.False(t, tile.Dirty())
		require.False(t, tile.Combined())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := newEmptyBoard(t, 8)
	orig := place(t, b, 1, 1, 4)
	b.score = 40

	c := b.Clone()
	require.Equal(t, b.Grid(), c.Grid())
	require.Equal(t, 40, c.Score())
	require.NotEqual(t, orig.ID(), c.Tiles()[0].ID())

	c.ApplyMove(Left)
	require.Equal(t, NewPosition(1, 1), orig.Position())
	require.Len(t, b.Tiles(), 1)
}

func TestPlace(t *testing.T) {
	b := newEmptyBoard(t, 1)

	_, err := b.Place(NewPosition(0, 0), 2)
	require.NoError(t, err)

	_, err = b.Place(NewPosition(0, 0), 4)
	require.ErrorIs(t, err, ErrCellOccupied)

	_, err = b.Place(NewPosition(1, 0), 0)
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestString(t *testing.T) {
	b := newEmptyBoard(t, 1)
	place(t, b, 0, 0, 2)
	place(t, b, 3, 3, 2048)

	want := "     2     .     .     .\n" +
		"     .     .     .     .\n" +
		"     .     .     .     .\n" +
		"     .     .     .  2048"
	require.Equal(t, want, b.String())
}

// TestMoveInvariants plays seeded random games and checks conservation,
// single merges and compaction after every move.
func TestMoveInvariants(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := New(WithRand(rng))

		for step := 0; step < 500 && !b.IsGameOver(); step++ {
			m := Moves()[rng.Intn(len(Moves()))]
			before := sumValues(b.ActiveTiles())
			scoreBefore := b.Score()

			b.ApplyMove(m)

			active := b.ActiveTiles()
			after := sumValues(active)
			spawnedValue := 0
			if id, ok := b.Spawned(); ok {
				for _, tile := range active {
					if tile.ID() == id {
						spawnedValue = tile.Value()
					}
				}
			}
			require.Equal(t, before, after-spawnedValue, "seed %d step %d: merge must conserve value", seed, step)

			merged, destroyed := 0, 0
			for _, tile := range b.Tiles() {
				if tile.Combined() {
					merged += tile.Value()
					require.Equal(t, 0, tile.Value()%2, "merged values are even")
				}
				if tile.Destroyed() {
					destroyed++
					require.True(t, tile.Dirty())
					require.Zero(t, tile.Value())
				}
			}
			require.Equal(t, merged, b.Score()-scoreBefore, "seed %d step %d: score gain", seed, step)

			combined := 0
			for _, tile := range active {
				if tile.Combined() {
					combined++
				}
			}
			require.Equal(t, combined, destroyed, "each merge destroys exactly one tile")

			if b.Moved() {
				_, ok := b.Spawned()
				require.True(t, ok || len(active) == TotalCells)
			}

			requireCompacted(t, b, m)
		}
	}
}

// requireCompacted checks that every row or column touched by m forms a
// contiguous run against the target edge, ignoring the spawned tile.
func requireCompacted(t *testing.T, b *Board, m Move) {
	t.Helper()
	spawnID, _ := b.Spawned()

	var moved []*Tile
	for _, tile := range b.ActiveTiles() {
		if tile.ID() != spawnID {
			moved = append(moved, tile)
		}
	}

	for _, group := range Group(moved, m.Axis) {
		for i, tile := range group {
			free := tile.Position().Y()
			if m.Axis == Columns {
				free = tile.Position().X()
			}
			want := i
			if m.Polarity == Forward {
				want = Size - len(group) + i
			}
			require.Equal(t, want, free, "tile %s not compacted after %s", tile.Position(), m)
		}
	}
}
