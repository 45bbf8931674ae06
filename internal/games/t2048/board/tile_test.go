package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTileCombine(t *testing.T) {
	t.Run("adds other value", func(t *testing.T) {
		a := NewTile(NewPosition(0, 0), 4)
		b := NewTile(NewPosition(0, 0), 5)

		a.Combine(b)
		require.Equal(t, 9, a.Value())
	})

	t.Run("destroys other tile", func(t *testing.T) {
		a := NewTile(NewPosition(0, 0), 4)
		b := NewTile(NewPosition(0, 0), 5)

		a.Combine(b)
		require.True(t, b.Destroyed())
		require.False(t, a.Destroyed())
		require.Zero(t, b.Value())
		require.True(t, b.Dirty())

		by, ok := b.AbsorbedBy()
		require.True(t, ok)
		require.Equal(t, a.ID(), by)
	})

	t.Run("takes other position", func(t *testing.T) {
		a := NewTile(NewPosition(1, 1), 4)
		b := NewTile(NewPosition(0, 2), 5)

		a.Combine(b)
		require.Equal(t, NewPosition(0, 2), a.Position())
	})

	t.Run("marks dirty and combined", func(t *testing.T) {
		a := NewTile(NewPosition(0, 0), 4)
		b := NewTile(NewPosition(0, 0), 5)

		a.Combine(b)
		require.True(t, a.Dirty())
		require.True(t, a.Combined())
		require.False(t, b.Combined())
	})
}

func TestTileDestroy(t *testing.T) {
	tile := NewTile(NewPosition(0, 0), 4)
	tile.Destroy()
	tile.Destroy()

	require.True(t, tile.Destroyed())
	require.True(t, tile.Dirty())
	require.Zero(t, tile.Value())

	_, ok := tile.AbsorbedBy()
	require.False(t, ok)
}

func TestTileSetPosition(t *testing.T) {
	tile := NewTile(NewPosition(0, 0), 4)

	tile.SetPosition(NewPosition(0, 0))
	require.False(t, tile.Dirty(), "same cell must not mark dirty")

	tile.SetPosition(NewPosition(1, 0))
	require.True(t, tile.Dirty())
	require.Equal(t, NewPosition(1, 0), tile.Position())
}

func TestTileClearStateFlags(t *testing.T) {
	a := NewTile(NewPosition(0, 0), 2)
	b := NewTile(NewPosition(0, 1), 2)
	a.Combine(b)

	a.ClearStateFlags()
	b.ClearStateFlags()

	require.False(t, a.Dirty())
	require.False(t, a.Combined())
	require.True(t, b.Destroyed(), "destroyed survives a flag reset")
}

func TestTileClone(t *testing.T) {
	tile := NewTile(NewPosition(2, 3), 8)
	tile.SetPosition(NewPosition(2, 2))

	c := tile.Clone()
	require.NotEqual(t, tile.ID(), c.ID())
	require.Equal(t, tile.Position(), c.Position())
	require.Equal(t, tile.Value(), c.Value())
	require.Equal(t, tile.Dirty(), c.Dirty())

	c.SetPosition(NewPosition(0, 0))
	require.Equal(t, NewPosition(2, 2), tile.Position(), "clone must not alias the original")
}

func TestTileIDsAreUnique(t *testing.T) {
	seen := make(map[TileID]bool)
	for range 100 {
		id := NewTile(NewPosition(0, 0), 2).ID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
