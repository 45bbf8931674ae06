package board

import "github.com/google/uuid"

// TileID is the opaque identity of a tile. It is assigned once and never reused.
type TileID string

// Tile is one numbered piece on the board.
//
// Besides its value and position a tile carries three per-move flags:
// dirty (moved or merged this move), combined (absorbed another tile this
// move) and destroyed (was absorbed this move). The board resets dirty and
// combined at the start of every move; destroyed tiles are dropped then.
type Tile struct {
	id         TileID
	position   Position
	value      int
	dirty      bool
	combined   bool
	destroyed  bool
	absorbedBy TileID
}

// NewTile creates a tile with a fresh identity and cleared flags.
func NewTile(pos Position, value int) *Tile {
	return &Tile{
		id:       TileID(uuid.NewString()),
		position: pos,
		value:    value,
	}
}

// ID returns the tile identity.
func (t *Tile) ID() TileID {
	return t.id
}

// Value returns the tile value. Destroyed tiles report 0.
func (t *Tile) Value() int {
	return t.value
}

// Position returns the current cell of the tile.
func (t *Tile) Position() Position {
	return t.position
}

// Dirty reports whether the tile moved, merged or was destroyed this move.
func (t *Tile) Dirty() bool {
	return t.dirty
}

// Combined reports whether the tile absorbed another tile this move.
func (t *Tile) Combined() bool {
	return t.combined
}

// Destroyed reports whether the tile was absorbed into another tile.
func (t *Tile) Destroyed() bool {
	return t.destroyed
}

// AbsorbedBy returns the identity of the tile that absorbed this one.
// The second result is false unless the tile was destroyed by a merge.
func (t *Tile) AbsorbedBy() (TileID, bool) {
	return t.absorbedBy, t.absorbedBy != ""
}

// SetPosition moves the tile. Moving to the current cell is a no-op;
// any other cell marks the tile dirty.
func (t *Tile) SetPosition(pos Position) {
	if t.position == pos {
		return
	}
	t.position = pos
	t.dirty = true
}

// Combine absorbs other into t: t takes other's value and cell, and other
// is destroyed. The caller guarantees neither tile has combined this move.
func (t *Tile) Combine(other *Tile) {
	t.value += other.value
	t.position = other.position
	t.combined = true
	t.dirty = true

	other.Destroy()
	other.absorbedBy = t.id
}

// Destroy marks the tile as removed. It is idempotent.
func (t *Tile) Destroy() {
	t.destroyed = true
	t.value = 0
	t.dirty = true
}

// ClearStateFlags resets dirty and combined. Destroyed is left alone;
// destroyed tiles are purged rather than revived.
func (t *Tile) ClearStateFlags() {
	t.dirty = false
	t.combined = false
}

// Clone returns a copy with a fresh identity and the same position, value
// and flags. Only lookahead simulation uses clones.
func (t *Tile) Clone() *Tile {
	c := NewTile(t.position, t.value)
	c.dirty = t.dirty
	c.combined = t.combined
	c.destroyed = t.destroyed
	return c
}
