// Package board implements the 2048 rules engine: a 4x4 grid of tiles that
// slide and merge, score accumulation, random spawning and game-over
// detection by simulating every move on an isolated copy.
//
// The engine has no dependency on any terminal or UI package. Callers apply
// moves and re-read the tile list, score and flags afterwards.
package board

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// Size is the board dimension.
	Size = 4
	// TotalCells is the number of cells on the board.
	TotalCells = Size * Size
	// WinningValue is the tile value that wins the game.
	WinningValue = 2048
)

var (
	// ErrCellOccupied is returned by Place when the cell already holds a tile.
	ErrCellOccupied = errors.New("board: cell already occupied")
	// ErrInvalidValue is returned by Place for non-positive tile values.
	ErrInvalidValue = errors.New("board: tile value must be positive")
)

// Board owns the tiles of one game.
type Board struct {
	tiles    []*Tile
	score    int
	gameOver bool
	moves    int
	moved    bool
	spawned  *Tile

	rng    Source
	logger *log.Logger
}

// Option configures a Board.
type Option func(*Board)

// WithRand sets the random source used for spawning tiles.
func WithRand(src Source) Option {
	return func(b *Board) {
		b.rng = src
	}
}

// WithLogger enables debug logging of moves, merges and board dumps.
func WithLogger(logger *log.Logger) Option {
	return func(b *Board) {
		b.logger = logger
	}
}

// New creates a board and starts a game with two random tiles.
func New(opts ...Option) *Board {
	b := &Board{}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	b.StartNewGame()
	return b
}

// StartNewGame clears the board, resets score and flags and seeds two tiles.
func (b *Board) StartNewGame() {
	b.tiles = nil
	b.score = 0
	b.gameOver = false
	b.moves = 0
	b.moved = false
	b.spawned = nil

	b.addRandomTile()
	b.addRandomTile()
}

// ApplyMove slides every row or column in the direction of m, merging equal
// neighbours, then spawns a tile if anything changed and checks for game over.
// It does nothing once the game is over. It panics if m is not a catalog move.
func (b *Board) ApplyMove(m Move) {
	b.applyMove(m, false)
}

func (b *Board) applyMove(m Move, simulateOnly bool) {
	if !m.valid() {
		panic(fmt.Sprintf("board: invalid move %+v", m))
	}
	if b.gameOver {
		b.moved = false
		return
	}

	b.debugBoard("before apply move", "move", m)

	// Tiles destroyed by the previous move are kept until now so the UI can
	// animate them into their absorbers.
	b.purgeDestroyed()
	b.spawned = nil
	for _, t := range b.tiles {
		t.ClearStateFlags()
	}

	next := make([]*Tile, 0, len(b.tiles)+1)
	var destroyed []*Tile
	for _, group := range Group(b.tiles, m.Axis) {
		survivors, gone := b.combine(group, m.Polarity)
		b.shift(survivors, m)
		next = append(next, survivors...)
		destroyed = append(destroyed, gone...)
	}
	b.tiles = append(next, destroyed...)

	b.moved = b.anyDirty()
	if b.moved {
		b.moves++
		b.debug("board moved, adding new tile", "move", m)
		b.spawned = b.addRandomTile()
	}

	if !simulateOnly {
		b.checkIfGameOver()
	}
}

// combine merges equal neighbours of one group, walking from the edge the
// tiles travel toward. A tile merges at most once per move.
func (b *Board) combine(group []*Tile, p Polarity) (survivors, destroyed []*Tile) {
	if len(group) >= 2 {
		walk := group
		if p == Forward {
			walk = reversed(group)
		}

		for _, i := range Range(1, len(walk)-1) {
			prev, cur := walk[i-1], walk[i]
			if prev.value != cur.value || prev.combined || cur.combined || prev.destroyed {
				continue
			}

			cur.Combine(prev)
			b.score += cur.value
			b.debug("destroying tile", "id", prev.id, "into", cur.id, "value", cur.value)
		}
	}

	for _, t := range group {
		if t.destroyed {
			destroyed = append(destroyed, t)
		} else {
			survivors = append(survivors, t)
		}
	}
	return survivors, destroyed
}

// shift packs the group against the edge given by the move polarity.
func (b *Board) shift(group []*Tile, m Move) {
	slot := 0
	if m.Polarity == Forward {
		slot = Size - len(group)
	}

	for _, t := range group {
		if m.Axis == Rows {
			t.SetPosition(NewPosition(t.position.x, slot))
		} else {
			t.SetPosition(NewPosition(slot, t.position.y))
		}
		slot++
	}
}

func (b *Board) purgeDestroyed() {
	kept := b.tiles[:0]
	for _, t := range b.tiles {
		if !t.destroyed {
			kept = append(kept, t)
		}
	}
	clear(b.tiles[len(kept):])
	b.tiles = kept
}

func (b *Board) anyDirty() bool {
	for _, t := range b.tiles {
		if t.dirty {
			return true
		}
	}
	return false
}

// Place puts a new tile on an empty cell.
func (b *Board) Place(pos Position, value int) (*Tile, error) {
	if value <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidValue, value)
	}
	if b.TileAt(pos) != nil {
		return nil, fmt.Errorf("%w: %s", ErrCellOccupied, pos)
	}

	t := NewTile(pos, value)
	b.tiles = append(b.tiles, t)
	return t, nil
}

// Clear removes every tile. Score and game-over are left as they are.
func (b *Board) Clear() {
	b.tiles = nil
	b.spawned = nil
	b.moved = false
}

// Tiles returns every tile the board holds, including tiles destroyed by
// the last move. Those are dropped when the next move starts.
func (b *Board) Tiles() []*Tile {
	out := make([]*Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// ActiveTiles returns the tiles that are not destroyed.
func (b *Board) ActiveTiles() []*Tile {
	out := make([]*Tile, 0, len(b.tiles))
	for _, t := range b.tiles {
		if !t.destroyed {
			out = append(out, t)
		}
	}
	return out
}

// TileAt returns the active tile at pos, or nil.
func (b *Board) TileAt(pos Position) *Tile {
	for _, t := range b.tiles {
		if !t.destroyed && t.position == pos {
			return t
		}
	}
	return nil
}

// Score returns the accumulated score.
func (b *Board) Score() int {
	return b.score
}

// IsGameOver reports whether no move can change the board.
func (b *Board) IsGameOver() bool {
	return b.gameOver
}

// IsGameWon reports whether a tile has reached WinningValue.
func (b *Board) IsGameWon() bool {
	return b.MaxTile() >= WinningValue
}

// MaxTile returns the highest tile value on the board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for _, t := range b.tiles {
		if t.value > maxVal {
			maxVal = t.value
		}
	}
	return maxVal
}

// Spawned returns the tile added by the last move, if any.
func (b *Board) Spawned() (TileID, bool) {
	if b.spawned == nil {
		return "", false
	}
	return b.spawned.id, true
}

// Moved reports whether the last move changed the board.
func (b *Board) Moved() bool {
	return b.moved
}

// MoveCount returns the number of moves that changed the board this game.
func (b *Board) MoveCount() int {
	return b.moves
}

// Grid returns tile values indexed by [row][column]; empty cells are 0.
func (b *Board) Grid() [Size][Size]int {
	var g [Size][Size]int
	for _, t := range b.tiles {
		if !t.destroyed {
			g[t.position.x][t.position.y] = t.value
		}
	}
	return g
}

// String renders the grid one row per line, empty cells as dots.
func (b *Board) String() string {
	g := b.Grid()

	var sb strings.Builder
	for x := range Size {
		if x > 0 {
			sb.WriteByte('\n')
		}
		for y := range Size {
			cell := "."
			if g[x][y] != 0 {
				cell = strconv.Itoa(g[x][y])
			}
			fmt.Fprintf(&sb, "%6s", cell)
		}
	}
	return sb.String()
}

func (b *Board) debug(msg string, keyvals ...any) {
	if b.logger != nil {
		b.logger.Debug(msg, keyvals...)
	}
}

// debugBoard logs a grid dump. The dump is only built when debug is enabled.
func (b *Board) debugBoard(msg string, keyvals ...any) {
	if b.logger == nil || b.logger.GetLevel() > log.DebugLevel {
		return
	}
	keyvals = append(keyvals, "score", b.score, "board", "\n"+b.String())
	b.logger.Debug(msg, keyvals...)
}
