package board

import "fmt"

// Position is a cell on the board. X is the row index and Y the column index.
// Positions are values: moving a tile replaces its Position, it never edits one.
type Position struct {
	x int
	y int
}

// NewPosition returns the cell at row x, column y.
// It panics if either coordinate is outside the board.
func NewPosition(x, y int) Position {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		panic(fmt.Sprintf("board: position (%d, %d) outside %dx%d grid", x, y, Size, Size))
	}
	return Position{x: x, y: y}
}

// X returns the row index.
func (p Position) X() int {
	return p.x
}

// Y returns the column index.
func (p Position) Y() int {
	return p.y
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.x, p.y)
}
