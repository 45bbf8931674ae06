package board

import (
	"fmt"
	"strings"
)

// Axis selects how tiles are grouped for a move.
type Axis int

const (
	// Rows groups tiles sharing a row; they travel along the column index.
	Rows Axis = iota
	// Columns groups tiles sharing a column; they travel along the row index.
	Columns
)

func (a Axis) String() string {
	switch a {
	case Rows:
		return "rows"
	case Columns:
		return "columns"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Polarity is the edge a group's tiles are packed against.
type Polarity int

const (
	// Backward packs toward index 0.
	Backward Polarity = -1
	// Forward packs toward index Size-1.
	Forward Polarity = 1
)

func (p Polarity) String() string {
	switch p {
	case Backward:
		return "backward"
	case Forward:
		return "forward"
	default:
		return fmt.Sprintf("Polarity(%d)", int(p))
	}
}

// Move describes one of the four slides.
type Move struct {
	Name     string
	Axis     Axis
	Polarity Polarity
}

// The move catalog.
var (
	Right = Move{Name: "RIGHT", Axis: Rows, Polarity: Forward}
	Left  = Move{Name: "LEFT", Axis: Rows, Polarity: Backward}
	Down  = Move{Name: "DOWN", Axis: Columns, Polarity: Forward}
	Up    = Move{Name: "UP", Axis: Columns, Polarity: Backward}
)

// Moves returns every move in the catalog.
func Moves() []Move {
	return []Move{Right, Left, Down, Up}
}

// ParseMove looks up a move by name, ignoring case.
func ParseMove(name string) (Move, error) {
	for _, m := range Moves() {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("board: unknown move %q", name)
}

func (m Move) String() string {
	return m.Name
}

func (m Move) valid() bool {
	return (m.Axis == Rows || m.Axis == Columns) &&
		(m.Polarity == Backward || m.Polarity == Forward)
}
