package game

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds = errors.New("coordinate is outside the board")
	ErrInvalidMark = errors.New("invalid mark")
)

// Mark is the content of a single cell: X, O, or Empty.
type Mark int

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "-"
	}
}

// Other returns the opposing mark. Empty has no opponent and maps to itself.
func (m Mark) Other() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Coordinate identifies a cell by row and column, each in [0,2].
type Coordinate struct {
	Row int
	Col int
}

func NewCoordinate(row, col int) (Coordinate, error) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return Coordinate{}, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}
	return Coordinate{Row: row, Col: col}, nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Move is a proposed placement. It is not applied to any board until the
// engine decides it survives adjudication.
type Move struct {
	Coordinate Coordinate
	Mark       Mark
}

func (m Move) String() string {
	return fmt.Sprintf("%v %v", m.Coordinate, m.Mark)
}
