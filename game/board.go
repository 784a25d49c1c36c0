package game

// Size is the board's side length.
const Size = 3

// Board is a 3x3 grid of marks. The zero value is an empty board.
//
// A board is owned by whoever created it: the engine mutates its board only
// through Place, and agents that want to explore hypothetical placements must
// do so on a Copy.
type Board struct {
	cells [Size][Size]Mark
}

func NewBoard() *Board {
	return &Board{}
}

// At returns the mark at c.
func (b *Board) At(c Coordinate) Mark {
	return b.cells[c.Row][c.Col]
}

// Place writes mark at c, overwriting whatever was there. Legality is the
// referee's concern, not the board's.
func (b *Board) Place(c Coordinate, mark Mark) {
	b.cells[c.Row][c.Col] = mark
}

// Copy returns an independent board with the same contents.
func (b *Board) Copy() *Board {
	clone := *b
	return &clone
}

// FreeCells returns every empty cell in row-major order.
func (b *Board) FreeCells() []Coordinate {
	free := make([]Coordinate, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.cells[row][col] == Empty {
				free = append(free, Coordinate{Row: row, Col: col})
			}
		}
	}
	return free
}

// Histogram counts the cells holding each mark.
func (b *Board) Histogram() map[Mark]int {
	hist := map[Mark]int{X: 0, O: 0, Empty: 0}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			hist[b.cells[row][col]]++
		}
	}
	return hist
}

// Full reports whether no cell is empty.
func (b *Board) Full() bool {
	return b.Histogram()[Empty] == 0
}

// Turn names the mark that moves next: X moves first and turns alternate, so
// X is up whenever O has placed at least as many marks as X. The rule is
// derived from cell counts alone, which keeps it meaningful even on boards
// an unruly agent has corrupted.
func (b *Board) Turn() Mark {
	hist := b.Histogram()
	if hist[O] >= hist[X] {
		return X
	}
	return O
}
