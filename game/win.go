package game

// lines holds every winning line in scan order: rows, columns, diagonals.
var lines = [8][3]Coordinate{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Winner returns the mark holding a complete line, or Empty if no line is
// complete. Lines are scanned in a fixed order and the first match wins;
// legal play cannot produce two different winners, so no tie-break is needed.
func (b *Board) Winner() Mark {
	for _, line := range lines {
		first := b.At(line[0])
		if first == Empty {
			continue
		}
		if b.At(line[1]) == first && b.At(line[2]) == first {
			return first
		}
	}
	return Empty
}
