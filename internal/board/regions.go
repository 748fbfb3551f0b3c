package board

// QuadrantOf maps a board coordinate to its quadrant coordinate
// (d1,d2 in 1..dim).
func (b *Board) QuadrantOf(row, col int) (d1, d2 int) {
	return (row-1)/b.dim + 1, (col-1)/b.dim + 1
}

// QuadrantOrigin returns the top-left board coordinate of quadrant (d1,d2).
func (b *Board) QuadrantOrigin(d1, d2 int) (row, col int) {
	return (d1-1)*b.dim + 1, (d2-1)*b.dim + 1
}

// RowCoords lists the cells of a row in column order.
func (b *Board) RowCoords(row int) []Coord {
	out := make([]Coord, 0, b.size)
	for col := 1; col <= b.size; col++ {
		out = append(out, Coord{row, col})
	}
	return out
}

// ColumnCoords lists the cells of a column in row order.
func (b *Board) ColumnCoords(col int) []Coord {
	out := make([]Coord, 0, b.size)
	for row := 1; row <= b.size; row++ {
		out = append(out, Coord{row, col})
	}
	return out
}

// QuadrantCoords lists the cells of quadrant (d1,d2) in row-major order.
func (b *Board) QuadrantCoords(d1, d2 int) []Coord {
	top, left := b.QuadrantOrigin(d1, d2)
	out := make([]Coord, 0, b.size)
	for r := 0; r < b.dim; r++ {
		for c := 0; c < b.dim; c++ {
			out = append(out, Coord{top + r, left + c})
		}
	}
	return out
}

// Peers returns the cells sharing a row, column, or quadrant with
// (row,col), excluding (row,col) itself and without duplicates.
func (b *Board) Peers(row, col int) []Coord {
	out := make([]Coord, 0, 3*b.size-2*b.dim-1)
	for c := 1; c <= b.size; c++ {
		if c != col {
			out = append(out, Coord{row, c})
		}
	}
	for r := 1; r <= b.size; r++ {
		if r != row {
			out = append(out, Coord{r, col})
		}
	}
	d1, d2 := b.QuadrantOf(row, col)
	for _, p := range b.QuadrantCoords(d1, d2) {
		if p.Row != row && p.Col != col {
			out = append(out, p)
		}
	}
	return out
}

// SameRow reports whether two cells share a row.
func SameRow(a, b Coord) bool { return a.Row == b.Row }

// SameColumn reports whether two cells share a column.
func SameColumn(a, b Coord) bool { return a.Col == b.Col }

// SameQuadrant reports whether two cells share a quadrant on a board with
// quadrant edge dim.
func SameQuadrant(a, b Coord, dim int) bool {
	return (a.Row-1)/dim == (b.Row-1)/dim && (a.Col-1)/dim == (b.Col-1)/dim
}

// VacantInRow lists the vacant cells of row, excluding column col.
func (b *Board) VacantInRow(row, col int) []Coord {
	var out []Coord
	for c := 1; c <= b.size; c++ {
		if c == col {
			continue
		}
		if !b.GetCell(row, c).Occupied {
			out = append(out, Coord{row, c})
		}
	}
	return out
}

// VacantInColumn lists the vacant cells of col, excluding row row.
func (b *Board) VacantInColumn(row, col int) []Coord {
	var out []Coord
	for r := 1; r <= b.size; r++ {
		if r == row {
			continue
		}
		if !b.GetCell(r, col).Occupied {
			out = append(out, Coord{r, col})
		}
	}
	return out
}

// VacantInQuadrant lists the vacant cells of the quadrant containing
// (row,col), excluding (row,col).
func (b *Board) VacantInQuadrant(row, col int) []Coord {
	var out []Coord
	d1, d2 := b.QuadrantOf(row, col)
	for _, p := range b.QuadrantCoords(d1, d2) {
		if p.Row == row && p.Col == col {
			continue
		}
		if !b.GetCell(p.Row, p.Col).Occupied {
			out = append(out, p)
		}
	}
	return out
}
