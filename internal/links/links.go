// Package links derives the link structures advanced elimination
// strategies work on. A link table is a read-only view of one board state:
// the solver recomputes it before every strategy pass and discards it once
// the pass is done. Nothing in here mutates the board.
//
// For a candidate digit within one region:
//
//   - exactly two candidate cells form a strong link (one of the two cells
//     must end up holding the digit)
//   - more than two candidate cells form pairwise weak links (at most one
//     of any pair holds the digit, with no disjunction guarantee)
//
// Independently, a vacant cell with exactly two candidates forms an inner
// link between those two digits.
package links

import (
	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
)

// Kind tells which region type produced a link.
type Kind int

const (
	RowRegion Kind = iota
	ColumnRegion
	QuadrantRegion
)

// Link connects two cells that share a region and both carry Digit as a
// candidate.
type Link struct {
	Digit int
	Kind  Kind
	A, B  board.Coord
}

// Inner marks a cell whose candidate set is exactly {Low, High}.
type Inner struct {
	Cell board.Coord
	Low  int
	High int
}

// Table holds the links of one board state, indexed by digit (1..DIM).
// Line cell groups are kept alongside so fish-shaped strategies (X-Wing,
// Swordfish) can query which cells of a row or column carry a digit.
type Table struct {
	size   int
	strong [][]Link
	weak   [][]Link
	inner  [][]Inner

	rowCells [][][]board.Coord // [digit][row-1]
	colCells [][][]board.Coord // [digit][col-1]
}

// Compute builds the full link table for the current board state.
func Compute(b *board.Board) *Table {
	size := b.Size()
	t := &Table{
		size:     size,
		strong:   make([][]Link, size+1),
		weak:     make([][]Link, size+1),
		inner:    make([][]Inner, size+1),
		rowCells: make([][][]board.Coord, size+1),
		colCells: make([][][]board.Coord, size+1),
	}
	for d := 1; d <= size; d++ {
		t.rowCells[d] = make([][]board.Coord, size)
		t.colCells[d] = make([][]board.Coord, size)
	}

	for row := 1; row <= size; row++ {
		t.scanRegion(b, b.RowCoords(row), RowRegion)
	}
	for col := 1; col <= size; col++ {
		t.scanRegion(b, b.ColumnCoords(col), ColumnRegion)
	}
	for d1 := 1; d1 <= b.Dim(); d1++ {
		for d2 := 1; d2 <= b.Dim(); d2++ {
			t.scanRegion(b, b.QuadrantCoords(d1, d2), QuadrantRegion)
		}
	}
	t.scanInner(b)
	return t
}

// Strong returns the strong links for digit.
func (t *Table) Strong(digit int) []Link { return t.strong[digit] }

// Weak returns the weak links for digit.
func (t *Table) Weak(digit int) []Link { return t.weak[digit] }

// Inner returns the inner links involving digit.
func (t *Table) Inner(digit int) []Inner { return t.inner[digit] }

// RowCells returns the cells of row that carry digit as a candidate.
func (t *Table) RowCells(digit, row int) []board.Coord { return t.rowCells[digit][row-1] }

// ColumnCells returns the cells of col that carry digit as a candidate.
func (t *Table) ColumnCells(digit, col int) []board.Coord { return t.colCells[digit][col-1] }

func (t *Table) scanRegion(b *board.Board, cells []board.Coord, kind Kind) {
	for digit := 1; digit <= t.size; digit++ {
		var group []board.Coord
		for _, p := range cells {
			if b.Candidates(p.Row, p.Col).Has(digit) {
				group = append(group, p)
			}
		}
		switch {
		case len(group) == 2:
			t.strong[digit] = append(t.strong[digit], Link{Digit: digit, Kind: kind, A: group[0], B: group[1]})
		case len(group) > 2:
			for i := 0; i < len(group)-1; i++ {
				for j := i + 1; j < len(group); j++ {
					t.weak[digit] = append(t.weak[digit], Link{Digit: digit, Kind: kind, A: group[i], B: group[j]})
				}
			}
		}
		switch kind {
		case RowRegion:
			if len(group) > 0 {
				t.rowCells[digit][cells[0].Row-1] = group
			}
		case ColumnRegion:
			if len(group) > 0 {
				t.colCells[digit][cells[0].Col-1] = group
			}
		}
	}
}

func (t *Table) scanInner(b *board.Board) {
	size := b.Size()
	for row := 1; row <= size; row++ {
		for col := 1; col <= size; col++ {
			cands := b.Candidates(row, col)
			if cands.Count() != 2 {
				continue
			}
			ds := cands.Digits(size)
			in := Inner{Cell: board.Coord{Row: row, Col: col}, Low: ds[0], High: ds[1]}
			t.inner[ds[0]] = append(t.inner[ds[0]], in)
			t.inner[ds[1]] = append(t.inner[ds[1]], in)
		}
	}
}
