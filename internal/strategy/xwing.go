package strategy

import (
	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/links"
)

// XWing consumes the link table: two strong row links for the same digit
// whose cells align on the same two columns form a rectangle, so the digit
// must sit on one of its diagonals. That licenses eliminating the digit
// from every other cell of the two columns. The transposed form works on
// strong column links and eliminates along rows.
type XWing struct{}

func NewXWing() *XWing { return &XWing{} }

func (*XWing) Name() string { return "x-wing" }

func (s *XWing) Apply(b *board.Board, t *links.Table) error {
	for digit := 1; digit <= b.Size(); digit++ {
		rowLinks := filterKind(t.Strong(digit), links.RowRegion)
		for i := 0; i < len(rowLinks)-1; i++ {
			for j := i + 1; j < len(rowLinks); j++ {
				li, lj := rowLinks[i], rowLinks[j]
				if li.A.Row == lj.A.Row {
					continue
				}
				if li.A.Col != lj.A.Col || li.B.Col != lj.B.Col {
					continue
				}
				keep := map[int]bool{li.A.Row: true, lj.A.Row: true}
				for _, col := range []int{li.A.Col, li.B.Col} {
					if err := eliminateInColumn(b, digit, col, keep, s.Name()); err != nil {
						return err
					}
				}
			}
		}

		colLinks := filterKind(t.Strong(digit), links.ColumnRegion)
		for i := 0; i < len(colLinks)-1; i++ {
			for j := i + 1; j < len(colLinks); j++ {
				li, lj := colLinks[i], colLinks[j]
				if li.A.Col == lj.A.Col {
					continue
				}
				if li.A.Row != lj.A.Row || li.B.Row != lj.B.Row {
					continue
				}
				keep := map[int]bool{li.A.Col: true, lj.A.Col: true}
				for _, row := range []int{li.A.Row, li.B.Row} {
					if err := eliminateInRow(b, digit, row, keep, s.Name()); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func filterKind(ls []links.Link, kind links.Kind) []links.Link {
	var out []links.Link
	for _, l := range ls {
		if l.Kind == kind {
			out = append(out, l)
		}
	}
	return out
}

func eliminateInColumn(b *board.Board, digit, col int, keepRows map[int]bool, reason string) error {
	for row := 1; row <= b.Size(); row++ {
		if keepRows[row] {
			continue
		}
		if err := b.AddInfluencer(row, col, digit, reason); err != nil {
			return err
		}
	}
	return nil
}

func eliminateInRow(b *board.Board, digit, row int, keepCols map[int]bool, reason string) error {
	for col := 1; col <= b.Size(); col++ {
		if keepCols[col] {
			continue
		}
		if err := b.AddInfluencer(row, col, digit, reason); err != nil {
			return err
		}
	}
	return nil
}
