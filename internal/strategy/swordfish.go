package strategy

import (
	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/links"
)

// Swordfish extends the X-Wing to three lines. Three columns whose
// candidate cells for a digit (two or three per column) cover exactly
// three rows force the digit into that 3x3 lattice, so it is eliminated
// from the remainder of those rows. The transposed form works on rows.
// Line occupancy comes from the link table's per-line candidate groups.
type Swordfish struct{}

func NewSwordfish() *Swordfish { return &Swordfish{} }

func (*Swordfish) Name() string { return "swordfish" }

func (s *Swordfish) Apply(b *board.Board, t *links.Table) error {
	size := b.Size()
	for digit := 1; digit <= size; digit++ {
		if err := s.applyToColumns(b, t, digit); err != nil {
			return err
		}
		if err := s.applyToRows(b, t, digit); err != nil {
			return err
		}
	}
	return nil
}

func (s *Swordfish) applyToColumns(b *board.Board, t *links.Table, digit int) error {
	size := b.Size()
	var cols []int
	for col := 1; col <= size; col++ {
		n := len(t.ColumnCells(digit, col))
		if n >= 2 && n <= 3 {
			cols = append(cols, col)
		}
	}
	for i := 0; i < len(cols)-2; i++ {
		for j := i + 1; j < len(cols)-1; j++ {
			for k := j + 1; k < len(cols); k++ {
				chosen := []int{cols[i], cols[j], cols[k]}
				rows := map[int]bool{}
				for _, col := range chosen {
					for _, p := range t.ColumnCells(digit, col) {
						rows[p.Row] = true
					}
				}
				if len(rows) != 3 {
					continue
				}
				keep := map[int]bool{chosen[0]: true, chosen[1]: true, chosen[2]: true}
				for row := range rows {
					if err := eliminateInRow(b, digit, row, keep, s.Name()); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func (s *Swordfish) applyToRows(b *board.Board, t *links.Table, digit int) error {
	size := b.Size()
	var rowsWith []int
	for row := 1; row <= size; row++ {
		n := len(t.RowCells(digit, row))
		if n >= 2 && n <= 3 {
			rowsWith = append(rowsWith, row)
		}
	}
	for i := 0; i < len(rowsWith)-2; i++ {
		for j := i + 1; j < len(rowsWith)-1; j++ {
			for k := j + 1; k < len(rowsWith); k++ {
				chosen := []int{rowsWith[i], rowsWith[j], rowsWith[k]}
				cols := map[int]bool{}
				for _, row := range chosen {
					for _, p := range t.RowCells(digit, row) {
						cols[p.Col] = true
					}
				}
				if len(cols) != 3 {
					continue
				}
				keep := map[int]bool{chosen[0]: true, chosen[1]: true, chosen[2]: true}
				for col := range cols {
					if err := eliminateInColumn(b, digit, col, keep, s.Name()); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
