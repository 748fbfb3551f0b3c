package strategy

import (
	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/links"
)

// IndirectInfluencers inspects each line (row or column segment) of a
// quadrant. When the union of candidates over the line's vacant cells is
// exactly as large as the number of those cells, the digits of the union
// are pinned to the quadrant line and become influencers for the rest of
// the full row or column outside the quadrant.
type IndirectInfluencers struct{}

func NewIndirectInfluencers() *IndirectInfluencers { return &IndirectInfluencers{} }

func (*IndirectInfluencers) Name() string { return "indirect-influencers" }

func (s *IndirectInfluencers) Apply(b *board.Board, _ *links.Table) error {
	dim := b.Dim()
	for d1 := 1; d1 <= dim; d1++ {
		for d2 := 1; d2 <= dim; d2++ {
			for line := 1; line <= dim; line++ {
				if err := s.analyzeRow(b, d1, d2, line); err != nil {
					return err
				}
				if err := s.analyzeColumn(b, d1, d2, line); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *IndirectInfluencers) analyzeRow(b *board.Board, d1, d2, r int) error {
	top, left := b.QuadrantOrigin(d1, d2)
	row := top + r - 1
	var union board.DigitSet
	vacant := 0
	for c := 0; c < b.Dim(); c++ {
		col := left + c
		if b.GetCell(row, col).Occupied {
			continue
		}
		vacant++
		union = union.Union(b.Candidates(row, col))
	}
	if vacant == 0 || union.Count() != vacant {
		return nil
	}
	for _, digit := range union.Digits(b.Size()) {
		for col := 1; col <= b.Size(); col++ {
			if col >= left && col < left+b.Dim() {
				continue
			}
			if err := b.AddInfluencer(row, col, digit, s.Name()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *IndirectInfluencers) analyzeColumn(b *board.Board, d1, d2, c int) error {
	top, left := b.QuadrantOrigin(d1, d2)
	col := left + c - 1
	var union board.DigitSet
	vacant := 0
	for r := 0; r < b.Dim(); r++ {
		row := top + r
		if b.GetCell(row, col).Occupied {
			continue
		}
		vacant++
		union = union.Union(b.Candidates(row, col))
	}
	if vacant == 0 || union.Count() != vacant {
		return nil
	}
	for _, digit := range union.Digits(b.Size()) {
		for row := 1; row <= b.Size(); row++ {
			if row >= top && row < top+b.Dim() {
				continue
			}
			if err := b.AddInfluencer(row, col, digit, s.Name()); err != nil {
				return err
			}
		}
	}
	return nil
}
