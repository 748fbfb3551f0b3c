package strategy

import (
	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/links"
)

// PointingLines covers pointing pairs and triples: when all cells of a
// quadrant that carry a digit as candidate lie on a single row or column,
// the digit is confined to that quadrant and can be eliminated from the
// rest of the row or column.
type PointingLines struct{}

func NewPointingLines() *PointingLines { return &PointingLines{} }

func (*PointingLines) Name() string { return "pointing-lines" }

func (s *PointingLines) Apply(b *board.Board, _ *links.Table) error {
	dim := b.Dim()
	for digit := 1; digit <= b.Size(); digit++ {
		for d1 := 1; d1 <= dim; d1++ {
			for d2 := 1; d2 <= dim; d2++ {
				if err := s.handleQuadrant(b, digit, d1, d2); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *PointingLines) handleQuadrant(b *board.Board, digit, d1, d2 int) error {
	var cells []board.Coord
	for _, p := range b.QuadrantCoords(d1, d2) {
		if b.Candidates(p.Row, p.Col).Has(digit) {
			cells = append(cells, p)
		}
	}
	if len(cells) < 2 || len(cells) > b.Dim() {
		return nil
	}
	sameRow, sameCol := true, true
	for _, p := range cells[1:] {
		sameRow = sameRow && p.Row == cells[0].Row
		sameCol = sameCol && p.Col == cells[0].Col
	}
	top, left := b.QuadrantOrigin(d1, d2)
	switch {
	case sameRow:
		row := cells[0].Row
		for col := 1; col <= b.Size(); col++ {
			if col >= left && col < left+b.Dim() {
				continue
			}
			if err := b.AddInfluencer(row, col, digit, s.Name()); err != nil {
				return err
			}
		}
	case sameCol:
		col := cells[0].Col
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
