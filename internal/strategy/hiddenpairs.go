package strategy

import (
	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/links"
)

// HiddenPairs finds two digits that, within one region, are candidates of
// exactly the same two cells and of no other cell. Those two cells must
// hold the pair, so all their other candidates are eliminated.
type HiddenPairs struct{}

func NewHiddenPairs() *HiddenPairs { return &HiddenPairs{} }

func (*HiddenPairs) Name() string { return "hidden-pairs" }

func (s *HiddenPairs) Apply(b *board.Board, _ *links.Table) error {
	size := b.Size()
	for row := 1; row <= size; row++ {
		if err := s.handleRegion(b, b.RowCoords(row)); err != nil {
			return err
		}
	}
	for col := 1; col <= size; col++ {
		if err := s.handleRegion(b, b.ColumnCoords(col)); err != nil {
			return err
		}
	}
	for d1 := 1; d1 <= b.Dim(); d1++ {
		for d2 := 1; d2 <= b.Dim(); d2++ {
			if err := s.handleRegion(b, b.QuadrantCoords(d1, d2)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *HiddenPairs) handleRegion(b *board.Board, cells []board.Coord) error {
	size := b.Size()
	// positions[d] lists the region cells carrying d as candidate.
	positions := make([][]board.Coord, size+1)
	for _, p := range cells {
		cands := b.Candidates(p.Row, p.Col)
		for d := 1; d <= size; d++ {
			if cands.Has(d) {
				positions[d] = append(positions[d], p)
			}
		}
	}
	for n1 := 1; n1 < size; n1++ {
		if len(positions[n1]) != 2 {
			continue
		}
		for n2 := n1 + 1; n2 <= size; n2++ {
			if len(positions[n2]) != 2 {
				continue
			}
			if positions[n1][0] != positions[n2][0] || positions[n1][1] != positions[n2][1] {
				continue
			}
			pair := board.DigitSet(0)
			pair, _ = pair.Add(n1)
			pair, _ = pair.Add(n2)
			for _, p := range positions[n1] {
				for _, other := range b.Candidates(p.Row, p.Col).Digits(size) {
					if pair.Has(other) {
						continue
					}
					if err := b.AddInfluencer(p.Row, p.Col, other, s.Name()); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
