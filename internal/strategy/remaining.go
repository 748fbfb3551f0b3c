package strategy

import "github.com/ms1963/SudokuSolverAndGenerator/internal/board"

// RemainingInfluencer looks at the other vacant cells of a region: a digit
// that is an influencer of every one of them cannot go anywhere else in
// the region, so it must occupy (row,col) - provided it is still a
// candidate there. Exactly one such digit is required; two would already
// be a contradiction, which is left for the board to surface.
type RemainingInfluencer struct{}

func NewRemainingInfluencer() *RemainingInfluencer { return &RemainingInfluencer{} }

func (*RemainingInfluencer) Name() string { return "remaining-influencer" }

func (s *RemainingInfluencer) ApplyToQuadrant(b *board.Board, row, col int) int {
	return s.decide(b, row, col, b.VacantInQuadrant(row, col))
}

func (s *RemainingInfluencer) ApplyToRow(b *board.Board, row, col int) int {
	return s.decide(b, row, col, b.VacantInRow(row, col))
}

func (s *RemainingInfluencer) ApplyToColumn(b *board.Board, row, col int) int {
	return s.decide(b, row, col, b.VacantInColumn(row, col))
}

func (*RemainingInfluencer) decide(b *board.Board, row, col int, vacancies []board.Coord) int {
	if len(vacancies) == 0 {
		return 0
	}
	common := board.Full(b.Size())
	for _, p := range vacancies {
		common = common.Intersect(b.Influencers(p.Row, p.Col))
	}
	return common.Intersect(b.Candidates(row, col)).Single()
}
