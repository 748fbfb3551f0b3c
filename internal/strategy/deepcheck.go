package strategy

import "github.com/ms1963/SudokuSolverAndGenerator/internal/board"

// DeepCheck scans a region for a candidate of (row,col) that has no other
// legal cell left: if the digit is an influencer of every other vacant
// cell of the region, (row,col) is its only remaining home.
type DeepCheck struct{}

func NewDeepCheck() *DeepCheck { return &DeepCheck{} }

func (*DeepCheck) Name() string { return "deep-check" }

func (s *DeepCheck) ApplyToQuadrant(b *board.Board, row, col int) int {
	return s.decide(b, row, col, b.VacantInQuadrant(row, col))
}

func (s *DeepCheck) ApplyToRow(b *board.Board, row, col int) int {
	return s.decide(b, row, col, b.VacantInRow(row, col))
}

func (s *DeepCheck) ApplyToColumn(b *board.Board, row, col int) int {
	return s.decide(b, row, col, b.VacantInColumn(row, col))
}

func (*DeepCheck) decide(b *board.Board, row, col int, vacancies []board.Coord) int {
	for _, digit := range b.Candidates(row, col).Digits(b.Size()) {
		blockedEverywhere := true
		for _, p := range vacancies {
			if !b.Influencers(p.Row, p.Col).Has(digit) {
				blockedEverywhere = false
				break
			}
		}
		if blockedEverywhere {
			return digit
		}
	}
	return 0
}
