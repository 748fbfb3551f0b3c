package strategy

import "github.com/ms1963/SudokuSolverAndGenerator/internal/board"

// Cheating answers from a precomputed brute-force solution instead of
// deducing. It must be registered after all genuine strategies so it is
// only consulted for cells deduction could not resolve, and steps it
// produces stay clearly tagged with its name.
type Cheating struct {
	noRegionOps
	solution *board.Board
}

// NewCheating wraps a full solution of the same initial puzzle.
func NewCheating(solution *board.Board) *Cheating {
	return &Cheating{solution: solution}
}

func (*Cheating) Name() string { return "cheating" }

func (s *Cheating) Compose(b *board.Board, row, col int) int {
	if s.solution == nil {
		return 0
	}
	return s.solution.Occupant(row, col)
}
