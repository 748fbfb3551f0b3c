package strategy

import "github.com/ms1963/SudokuSolverAndGenerator/internal/board"

// OneCandidateLeft fires when a cell's influencers already cover all but
// one digit; the missing digit is forced. The check is cell-local, so the
// strategy overrides the per-region composition.
type OneCandidateLeft struct {
	noRegionOps
}

func NewOneCandidateLeft() *OneCandidateLeft { return &OneCandidateLeft{} }

func (*OneCandidateLeft) Name() string { return "one-candidate-left" }

func (*OneCandidateLeft) Compose(b *board.Board, row, col int) int {
	if b.Influencers(row, col).Count() != b.Size()-1 {
		return 0
	}
	return b.Candidates(row, col).Single()
}
