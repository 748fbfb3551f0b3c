package whatif

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/snapshot"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/solver"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/strategy"
)

// trialBoard is a solved 4x4 grid with four cells blanked so that (1,1)
// keeps two candidates: 1 (correct) and 2 (leads to a contradiction).
func trialBoard(t *testing.T) *board.Board {
	t.Helper()
	full := [][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	blanks := map[board.Coord]bool{
		{Row: 1, Col: 1}: true,
		{Row: 1, Col: 2}: true,
		{Row: 3, Col: 1}: true,
		{Row: 4, Col: 2}: true,
	}
	b := board.MustNew(2)
	for r, row := range full {
		for c, v := range row {
			if blanks[board.Coord{Row: r + 1, Col: c + 1}] {
				continue
			}
			require.NoError(t, b.Occupy(r+1, c+1, v))
		}
	}
	return b
}

func newExplorer() *Explorer {
	return &Explorer{
		Store: snapshot.NewStore(),
		NewEngine: func(b *board.Board) *solver.Engine {
			e := solver.NewEngine(b, nil)
			e.AttachOccupation(strategy.NewOneCandidateLeft())
			e.AttachOccupation(strategy.NewRemainingInfluencer())
			e.AttachOccupation(strategy.NewDeepCheck())
			return e
		},
		Oracle: solver.NewBruteForce(),
	}
}

func TestTryWrongDigitRollsBack(t *testing.T) {
	b := trialBoard(t)
	require.True(t, b.Candidates(1, 1).Has(2), "scenario expects 2 as a candidate")

	res, err := newExplorer().Try(context.Background(), b, 1, 1, 2)
	require.NoError(t, err)
	assert.True(t, res.RolledBack)
	assert.Equal(t, solver.Contradicted, res.Outcome)

	// The returned board is the pre-trial state.
	assert.Equal(t, 0, res.Board.Occupant(1, 1))
	assert.Equal(t, b.OccupiedCount(), res.Board.OccupiedCount())
}

func TestTryCorrectDigitSolves(t *testing.T) {
	b := trialBoard(t)

	res, err := newExplorer().Try(context.Background(), b, 1, 1, 1)
	require.NoError(t, err)
	assert.False(t, res.RolledBack)
	assert.Equal(t, solver.Solved, res.Outcome)
	assert.True(t, res.Board.IsComplete())
	assert.Equal(t, 1, res.Board.Occupant(1, 1))

	// The input board is untouched either way.
	assert.Equal(t, 0, b.Occupant(1, 1))
}

func TestTryRejectsInvalidTrials(t *testing.T) {
	b := trialBoard(t)

	_, err := newExplorer().Try(context.Background(), b, 2, 2, 4)
	assert.ErrorIs(t, err, ErrInvalidTrial, "occupied cell")

	_, err = newExplorer().Try(context.Background(), b, 1, 1, 3)
	assert.ErrorIs(t, err, ErrInvalidTrial, "non-candidate digit")
}
