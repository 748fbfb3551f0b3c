package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/links"
)

func TestOneCandidateLeft(t *testing.T) {
	b := board.MustNew(2)
	require.NoError(t, b.Occupy(1, 2, 2))
	require.NoError(t, b.Occupy(1, 3, 3))
	require.NoError(t, b.Occupy(1, 4, 4))

	// (1,1) has influencers {2,3,4}; only 1 remains.
	got := Decide(NewOneCandidateLeft(), b, 1, 1)
	assert.Equal(t, 1, got)

	// A cell with two candidates left yields no decision.
	assert.Equal(t, 0, Decide(NewOneCandidateLeft(), b, 3, 3))
}

func TestRemainingInfluencer(t *testing.T) {
	b := board.MustNew(2)
	// Digit 1 influences every vacant cell of column 1 except (1,1).
	require.NoError(t, b.Occupy(2, 4, 1))
	require.NoError(t, b.Occupy(3, 3, 1))
	require.NoError(t, b.Occupy(4, 2, 1))

	got := Decide(NewRemainingInfluencer(), b, 1, 1)
	assert.Equal(t, 1, got)
}

func TestDeepCheck(t *testing.T) {
	b := board.MustNew(2)
	require.NoError(t, b.Occupy(2, 4, 1))
	require.NoError(t, b.Occupy(3, 3, 1))
	require.NoError(t, b.Occupy(4, 2, 1))

	// 1 is a candidate of (1,1) and blocked in every other vacant cell
	// of column 1.
	got := (&DeepCheck{}).ApplyToColumn(b, 1, 1)
	assert.Equal(t, 1, got)
}

func TestCheatingAnswersFromSolution(t *testing.T) {
	solution := board.MustNew(2)
	full := [][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	for r, row := range full {
		for c, v := range row {
			require.NoError(t, solution.Occupy(r+1, c+1, v))
		}
	}

	b := board.MustNew(2)
	s := NewCheating(solution)
	assert.Equal(t, 1, Decide(s, b, 1, 1))
	assert.Equal(t, 4, Decide(s, b, 2, 2))

	assert.Equal(t, 0, Decide(NewCheating(nil), b, 1, 1))
}

func TestPointingLinesEliminatesAlongRow(t *testing.T) {
	b := board.MustNew(2)
	// Confine digit 1 in quadrant (1,1) to its first row.
	require.NoError(t, b.AddInfluencer(2, 1, 1, "setup"))
	require.NoError(t, b.AddInfluencer(2, 2, 1, "setup"))

	require.NoError(t, NewPointingLines().Apply(b, nil))

	assert.True(t, b.Influencers(1, 3).Has(1))
	assert.True(t, b.Influencers(1, 4).Has(1))
	// Cells inside the quadrant keep the candidate.
	assert.True(t, b.Candidates(1, 1).Has(1))
	assert.True(t, b.Candidates(1, 2).Has(1))
}

func TestHiddenPairsStripOtherCandidates(t *testing.T) {
	b := board.MustNew(2)
	// Digits 1 and 2 can only sit on (1,1) and (1,2) within row 1.
	for _, col := range []int{3, 4} {
		require.NoError(t, b.AddInfluencer(1, col, 1, "setup"))
		require.NoError(t, b.AddInfluencer(1, col, 2, "setup"))
	}

	require.NoError(t, NewHiddenPairs().Apply(b, nil))

	assert.Equal(t, []int{1, 2}, b.Candidates(1, 1).Digits(4))
	assert.Equal(t, []int{1, 2}, b.Candidates(1, 2).Digits(4))
}

func TestXWingEliminatesOnColumns(t *testing.T) {
	b := board.MustNew(3)
	// Digit 1 is restricted to columns 3 and 7 in rows 2 and 8.
	for _, row := range []int{2, 8} {
		for col := 1; col <= 9; col++ {
			if col == 3 || col == 7 {
				continue
			}
			require.NoError(t, b.AddInfluencer(row, col, 1, "setup"))
		}
	}

	tab := links.Compute(b)
	require.NoError(t, NewXWing().Apply(b, tab))

	// The rectangle rows keep their candidates, everything else in the
	// two columns loses digit 1.
	assert.True(t, b.Candidates(2, 3).Has(1))
	assert.True(t, b.Candidates(8, 7).Has(1))
	for row := 1; row <= 9; row++ {
		if row == 2 || row == 8 {
			continue
		}
		assert.False(t, b.Candidates(row, 3).Has(1), "row %d col 3", row)
		assert.False(t, b.Candidates(row, 7).Has(1), "row %d col 7", row)
	}
}

func TestSwordfishEliminatesAcrossThreeLines(t *testing.T) {
	b := board.MustNew(3)
	// Digit 1 is restricted to columns 2, 5, 8 in rows 1, 4, 7.
	for _, row := range []int{1, 4, 7} {
		for col := 1; col <= 9; col++ {
			if col == 2 || col == 5 || col == 8 {
				continue
			}
			require.NoError(t, b.AddInfluencer(row, col, 1, "setup"))
		}
	}

	tab := links.Compute(b)
	require.NoError(t, NewSwordfish().Apply(b, tab))

	for row := 1; row <= 9; row++ {
		if row == 1 || row == 4 || row == 7 {
			continue
		}
		for _, col := range []int{2, 5, 8} {
			assert.False(t, b.Candidates(row, col).Has(1), "row %d col %d", row, col)
		}
	}
	assert.True(t, b.Candidates(1, 2).Has(1))
}

func TestIndirectInfluencersPinQuadrantLine(t *testing.T) {
	b := board.MustNew(2)
	// (1,1) and (1,2) both have candidates exactly {1,2}.
	for _, col := range []int{1, 2} {
		require.NoError(t, b.AddInfluencer(1, col, 3, "setup"))
		require.NoError(t, b.AddInfluencer(1, col, 4, "setup"))
	}

	require.NoError(t, NewIndirectInfluencers().Apply(b, nil))

	// 1 and 2 are pinned to the quadrant's first row, so the rest of
	// row 1 loses both.
	for _, col := range []int{3, 4} {
		assert.True(t, b.Influencers(1, col).Has(1), "col %d", col)
		assert.True(t, b.Influencers(1, col).Has(2), "col %d", col)
	}
}

func TestSettledInfluencePassEliminatesNothingNew(t *testing.T) {
	b := board.MustNew(3)
	rows := [9]string{
		"530070000",
		"600195000",
		"098000060",
		"800060003",
		"400803001",
		"700020006",
		"060000280",
		"000419005",
		"000080079",
	}
	for r, row := range rows {
		for c, ch := range row {
			if ch == '0' {
				continue
			}
			require.NoError(t, b.Occupy(r+1, c+1, int(ch-'0')))
		}
	}

	passes := []Influence{
		NewIndirectInfluencers(),
		NewPointingLines(),
		NewHiddenPairs(),
		NewXWing(),
		NewSwordfish(),
	}
	pass := func() {
		for _, s := range passes {
			require.NoError(t, s.Apply(b, links.Compute(b)), s.Name())
		}
	}

	// Let the eliminations settle without any new occupations. The
	// elimination counter grows strictly per non-settled pass and is
	// bounded, so this terminates.
	prev := b.Eliminations()
	for {
		pass()
		if b.Eliminations() == prev {
			break
		}
		prev = b.Eliminations()
	}

	// With the board unchanged since the settled pass, re-running every
	// strategy must eliminate nothing further.
	pass()
	assert.Equal(t, prev, b.Eliminations())
}

func TestInfluenceReapplicationIsANoOp(t *testing.T) {
	b := board.MustNew(3)
	// Same rectangle as TestXWingEliminatesOnColumns: digit 1 confined
	// to columns 3 and 7 in rows 2 and 8.
	for _, row := range []int{2, 8} {
		for col := 1; col <= 9; col++ {
			if col == 3 || col == 7 {
				continue
			}
			require.NoError(t, b.AddInfluencer(row, col, 1, "setup"))
		}
	}

	require.NoError(t, NewXWing().Apply(b, links.Compute(b)))
	eliminated := b.Eliminations()
	require.Greater(t, eliminated, uint64(14), "first application must eliminate beyond the setup")

	require.NoError(t, NewXWing().Apply(b, links.Compute(b)))
	assert.Equal(t, eliminated, b.Eliminations())
}

func TestDecideComposesRegions(t *testing.T) {
	b := board.MustNew(2)
	require.NoError(t, b.Occupy(2, 4, 1))
	require.NoError(t, b.Occupy(3, 3, 1))
	require.NoError(t, b.Occupy(4, 2, 1))

	// RemainingInfluencer has no Composer; Decide walks quadrant, row,
	// column capabilities and short-circuits on the first hit.
	assert.Equal(t, 1, Decide(NewRemainingInfluencer(), b, 1, 1))
}
