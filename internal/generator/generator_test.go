package generator

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/solver"
)

func TestGenerateSmallBoard(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	g := NewCarver(solver.NewBruteForce())
	p, stats, err := g.Generate(ctx, 2, 42, 6)
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.EqualValues(t, 42, p.Seed)
	assert.Equal(t, 2, p.Dim)
	require.Len(t, p.Givens, 16)
	assert.GreaterOrEqual(t, p.Occupancy, 6)

	// The givens load cleanly and the puzzle has exactly one solution.
	b, err := boardOf(2, p.Givens)
	require.NoError(t, err)
	assert.Equal(t, p.Occupancy, b.OccupiedCount())

	unique, _, err := solver.NewBruteForce().Unique(ctx, b)
	require.NoError(t, err)
	assert.True(t, unique, "generated puzzle must be unique")

	t.Logf("occupancy=%d nodes=%d dur=%v", p.Occupancy, stats.Nodes, stats.Duration)
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	g := NewCarver(solver.NewBruteForce())
	first, _, err := g.Generate(ctx, 2, 7, 6)
	require.NoError(t, err)
	second, _, err := g.Generate(ctx, 2, 7, 6)
	require.NoError(t, err)

	assert.Equal(t, first.Givens, second.Givens)
	assert.NotEqual(t, first.ID, second.ID, "every puzzle gets its own ID")
}

func TestGenerateRejectsBadDim(t *testing.T) {
	g := NewCarver(solver.NewBruteForce())
	_, _, err := g.Generate(context.Background(), 7, 1, 10)
	assert.ErrorIs(t, err, board.ErrOutOfRange)
}

func TestFillRandomProducesValidGrid(t *testing.T) {
	// fillRandom is the source of every generated solution; check the
	// region rules directly on its output.
	rngSeedCheck := func(seed int64) {
		b, err := boardOf(3, fullGrid(t, seed))
		require.NoError(t, err)
		assert.True(t, b.IsComplete())
		require.NoError(t, b.CheckConformance())
	}
	rngSeedCheck(1)
	rngSeedCheck(99)
}

func fullGrid(t *testing.T, seed int64) []int {
	t.Helper()
	grid := make([]int, 81)
	rng := rand.New(rand.NewSource(seed))
	if !fillRandom(context.Background(), rng, 3, grid) {
		t.Fatal("fillRandom failed on an empty grid")
	}
	return grid
}
