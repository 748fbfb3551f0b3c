package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/puzzle"
)

func testPuzzle(id string, dim int) *puzzle.Puzzle {
	size := dim * dim
	givens := make([]int, size*size)
	givens[0] = 1
	return &puzzle.Puzzle{
		ID:        id,
		Seed:      42,
		Dim:       dim,
		Givens:    givens,
		Occupancy: 1,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Name:      "fixture",
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	p := testPuzzle("abc-123", 3)
	require.NoError(t, s.Save(ctx, p))

	got, err := s.Load(ctx, "abc-123")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.Dim, got.Dim)
	assert.Equal(t, p.Givens, got.Givens)
	assert.Equal(t, p.Name, got.Name)
	assert.True(t, p.CreatedAt.Equal(got.CreatedAt))
}

func TestSaveRejectsMissingID(t *testing.T) {
	s := NewFS(t.TempDir())
	err := s.Save(context.Background(), &puzzle.Puzzle{Dim: 3})
	assert.Error(t, err)
}

func TestLoadUnknownID(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAcrossDimensions(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testPuzzle("small", 2)))
	require.NoError(t, s.Save(ctx, testPuzzle("standard", 3)))

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)

	byID := map[string]puzzle.Meta{}
	for _, m := range metas {
		byID[m.ID] = m
	}
	assert.Equal(t, 2, byID["small"].Dim)
	assert.Equal(t, 3, byID["standard"].Dim)
	assert.Equal(t, 1, byID["small"].Occupancy)
}

func TestListEmptyDir(t *testing.T) {
	s := NewFS(t.TempDir())
	metas, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, metas)
}
