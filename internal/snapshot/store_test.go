package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
)

func TestBackupAndRestoreRoundTrip(t *testing.T) {
	b := board.MustNew(2)
	require.NoError(t, b.Occupy(1, 1, 1))

	s := NewStore()
	s.Backup("before", b)

	// Mutate after the backup; the snapshot must not follow.
	require.NoError(t, b.Occupy(2, 3, 1))

	restored, err := s.Restore("before")
	require.NoError(t, err)
	assert.Equal(t, 1, restored.Occupant(1, 1))
	assert.Equal(t, 0, restored.Occupant(2, 3))
	assert.Equal(t, b.Dim(), restored.Dim())

	// Influencer bookkeeping travels with the snapshot.
	assert.True(t, restored.Influencers(1, 2).Has(1))
}

func TestRestoreReturnsIndependentCopies(t *testing.T) {
	b := board.MustNew(2)
	s := NewStore()
	s.Backup("x", b)

	first, err := s.Restore("x")
	require.NoError(t, err)
	require.NoError(t, first.Occupy(1, 1, 1))

	second, err := s.Restore("x")
	require.NoError(t, err)
	assert.Equal(t, 0, second.Occupant(1, 1), "snapshot must survive mutation of a restored copy")
}

func TestBackupOverwritesSameName(t *testing.T) {
	b := board.MustNew(2)
	s := NewStore()
	s.Backup("slot", b)

	require.NoError(t, b.Occupy(1, 1, 1))
	s.Backup("slot", b)

	restored, err := s.Restore("slot")
	require.NoError(t, err)
	assert.Equal(t, 1, restored.Occupant(1, 1))
	assert.Equal(t, 1, s.Len())
}

func TestRestoreUnknownName(t *testing.T) {
	s := NewStore()
	_, err := s.Restore("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNamesSortedAndDelete(t *testing.T) {
	b := board.MustNew(2)
	s := NewStore()
	s.Backup("zulu", b)
	s.Backup("alpha", b)
	s.Backup("mike", b)

	assert.Equal(t, []string{"alpha", "mike", "zulu"}, s.Names())

	s.Delete("mike")
	assert.Equal(t, []string{"alpha", "zulu"}, s.Names())
	assert.Equal(t, 2, s.Len())
}
