package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadrantMapping(t *testing.T) {
	b := MustNew(3)

	cases := []struct {
		row, col int
		d1, d2   int
	}{
		{1, 1, 1, 1},
		{3, 3, 1, 1},
		{4, 1, 2, 1},
		{5, 5, 2, 2},
		{9, 9, 3, 3},
		{1, 9, 1, 3},
	}
	for _, tc := range cases {
		d1, d2 := b.QuadrantOf(tc.row, tc.col)
		assert.Equal(t, tc.d1, d1, "(%d,%d)", tc.row, tc.col)
		assert.Equal(t, tc.d2, d2, "(%d,%d)", tc.row, tc.col)
	}

	r, c := b.QuadrantOrigin(2, 3)
	assert.Equal(t, 4, r)
	assert.Equal(t, 7, c)
}

func TestPeersAreDistinctAndComplete(t *testing.T) {
	b := MustNew(3)
	peers := b.Peers(5, 5)
	assert.Len(t, peers, 20) // 8 row + 8 column + 4 quadrant

	seen := map[Coord]bool{}
	for _, p := range peers {
		assert.False(t, seen[p], "duplicate peer %v", p)
		seen[p] = true
		assert.NotEqual(t, Coord{5, 5}, p)
		inRegion := p.Row == 5 || p.Col == 5 || SameQuadrant(p, Coord{5, 5}, b.Dim())
		assert.True(t, inRegion, "peer %v shares no region", p)
	}
}

func TestRegionCoords(t *testing.T) {
	b := MustNew(2)
	assert.Len(t, b.RowCoords(1), 4)
	assert.Len(t, b.ColumnCoords(4), 4)
	quad := b.QuadrantCoords(2, 2)
	require.Len(t, quad, 4)
	assert.Equal(t, Coord{3, 3}, quad[0])
	assert.Equal(t, Coord{4, 4}, quad[3])
}

func TestVacantHelpersExcludeSelfAndOccupied(t *testing.T) {
	b := MustNew(2)
	require.NoError(t, b.Occupy(1, 2, 1))

	row := b.VacantInRow(1, 1)
	assert.Len(t, row, 2) // (1,3) and (1,4); (1,2) occupied, (1,1) is self
	for _, p := range row {
		assert.NotEqual(t, Coord{1, 1}, p)
		assert.NotEqual(t, Coord{1, 2}, p)
	}

	assert.Len(t, b.VacantInColumn(1, 1), 3)
	assert.Len(t, b.VacantInQuadrant(1, 1), 2) // (2,1), (2,2); (1,2) occupied
}
