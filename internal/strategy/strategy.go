// Package strategy holds the pluggable deduction rules the solver loop
// drives. Two families exist:
//
// Occupation strategies decide a definite value for one cell. They expose
// per-region capabilities (quadrant, row, column); Decide composes them in
// the default order quadrant, row, column, short-circuiting on the first
// hit. A strategy whose reasoning is not per-region overrides the
// composition by implementing Composer.
//
// Influence strategies eliminate candidates. They scan the whole board and
// record influencers through board.AddInfluencer; the only value they
// produce is the side effect (plus a possible contradiction error).
//
// Strategies operate on the shared board passed per call and never keep
// their own copy.
package strategy

import (
	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/links"
)

// Occupation decides which digit must occupy a cell. A capability that
// does not apply returns 0.
type Occupation interface {
	Name() string
	ApplyToQuadrant(b *board.Board, row, col int) int
	ApplyToRow(b *board.Board, row, col int) int
	ApplyToColumn(b *board.Board, row, col int) int
}

// Composer replaces the default quadrant-row-column composition of an
// Occupation strategy.
type Composer interface {
	Compose(b *board.Board, row, col int) int
}

// Decide runs s against the vacant cell (row,col), honoring a custom
// composition when the strategy provides one. It returns the forced digit
// or 0 when the strategy has no decision.
func Decide(s Occupation, b *board.Board, row, col int) int {
	if c, ok := s.(Composer); ok {
		return c.Compose(b, row, col)
	}
	if v := s.ApplyToQuadrant(b, row, col); v != 0 {
		return v
	}
	if v := s.ApplyToRow(b, row, col); v != 0 {
		return v
	}
	return s.ApplyToColumn(b, row, col)
}

// Influence eliminates candidates across the whole board. The link table
// is rebuilt by the solver before each pass; strategies that do not need
// links ignore it. A contradiction discovered while eliminating is
// returned as a wrapped board.ErrContradiction.
type Influence interface {
	Name() string
	Apply(b *board.Board, t *links.Table) error
}

// noRegionOps is embedded by strategies that only implement a custom
// composition; the per-region capabilities are no-ops.
type noRegionOps struct{}

func (noRegionOps) ApplyToQuadrant(*board.Board, int, int) int { return 0 }
func (noRegionOps) ApplyToRow(*board.Board, int, int) int      { return 0 }
func (noRegionOps) ApplyToColumn(*board.Board, int, int) int   { return 0 }
