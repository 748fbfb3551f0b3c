package solver

import (
	"context"
	"time"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/ports"
)

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *BruteForce) Unique(ctx context.Context, b *board.Board) (bool, ports.Stats, error) {
	start := time.Now()
	g := gridOf(b)
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		r, c, ok := g.findEmpty()
		if !ok {
			count++
			return count >= 2
		}
		for v := 1; v <= g.size; v++ {
			nodes++
			if g.isValid(r, c, v) {
				g.set(r, c, v)
				if dfs() {
					return true
				}
				g.set(r, c, 0)
			}
		}
		return false
	}
	_ = dfs()

	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return false, st, ErrAborted
	}
	return count == 1, st, nil
}
