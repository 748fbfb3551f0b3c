package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/ports"
)

// Solve returns the first complete assignment found, leaving b untouched.
// Running it twice on the same puzzle yields the same solution.
func (s *BruteForce) Solve(ctx context.Context, b *board.Board) (*board.Board, ports.Stats, error) {
	start := time.Now()
	g := gridOf(b)
	nodes := 0
	aborted := false

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || (s.MaxNodes > 0 && nodes > s.MaxNodes) {
			aborted = true
			return false
		}
		r, c, ok := g.findEmpty()
		if !ok {
			return true
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

	solved := dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if aborted {
		return nil, st, fmt.Errorf("after %d nodes: %w", nodes, ErrAborted)
	}
	if !solved {
		return nil, st, ErrNoSolution
	}
	return g.toBoard(), st, nil
}
