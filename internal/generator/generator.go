// Package generator creates puzzles with a unique solution by filling a
// random complete grid and carving digits back out.
package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/ports"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/puzzle"
)

// failedRemovalBudget bounds how many carve attempts may break
// uniqueness in a row before carving stops. A small budget keeps
// generation fast at the cost of a few extra givens.
const failedRemovalBudget = 4

// Carver removes digits from a full solution while a uniqueness oracle
// confirms the puzzle still has exactly one solution.
type Carver struct {
	Oracle ports.Exhaustive
}

// NewCarver wires a generator around the given uniqueness oracle.
func NewCarver(oracle ports.Exhaustive) *Carver {
	return &Carver{Oracle: oracle}
}

// Generate produces a puzzle of the given dimension. minimumOccupancy is
// the floor on remaining givens; carving stops when reached. The same
// seed and parameters yield the same puzzle.
func (g *Carver) Generate(ctx context.Context, dim int, seed int64, minimumOccupancy int) (*puzzle.Puzzle, ports.Stats, error) {
	start := time.Now()
	full, err := board.New(dim)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	size := full.Size()
	rng := rand.New(rand.NewSource(seed))

	sol := make([]int, size*size)
	if !fillRandom(ctx, rng, dim, sol) {
		return nil, ports.Stats{Duration: time.Since(start)}, ctx.Err()
	}

	givens := make([]int, len(sol))
	copy(givens, sol)
	occupancy := len(givens)

	positions := rng.Perm(size * size)
	nodes := 0
	failed := 0
	for _, pos := range positions {
		if ctx.Err() != nil {
			break
		}
		if occupancy <= minimumOccupancy || failed >= failedRemovalBudget {
			break
		}
		old := givens[pos]
		givens[pos] = 0
		carved, berr := boardOf(dim, givens)
		if berr != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, berr
		}
		unique, st, uerr := g.Oracle.Unique(ctx, carved)
		nodes += st.Nodes
		if uerr != nil || !unique {
			givens[pos] = old
			failed++
			continue
		}
		occupancy--
	}

	p := &puzzle.Puzzle{
		ID:        uuid.NewString(),
		Seed:      seed,
		Dim:       dim,
		Givens:    givens,
		Occupancy: occupancy,
		CreatedAt: time.Now().UTC(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// boardOf installs a row-major givens slice on a fresh board, validating
// region uniqueness on the way in.
func boardOf(dim int, givens []int) (*board.Board, error) {
	b, err := board.New(dim)
	if err != nil {
		return nil, err
	}
	size := b.Size()
	for row := 1; row <= size; row++ {
		for col := 1; col <= size; col++ {
			if v := givens[(row-1)*size+col-1]; v != 0 {
				if err := b.Occupy(row, col, v); err != nil {
					return nil, err
				}
			}
		}
	}
	return b, nil
}

// fillRandom completes an empty grid by backtracking with the digit
// order shuffled per cell, yielding a uniformly scrambled solution.
func fillRandom(ctx context.Context, rng *rand.Rand, dim int, grid []int) bool {
	size := dim * dim
	at := func(r, c int) int { return grid[r*size+c] }
	set := func(r, c, v int) { grid[r*size+c] = v }
	allowed := func(r, c, v int) bool {
		for i := 0; i < size; i++ {
			if at(r, i) == v || at(i, c) == v {
				return false
			}
		}
		br, bc := (r/dim)*dim, (c/dim)*dim
		for dr := 0; dr < dim; dr++ {
			for dc := 0; dc < dim; dc++ {
				if at(br+dr, bc+dc) == v {
					return false
				}
			}
		}
		return true
	}

	digits := make([]int, size)
	for i := range digits {
		digits[i] = i + 1
	}
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == size {
			return true
		}
		nr, nc := r, c+1
		if nc == size {
			nr, nc = r+1, 0
		}
		rng.Shuffle(size, func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })
		for _, v := range digits {
			if allowed(r, c, v) {
				set(r, c, v)
				if dfs(nr, nc) {
					return true
				}
				set(r, c, 0)
			}
		}
		return false
	}
	return dfs(0, 0)
}
