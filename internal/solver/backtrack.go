package solver

import (
	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
)

// BruteForce is a straightforward recursive backtracking engine over the
// plain occupancy grid. Scan order (first vacancy, digits ascending) is
// fixed, which makes the produced solution deterministic. Recursion depth
// is bounded by the number of vacancies, at most DIM*DIM.
//
// MaxNodes, when positive, bounds the number of visited assignments;
// exceeding it surfaces as ErrAborted.
type BruteForce struct {
	MaxNodes int
}

func NewBruteForce() *BruteForce { return &BruteForce{} }

// grid is the value-only projection of a board, 0 meaning vacant.
type grid struct {
	dim   int
	size  int
	cells []int
}

func gridOf(b *board.Board) *grid {
	g := &grid{dim: b.Dim(), size: b.Size(), cells: make([]int, b.Size()*b.Size())}
	for row := 1; row <= g.size; row++ {
		for col := 1; col <= g.size; col++ {
			g.cells[(row-1)*g.size+col-1] = b.Occupant(row, col)
		}
	}
	return g
}

func (g *grid) at(r, c int) int { return g.cells[r*g.size+c] }
func (g *grid) set(r, c, v int) { g.cells[r*g.size+c] = v }

func (g *grid) isValid(r, c, v int) bool {
	for i := 0; i < g.size; i++ {
		if g.at(r, i) == v || g.at(i, c) == v {
			return false
		}
	}
	br, bc := (r/g.dim)*g.dim, (c/g.dim)*g.dim
	for dr := 0; dr < g.dim; dr++ {
		for dc := 0; dc < g.dim; dc++ {
			if g.at(br+dr, bc+dc) == v {
				return false
			}
		}
	}
	return true
}

func (g *grid) findEmpty() (int, int, bool) {
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.at(r, c) == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// toBoard installs the fully assigned grid on a fresh board via the raw
// cell accessors; the search already guarantees region uniqueness.
func (g *grid) toBoard() *board.Board {
	out := board.MustNew(g.dim)
	for row := 1; row <= g.size; row++ {
		for col := 1; col <= g.size; col++ {
			if v := g.at(row-1, col-1); v != 0 {
				out.SetCell(row, col, board.Cell{Occupied: true, Value: v})
			}
		}
	}
	return out
}
