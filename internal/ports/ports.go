// Package ports declares the interfaces the solving core consumes and the
// thin adapters around it provide.
package ports

import (
	"context"
	"time"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/puzzle"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Exhaustive is a brute-force engine: it produces one full solution and
// can test uniqueness. Implementations must not mutate the input board.
type Exhaustive interface {
	Solve(ctx context.Context, b *board.Board) (*board.Board, Stats, error)
	Unique(ctx context.Context, b *board.Board) (bool, Stats, error)
}

// Generator creates new puzzles with a unique solution.
type Generator interface {
	Generate(ctx context.Context, dim int, seed int64, minimumOccupancy int) (*puzzle.Puzzle, Stats, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *puzzle.Puzzle) error
	Load(ctx context.Context, id string) (*puzzle.Puzzle, error)
	List(ctx context.Context) ([]puzzle.Meta, error)
}
