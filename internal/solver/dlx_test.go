package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
)

func TestDLXSolveMatchesBruteForce(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	in := sampleBoard(t)
	dlxOut, dlxStats, err := NewDLX().Solve(ctx, in)
	if err != nil {
		t.Fatalf("DLX Solve: %v", err)
	}
	checkSolved(t, in, dlxOut)

	btOut, _, err := NewBruteForce().Solve(ctx, sampleBoard(t))
	if err != nil {
		t.Fatalf("BruteForce Solve: %v", err)
	}
	// The sample has one solution, so both engines must agree.
	for row := 1; row <= 9; row++ {
		for col := 1; col <= 9; col++ {
			if dlxOut.Occupant(row, col) != btOut.Occupant(row, col) {
				t.Fatalf("engines disagree at (%d,%d): dlx=%d bt=%d",
					row, col, dlxOut.Occupant(row, col), btOut.Occupant(row, col))
			}
		}
	}
	t.Logf("dlx nodes=%d dur=%v", dlxStats.Nodes, dlxStats.Duration)
}

func TestDLXSolveSmallDim(t *testing.T) {
	b := board.MustNew(2)
	if err := b.Occupy(1, 1, 1); err != nil {
		t.Fatal(err)
	}
	out, _, err := NewDLX().Solve(context.Background(), b)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	checkSolved(t, b, out)
}

func TestDLXUnique(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	unique, _, err := NewDLX().Unique(ctx, sampleBoard(t))
	if err != nil {
		t.Fatalf("Unique: %v", err)
	}
	if !unique {
		t.Fatal("sample puzzle should be unique")
	}

	unique, _, err = NewDLX().Unique(ctx, board.MustNew(2))
	if err != nil {
		t.Fatalf("Unique on empty: %v", err)
	}
	if unique {
		t.Fatal("empty board must not be unique")
	}
}

func TestDLXNoSolution(t *testing.T) {
	g := board.MustNew(2)
	g.SetCell(1, 3, board.Cell{Occupied: true, Value: 2})
	g.SetCell(1, 4, board.Cell{Occupied: true, Value: 3})
	g.SetCell(3, 1, board.Cell{Occupied: true, Value: 4})
	g.SetCell(2, 2, board.Cell{Occupied: true, Value: 1})

	_, _, err := NewDLX().Solve(context.Background(), g)
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("want ErrNoSolution, got %v", err)
	}
}
