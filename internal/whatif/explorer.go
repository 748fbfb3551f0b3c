// Package whatif implements speculative placement: try a candidate on a
// vacant cell, continue deduction, and roll the board back automatically
// if the guess turns out to be wrong.
package whatif

import (
	"context"
	"errors"
	"fmt"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/ports"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/snapshot"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/solver"
)

// ErrInvalidTrial is returned when a trial digit is rejected up front:
// the cell is occupied or the digit is not among its candidates.
var ErrInvalidTrial = errors.New("whatif: invalid trial")

// trialSnapshot is the reserved name for the implicit backup taken
// before each trial.
const trialSnapshot = "whatif.trial"

// Result reports how a trial ended.
type Result struct {
	// Board is the state to continue with: the advanced board when the
	// trial held, or the pre-trial state when it was rolled back.
	Board *board.Board
	// Outcome is the engine verdict after the trial placement.
	Outcome solver.Outcome
	// RolledBack is true when the trial led to a contradiction (or an
	// oracle-confirmed dead end) and Board is the pre-trial state.
	RolledBack bool
}

// Explorer runs trials against a snapshot store. NewEngine builds a
// deduction engine for a given board, so each trial resumes with the
// session's strategy selection. Oracle, when set, double-checks stalled
// trials for solvability and rolls back dead ends.
type Explorer struct {
	Store     *snapshot.Store
	NewEngine func(*board.Board) *solver.Engine
	Oracle    ports.Exhaustive
}

// Try places digit on the vacant cell (row,col) and resumes deduction.
// The board passed in is never mutated; the trial runs on a copy.
func (e *Explorer) Try(ctx context.Context, b *board.Board, row, col, digit int) (Result, error) {
	if b.GetCell(row, col).Occupied {
		return Result{Board: b}, fmt.Errorf("cell (%d,%d) is occupied: %w", row, col, ErrInvalidTrial)
	}
	if !b.Candidates(row, col).Has(digit) {
		return Result{Board: b}, fmt.Errorf("%d is not a candidate of (%d,%d): %w", digit, row, col, ErrInvalidTrial)
	}

	e.Store.Backup(trialSnapshot, b)
	trial := b.Clone()

	if err := trial.Occupy(row, col, digit); err != nil {
		if errors.Is(err, board.ErrContradiction) {
			return e.rollBack(solver.Contradicted)
		}
		return Result{Board: b}, err
	}

	eng := e.NewEngine(trial)
	outcome, err := eng.Run(ctx)
	switch {
	case err != nil && errors.Is(err, board.ErrContradiction):
		return e.rollBack(solver.Contradicted)
	case err != nil:
		return Result{Board: b, Outcome: outcome}, err
	}

	if outcome == solver.Stalled && e.Oracle != nil {
		_, _, oerr := e.Oracle.Solve(ctx, trial)
		if errors.Is(oerr, solver.ErrNoSolution) {
			return e.rollBack(solver.Stalled)
		}
		if oerr != nil {
			return Result{Board: b, Outcome: outcome}, oerr
		}
	}
	return Result{Board: trial, Outcome: outcome}, nil
}

func (e *Explorer) rollBack(outcome solver.Outcome) (Result, error) {
	restored, err := e.Store.Restore(trialSnapshot)
	if err != nil {
		return Result{}, err
	}
	return Result{Board: restored, Outcome: outcome, RolledBack: true}, nil
}
