// Package solver contains the deduction engine that drives the strategy
// framework over a board, plus the exhaustive engines (backtracking and
// DLX) used as oracle and by the generator.
package solver

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/links"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/strategy"
)

// Outcome classifies how a deduction run ended.
type Outcome int

const (
	// Solved means every cell is occupied.
	Solved Outcome = iota
	// Stalled means a full sweep produced no occupation and no
	// elimination; the board is left as-is for inspection.
	Stalled
	// Contradicted means an elimination emptied a vacant cell's
	// candidate set.
	Contradicted
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Stalled:
		return "stalled"
	case Contradicted:
		return "contradiction"
	default:
		return "unknown"
	}
}

// Step records one occupation and the strategy that decided it, keeping
// solving provenance inspectable.
type Step struct {
	Cell     board.Coord
	Digit    int
	Strategy string
}

// Engine runs registered strategies against one board until the board is
// complete or no strategy makes progress. It is single-threaded and owns
// the board for the duration of Run.
type Engine struct {
	board      *board.Board
	occupation []strategy.Occupation
	influence  []strategy.Influence
	logger     *slog.Logger
	steps      []Step
}

// NewEngine wires an engine around b. A nil logger disables logging.
func NewEngine(b *board.Board, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{board: b, logger: logger}
}

// AttachOccupation registers an occupation strategy. Strategies are
// consulted in registration order; a cheating strategy must therefore be
// attached last.
func (e *Engine) AttachOccupation(s strategy.Occupation) { e.occupation = append(e.occupation, s) }

// AttachInfluence registers an influence strategy.
func (e *Engine) AttachInfluence(s strategy.Influence) { e.influence = append(e.influence, s) }

// Occupation returns the registered occupation strategies.
func (e *Engine) Occupation() []strategy.Occupation { return e.occupation }

// Influence returns the registered influence strategies.
func (e *Engine) Influence() []strategy.Influence { return e.influence }

// Steps returns the occupations performed so far, in order.
func (e *Engine) Steps() []Step { return e.steps }

// Run iterates deduction until completion, stall, or contradiction. The
// board must conform to the region-uniqueness rules before solving; a
// malformed board is rejected up front.
func (e *Engine) Run(ctx context.Context) (Outcome, error) {
	if err := e.board.CheckConformance(); err != nil {
		return Stalled, err
	}
	for !e.board.IsComplete() {
		if err := ctx.Err(); err != nil {
			return Stalled, ErrAborted
		}
		before := e.board.Eliminations()

		table := links.Compute(e.board)
		for _, s := range e.influence {
			if err := s.Apply(e.board, table); err != nil {
				if errors.Is(err, board.ErrContradiction) {
					e.logger.Info("contradiction during influence pass", "strategy", s.Name(), "err", err)
					return Contradicted, err
				}
				return Stalled, err
			}
		}

		occupied, err := e.sweep(ctx)
		if err != nil {
			if errors.Is(err, board.ErrContradiction) {
				return Contradicted, err
			}
			return Stalled, err
		}
		if occupied == 0 && e.board.Eliminations() == before {
			e.logger.Info("no strategy made progress", "vacancies", len(e.board.Vacancies()))
			return Stalled, nil
		}
	}
	return Solved, nil
}

// sweep visits every vacant cell once and occupies those a strategy can
// decide. The vacancy list is taken up front; cells occupied as a side
// effect of earlier decisions in the same sweep are skipped.
func (e *Engine) sweep(ctx context.Context) (int, error) {
	occupied := 0
	for _, cell := range e.board.Vacancies() {
		if err := ctx.Err(); err != nil {
			return occupied, ErrAborted
		}
		if e.board.GetCell(cell.Row, cell.Col).Occupied {
			continue
		}
		for _, s := range e.occupation {
			digit := strategy.Decide(s, e.board, cell.Row, cell.Col)
			if digit == 0 {
				continue
			}
			err := e.board.Occupy(cell.Row, cell.Col, digit)
			if err != nil {
				if errors.Is(err, board.ErrContradiction) {
					return occupied, err
				}
				// A rejected placement is recoverable: the strategy was
				// wrong about this cell, try the remaining strategies.
				e.logger.Warn("strategy proposed invalid placement",
					"strategy", s.Name(), "row", cell.Row, "col", cell.Col, "digit", digit, "err", err)
				continue
			}
			e.steps = append(e.steps, Step{Cell: cell, Digit: digit, Strategy: s.Name()})
			e.logger.Debug("occupied", "row", cell.Row, "col", cell.Col, "digit", digit, "strategy", s.Name())
			occupied++
			break
		}
	}
	return occupied, nil
}
