// Package session is the application facade: it owns the current board,
// the snapshot store, and the configured strategy selection, and exposes
// the operations the CLI and shell are built from.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/config"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/format"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/monitor"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/ports"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/puzzle"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/snapshot"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/solver"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/strategy"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/whatif"
)

// ErrNoBoard is returned when an operation needs a loaded board and
// none has been created or read yet.
var ErrNoBoard = errors.New("session: no board loaded")

// Session carries the mutable state of one interactive solving run.
type Session struct {
	cfg     config.Config
	logger  *slog.Logger
	board   *board.Board
	store   *snapshot.Store
	oracle  ports.Exhaustive
	monitor *monitor.Monitor
	steps   []solver.Step
}

// New builds a session from configuration. The exhaustive engine is
// chosen by cfg.Engine and doubles as uniqueness oracle and cheat
// source.
func New(cfg config.Config, logger *slog.Logger) *Session {
	s := &Session{
		cfg:    cfg,
		logger: logger,
		store:  snapshot.NewStore(),
	}
	switch cfg.Engine {
	case "dlx":
		s.oracle = solver.NewDLX()
	default:
		s.oracle = solver.NewBruteForce()
	}
	if cfg.Monitoring {
		s.monitor = monitor.New()
	}
	return s
}

// Board returns the current board, or nil before the first load.
func (s *Session) Board() *board.Board { return s.board }

// Oracle returns the configured exhaustive engine.
func (s *Session) Oracle() ports.Exhaustive { return s.oracle }

// Monitor returns the elimination monitor, or nil when monitoring is
// off.
func (s *Session) Monitor() *monitor.Monitor { return s.monitor }

// Steps returns the occupations of the last Solve call.
func (s *Session) Steps() []solver.Step { return s.steps }

// NewBoard replaces the session board with an empty one.
func (s *Session) NewBoard(dim int) error {
	b, err := board.New(dim)
	if err != nil {
		return err
	}
	s.adopt(b)
	return nil
}

// LoadString replaces the session board with one parsed from the digit
// string form.
func (s *Session) LoadString(text string) error {
	b, err := format.ParseString(s.cfg.Dim, text)
	if err != nil {
		return err
	}
	s.adopt(b)
	return nil
}

// LoadCSV replaces the session board with one read from a CSV file.
func (s *Session) LoadCSV(path string) error {
	b, err := readCSVFile(s.cfg.Dim, path)
	if err != nil {
		return err
	}
	s.adopt(b)
	return nil
}

// LoadPuzzle replaces the session board with a stored puzzle's givens.
func (s *Session) LoadPuzzle(p *puzzle.Puzzle) error {
	b, err := board.New(p.Dim)
	if err != nil {
		return err
	}
	size := b.Size()
	if len(p.Givens) != size*size {
		return fmt.Errorf("puzzle %s: want %d cells, got %d", p.ID, size*size, len(p.Givens))
	}
	for i, v := range p.Givens {
		if v == 0 {
			continue
		}
		if err := b.Occupy(i/size+1, i%size+1, v); err != nil {
			return fmt.Errorf("puzzle %s: %w", p.ID, err)
		}
	}
	s.adopt(b)
	return nil
}

// adopt installs a board and wires the configured observers onto it.
func (s *Session) adopt(b *board.Board) {
	observers := []board.Observer{}
	if s.monitor != nil {
		observers = append(observers, s.monitor.Observer())
	}
	observers = append(observers, monitor.TraceObserver(s.logger))
	b.SetObserver(monitor.Chain(observers...))
	s.board = b
	s.steps = nil
}

// Occupy places a digit on the current board.
func (s *Session) Occupy(row, col, value int) error {
	if s.board == nil {
		return ErrNoBoard
	}
	return s.board.Occupy(row, col, value)
}

// Solve runs the deduction engine on the current board. When cheating
// is enabled and the puzzle has a solution, a last-resort strategy fills
// cells from that solution whenever regular deduction is stuck.
func (s *Session) Solve(ctx context.Context) (solver.Outcome, error) {
	if s.board == nil {
		return solver.Stalled, ErrNoBoard
	}
	eng, err := s.newEngine(ctx, s.board)
	if err != nil {
		return solver.Stalled, err
	}
	outcome, err := eng.Run(ctx)
	s.steps = eng.Steps()
	return outcome, err
}

// newEngine assembles an engine for b with the configured strategies.
func (s *Session) newEngine(ctx context.Context, b *board.Board) (*solver.Engine, error) {
	eng := solver.NewEngine(b, s.logger)
	eng.AttachOccupation(strategy.NewOneCandidateLeft())
	eng.AttachOccupation(strategy.NewRemainingInfluencer())
	eng.AttachOccupation(strategy.NewDeepCheck())

	st := s.cfg.Strategies
	if st.IndirectInfluencers {
		eng.AttachInfluence(strategy.NewIndirectInfluencers())
	}
	if st.PointingLines {
		eng.AttachInfluence(strategy.NewPointingLines())
	}
	if st.HiddenPairs {
		eng.AttachInfluence(strategy.NewHiddenPairs())
	}
	if st.XWing {
		eng.AttachInfluence(strategy.NewXWing())
	}
	if st.Swordfish {
		eng.AttachInfluence(strategy.NewSwordfish())
	}

	if s.cfg.Cheating {
		solution, _, err := s.oracle.Solve(ctx, b)
		if err != nil {
			if errors.Is(err, solver.ErrNoSolution) {
				return nil, err
			}
			return nil, fmt.Errorf("computing cheat solution: %w", err)
		}
		// Must come last so honest strategies get the first shot.
		eng.AttachOccupation(strategy.NewCheating(solution))
	}
	return eng, nil
}

// Backup snapshots the current board under name.
func (s *Session) Backup(name string) error {
	if s.board == nil {
		return ErrNoBoard
	}
	s.store.Backup(name, s.board)
	return nil
}

// Restore replaces the current board with the named snapshot.
func (s *Session) Restore(name string) error {
	b, err := s.store.Restore(name)
	if err != nil {
		return err
	}
	s.adopt(b)
	return nil
}

// Snapshots lists the stored snapshot names.
func (s *Session) Snapshots() []string { return s.store.Names() }

// WhatIf tries digit on the vacant cell (row,col): deduction resumes
// from the speculative placement, and the board is rolled back if it
// leads to a contradiction. Reports whether the trial was kept.
func (s *Session) WhatIf(ctx context.Context, row, col, digit int) (solver.Outcome, bool, error) {
	if s.board == nil {
		return solver.Stalled, false, ErrNoBoard
	}
	explorer := &whatif.Explorer{
		Store: s.store,
		NewEngine: func(b *board.Board) *solver.Engine {
			eng, err := s.newEngine(ctx, b)
			if err != nil {
				// Cheat-solution failures degrade to honest deduction.
				plain := solver.NewEngine(b, s.logger)
				plain.AttachOccupation(strategy.NewOneCandidateLeft())
				plain.AttachOccupation(strategy.NewRemainingInfluencer())
				plain.AttachOccupation(strategy.NewDeepCheck())
				return plain
			}
			return eng
		},
		Oracle: s.oracle,
	}
	res, err := explorer.Try(ctx, s.board, row, col, digit)
	if err != nil {
		return res.Outcome, false, err
	}
	s.adopt(res.Board)
	return res.Outcome, !res.RolledBack, nil
}
