package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/session"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/solver"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/storage"
)

var (
	solveBoard      string
	solveCSV        string
	solveID         string
	solveExhaustive bool
	solveCheat      bool
	solveTimeout    time.Duration

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Solve a puzzle given as digit string, CSV file, or stored ID",
		Long: `Solve runs the deduction strategies against a puzzle and prints the
result. Exit code 0 means solved, 2 means the strategies stalled, and 3
means the puzzle is contradictory.`,
		RunE: runSolve,
	}
)

func init() {
	solveCmd.Flags().StringVar(&solveBoard, "board", "", "puzzle as digit string, 0 for vacant, '/' between rows")
	solveCmd.Flags().StringVar(&solveCSV, "csv", "", "puzzle as semicolon-delimited CSV file")
	solveCmd.Flags().StringVar(&solveID, "id", "", "ID of a stored puzzle")
	solveCmd.Flags().BoolVar(&solveExhaustive, "exhaustive", false, "skip deduction and use the exhaustive engine")
	solveCmd.Flags().BoolVar(&solveCheat, "cheat", false, "fill undeducible cells from a brute-force solution")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 30*time.Second, "abort solving after this long")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg.Cheating = cfg.Cheating || solveCheat
	s := session.New(cfg, logger)
	if err := loadInto(s); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), solveTimeout)
	defer cancel()

	if solveExhaustive {
		solved, stats, err := s.Oracle().Solve(ctx, s.Board())
		if err != nil {
			if errors.Is(err, solver.ErrNoSolution) {
				fmt.Println("no solution")
				exitCode = exitContradiction
				return nil
			}
			return err
		}
		logger.Info("exhaustive solve finished", "nodes", stats.Nodes, "duration", stats.Duration)
		printBoard(solved)
		return nil
	}

	outcome, err := s.Solve(ctx)
	if err != nil && outcome != solver.Contradicted {
		return err
	}
	printBoard(s.Board())
	if m := s.Monitor(); m != nil {
		fmt.Print(m.Summary())
	}
	logger.Info("deduction finished", "outcome", outcome, "steps", len(s.Steps()))

	switch outcome {
	case solver.Solved:
		exitCode = exitSolved
	case solver.Contradicted:
		exitCode = exitContradiction
	default:
		exitCode = exitStalled
	}
	return nil
}

// loadInto fills the session board from whichever input flag was given.
func loadInto(s *session.Session) error {
	switch {
	case solveBoard != "":
		return s.LoadString(solveBoard)
	case solveCSV != "":
		return s.LoadCSV(solveCSV)
	case solveID != "":
		p, err := storage.NewFS(cfg.DataDir).Load(context.Background(), solveID)
		if err != nil {
			return err
		}
		return s.LoadPuzzle(p)
	default:
		return errors.New("one of --board, --csv, or --id is required")
	}
}
