// Command sudoku solves, generates, and interactively explores Sudoku
// puzzles of quadrant dimension 2 to 5.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/config"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/render"
)

// Exit codes of the solve command.
const (
	exitSolved        = 0
	exitStalled       = 2
	exitContradiction = 3
)

var (
	cfgPath string
	dimFlag int

	// exitCode is set by commands that report their result through the
	// process exit status; main applies it after all defers have run.
	exitCode = exitSolved

	cfg    config.Config
	logger *slog.Logger

	rootCmd = &cobra.Command{
		Use:           "sudoku",
		Short:         "Solve, generate and explore Sudoku puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("dim") {
				cfg.Dim = dimFlag
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger = newLogger(cfg.LogLevel)
			return nil
		},
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "sudoku.yaml", "path to the YAML configuration")
	rootCmd.PersistentFlags().IntVar(&dimFlag, "dim", 3, "quadrant dimension (board edge is dim*dim)")
	rootCmd.AddCommand(solveCmd, generateCmd, listCmd, shellCmd)
}

func printBoard(b *board.Board) {
	fmt.Print(render.Grid(b))
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
