package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/generator"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/ports"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/render"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/solver"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/storage"
)

var (
	genSeed    int64
	genMinOcc  int
	genName    string
	genNoSave  bool
	genVerbose bool

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with a unique solution",
		RunE:  runGenerate,
	}
)

func init() {
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed, 0 means time-based")
	generateCmd.Flags().IntVar(&genMinOcc, "min-occupancy", 0, "floor of remaining givens, 0 takes the configured value")
	generateCmd.Flags().StringVar(&genName, "name", "", "optional puzzle name")
	generateCmd.Flags().BoolVar(&genNoSave, "no-save", false, "print the puzzle without storing it")
	generateCmd.Flags().BoolVar(&genVerbose, "verbose", false, "print search statistics")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	minOcc := genMinOcc
	if minOcc == 0 {
		minOcc = cfg.MinimumOccupancy
	}

	var oracle ports.Exhaustive
	switch cfg.Engine {
	case "dlx":
		oracle = solver.NewDLX()
	default:
		oracle = solver.NewBruteForce()
	}

	p, stats, err := generator.NewCarver(oracle).Generate(cmd.Context(), cfg.Dim, seed, minOcc)
	if err != nil {
		return err
	}
	p.Name = genName

	b, err := board.New(p.Dim)
	if err != nil {
		return err
	}
	size := b.Size()
	for i, v := range p.Givens {
		if v == 0 {
			continue
		}
		if err := b.Occupy(i/size+1, i%size+1, v); err != nil {
			return err
		}
	}
	fmt.Print(render.Grid(b))
	fmt.Printf("id=%s seed=%d occupancy=%d\n", p.ID, p.Seed, p.Occupancy)
	if genVerbose {
		logger.Info("generation finished", "nodes", stats.Nodes, "duration", stats.Duration)
	}

	if genNoSave {
		return nil
	}
	return storage.NewFS(cfg.DataDir).Save(cmd.Context(), p)
}
