package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/render"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/session"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive solving shell",
	Long: `Shell starts an interactive session. Type "help" for the available
commands; "whatif" tries a speculative placement and rolls the board
back when it leads to a contradiction.`,
	RunE: runShell,
}

const shellHelp = `commands:
  new                      start an empty board
  board <digits>           load a digit string ('/' between rows, 0 vacant)
  read <file>              load a CSV file
  write <file>             save the board as CSV
  set <row> <col> <digit>  occupy a cell
  solve                    run the deduction strategies
  print                    show the board
  candidates               list candidates of vacant cells
  influencers              list influencers of vacant cells
  backup [name]            snapshot the board (default name "default")
  restore [name]           roll back to a snapshot
  snapshots                list snapshot names
  whatif <row> <col> <digit>  try a placement, roll back on contradiction
  summary                  show per-strategy elimination counts
  quit                     leave the shell`

func runShell(cmd *cobra.Command, args []string) error {
	s := session.New(cfg, logger)
	sc := bufio.NewScanner(os.Stdin)
	fmt.Printf("sudoku shell, dim=%d, type help\n", cfg.Dim)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			return sc.Err()
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		if err := dispatch(cmd, s, fields[0], fields[1:]); err != nil {
			fmt.Println("error:", err)
		}
	}
}

func dispatch(cmd *cobra.Command, s *session.Session, verb string, args []string) error {
	switch verb {
	case "help":
		fmt.Println(shellHelp)
	case "new":
		if err := s.NewBoard(cfg.Dim); err != nil {
			return err
		}
	case "board":
		if len(args) != 1 {
			return fmt.Errorf("usage: board <digits>")
		}
		if err := s.LoadString(args[0]); err != nil {
			return err
		}
		fmt.Print(render.Grid(s.Board()))
	case "read":
		if len(args) != 1 {
			return fmt.Errorf("usage: read <file>")
		}
		if err := s.LoadCSV(args[0]); err != nil {
			return err
		}
		fmt.Print(render.Grid(s.Board()))
	case "write":
		if len(args) != 1 {
			return fmt.Errorf("usage: write <file>")
		}
		return s.SaveCSV(args[0])
	case "set":
		row, col, digit, err := triple(args)
		if err != nil {
			return err
		}
		if err := s.Occupy(row, col, digit); err != nil {
			return err
		}
		fmt.Print(render.Grid(s.Board()))
	case "solve":
		outcome, err := s.Solve(cmd.Context())
		if err != nil {
			fmt.Println(outcome)
			return err
		}
		fmt.Print(render.Grid(s.Board()))
		fmt.Println(outcome)
	case "print":
		if s.Board() == nil {
			return session.ErrNoBoard
		}
		fmt.Print(render.Grid(s.Board()))
	case "candidates":
		if s.Board() == nil {
			return session.ErrNoBoard
		}
		fmt.Print(render.Candidates(s.Board()))
	case "influencers":
		if s.Board() == nil {
			return session.ErrNoBoard
		}
		fmt.Print(render.Influencers(s.Board()))
	case "backup":
		return s.Backup(nameOrDefault(args))
	case "restore":
		if err := s.Restore(nameOrDefault(args)); err != nil {
			return err
		}
		fmt.Print(render.Grid(s.Board()))
	case "snapshots":
		for _, name := range s.Snapshots() {
			fmt.Println(name)
		}
	case "whatif":
		row, col, digit, err := triple(args)
		if err != nil {
			return err
		}
		outcome, kept, err := s.WhatIf(cmd.Context(), row, col, digit)
		if err != nil {
			return err
		}
		if kept {
			fmt.Printf("trial kept (%s)\n", outcome)
		} else {
			fmt.Printf("trial rolled back (%s)\n", outcome)
		}
		fmt.Print(render.Grid(s.Board()))
	case "summary":
		if m := s.Monitor(); m != nil {
			fmt.Print(m.Summary())
		} else {
			fmt.Println("monitoring is off")
		}
	default:
		return fmt.Errorf("unknown command %q, type help", verb)
	}
	return nil
}

func triple(args []string) (int, int, int, error) {
	if len(args) != 3 {
		return 0, 0, 0, fmt.Errorf("want <row> <col> <digit>")
	}
	out := [3]int{}
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%q is not a number", a)
		}
		out[i] = v
	}
	return out[0], out[1], out[2], nil
}

func nameOrDefault(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "default"
}
