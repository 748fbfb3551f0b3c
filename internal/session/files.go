package session

import (
	"os"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/format"
)

func readCSVFile(dim int, path string) (*board.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return format.ReadCSV(dim, f)
}

// SaveCSV writes the current board to path in CSV form.
func (s *Session) SaveCSV(path string) error {
	if s.board == nil {
		return ErrNoBoard
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return format.WriteCSV(s.board, f)
}
