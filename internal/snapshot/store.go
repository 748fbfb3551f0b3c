// Package snapshot keeps named in-memory copies of board state so a
// solving session can be rolled back to an earlier point.
package snapshot

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
)

// ErrNotFound is returned when restoring a name that was never backed up.
var ErrNotFound = errors.New("snapshot: not found")

// Store maps names to deep copies of boards. Saving under an existing
// name overwrites the previous snapshot. The zero value is not usable;
// call NewStore.
type Store struct {
	boards map[string]*board.Board
}

func NewStore() *Store {
	return &Store{boards: make(map[string]*board.Board)}
}

// Backup stores a deep copy of b under name. Later changes to b do not
// affect the snapshot.
func (s *Store) Backup(name string, b *board.Board) {
	s.boards[name] = b.Clone()
}

// Restore returns a fresh copy of the snapshot under name. The stored
// snapshot stays intact, so the same name can be restored repeatedly.
func (s *Store) Restore(name string) (*board.Board, error) {
	b, ok := s.boards[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return b.Clone(), nil
}

// Delete removes the snapshot under name, if any.
func (s *Store) Delete(name string) {
	delete(s.boards, name)
}

// Names lists the stored snapshot names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.boards))
	for name := range s.boards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Store) Len() int { return len(s.boards) }
