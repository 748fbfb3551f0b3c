// Package storage persists puzzles as pretty-printed JSON files, one
// puzzle per file, bucketed by dimension.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/puzzle"
)

// ErrNotFound is returned when no stored puzzle matches the requested ID.
var ErrNotFound = errors.New("storage: puzzle not found")

// FS stores puzzles under dir/dim-<d>/<id>.json.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) bucket(dim int) string {
	return filepath.Join(s.dir, fmt.Sprintf("dim-%d", dim))
}

func (s *FS) pathFor(id string, dim int) string {
	return filepath.Join(s.bucket(dim), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, p *puzzle.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	target := s.pathFor(p.ID, p.Dim)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (s *FS) Load(ctx context.Context, id string) (*puzzle.Puzzle, error) {
	for dim := 2; dim <= 5; dim++ {
		data, err := os.ReadFile(s.pathFor(id, dim))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var out puzzle.Puzzle
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	return nil, fmt.Errorf("%q: %w", id, ErrNotFound)
}

func (s *FS) List(ctx context.Context) ([]puzzle.Meta, error) {
	var out []puzzle.Meta
	for dim := 2; dim <= 5; dim++ {
		ents, err := os.ReadDir(s.bucket(dim))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.bucket(dim), e.Name()))
			if err != nil {
				continue
			}
			var p puzzle.Puzzle
			if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
				continue
			}
			out = append(out, puzzle.Meta{
				ID:        p.ID,
				Name:      p.Name,
				Dim:       p.Dim,
				Occupancy: p.Occupancy,
				CreatedAt: p.CreatedAt,
			})
		}
	}
	return out, nil
}
