// Package format reads and writes board state in two interchange forms:
// a compact digit string (one character per cell, rows separated by
// '/') and semicolon-delimited CSV.
package format

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
)

// ErrBadFormat is returned for malformed input: wrong cell count,
// characters outside the digit range, or CSV of the wrong shape.
var ErrBadFormat = errors.New("format: malformed board")

// ParseString decodes a digit string into a board of the given
// dimension. '0' marks a vacant cell; '/' row separators are optional.
// Only dimensions up to 3 have single-character digits. Givens are
// installed via Occupy, so region conflicts are rejected at load time.
func ParseString(dim int, s string) (*board.Board, error) {
	if dim > 3 {
		return nil, fmt.Errorf("string form supports dim <= 3, got %d: %w", dim, ErrBadFormat)
	}
	b, err := board.New(dim)
	if err != nil {
		return nil, err
	}
	size := b.Size()
	cells := strings.ReplaceAll(strings.TrimSpace(s), "/", "")
	cells = strings.ReplaceAll(cells, "\n", "")
	if len(cells) != size*size {
		return nil, fmt.Errorf("want %d cells, got %d: %w", size*size, len(cells), ErrBadFormat)
	}
	for i, ch := range cells {
		v := int(ch - '0')
		if v < 0 || v > size {
			return nil, fmt.Errorf("bad digit %q at cell %d: %w", ch, i+1, ErrBadFormat)
		}
		if v == 0 {
			continue
		}
		if err := b.Occupy(i/size+1, i%size+1, v); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// EncodeString renders the board as a digit string with '/' between
// rows, the inverse of ParseString.
func EncodeString(b *board.Board) (string, error) {
	if b.Dim() > 3 {
		return "", fmt.Errorf("string form supports dim <= 3, got %d: %w", b.Dim(), ErrBadFormat)
	}
	size := b.Size()
	var sb strings.Builder
	for row := 1; row <= size; row++ {
		if row > 1 {
			sb.WriteByte('/')
		}
		for col := 1; col <= size; col++ {
			sb.WriteByte(byte('0' + b.Occupant(row, col)))
		}
	}
	return sb.String(), nil
}

// ReadCSV decodes a board from semicolon-delimited CSV, one record per
// row, 0 (or empty field) meaning vacant. CSV carries any supported
// dimension since fields are full numbers.
func ReadCSV(dim int, r io.Reader) (*board.Board, error) {
	b, err := board.New(dim)
	if err != nil {
		return nil, err
	}
	size := b.Size()
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = size
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	if len(records) != size {
		return nil, fmt.Errorf("want %d rows, got %d: %w", size, len(records), ErrBadFormat)
	}
	for ri, record := range records {
		for ci, field := range record {
			field = strings.TrimSpace(field)
			if field == "" || field == "0" {
				continue
			}
			v, err := strconv.Atoi(field)
			if err != nil || v < 1 || v > size {
				return nil, fmt.Errorf("bad value %q at (%d,%d): %w", field, ri+1, ci+1, ErrBadFormat)
			}
			if err := b.Occupy(ri+1, ci+1, v); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// WriteCSV renders the board as semicolon-delimited CSV, the inverse of
// ReadCSV.
func WriteCSV(b *board.Board, w io.Writer) error {
	size := b.Size()
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	record := make([]string, size)
	for row := 1; row <= size; row++ {
		for col := 1; col <= size; col++ {
			record[col-1] = strconv.Itoa(b.Occupant(row, col))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
