package board

import "fmt"

// CheckConformance verifies region uniqueness over the whole board: no
// value occurs twice in any row, column, or quadrant. It returns a wrapped
// ErrInvalidPlacement naming the first conflict found. Load paths call
// this once before any solving starts.
func (b *Board) CheckConformance() error {
	for row := 1; row <= b.size; row++ {
		if err := b.checkRegion(b.RowCoords(row), fmt.Sprintf("row %d", row)); err != nil {
			return err
		}
	}
	for col := 1; col <= b.size; col++ {
		if err := b.checkRegion(b.ColumnCoords(col), fmt.Sprintf("column %d", col)); err != nil {
			return err
		}
	}
	for d1 := 1; d1 <= b.dim; d1++ {
		for d2 := 1; d2 <= b.dim; d2++ {
			if err := b.checkRegion(b.QuadrantCoords(d1, d2), fmt.Sprintf("quadrant (%d,%d)", d1, d2)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *Board) checkRegion(cells []Coord, name string) error {
	var seen DigitSet
	for _, p := range cells {
		v := b.Occupant(p.Row, p.Col)
		if v == 0 {
			continue
		}
		var added bool
		if seen, added = seen.Add(v); !added {
			return fmt.Errorf("value %d occurs twice in %s: %w", v, name, ErrInvalidPlacement)
		}
	}
	return nil
}
