// Package board maintains the Sudoku grid: cell occupancy, the influencer
// bookkeeping that candidate computation derives from, and the region
// mappings (row, column, quadrant) strategies navigate by.
//
// Coordinates are 1-indexed: row, col in 1..DIM where DIM = dim*dim and dim
// is the quadrant edge (dim 3 is the standard 9x9 board). All mutation goes
// through Occupy and AddInfluencer, which keep three invariants:
//
//   - complementarity: candidates of a vacant cell are always the exact
//     complement of its influencers within 1..DIM
//   - region uniqueness: occupied cells of a region carry distinct values
//   - influencer soundness: after Occupy returns, every vacant peer of the
//     occupied cell counts the new value among its influencers
//
// GetCell/SetCell bypass the invariant machinery and exist for restore
// paths that install an already validated grid.
package board

import (
	"fmt"
)

// Coord identifies a cell.
type Coord struct {
	Row int
	Col int
}

// Cell is the full state of one board position. Influencers is only
// meaningful while the cell is vacant; Value only while it is occupied.
type Cell struct {
	Occupied    bool
	Value       int
	Influencers DigitSet
}

// Observer is notified of every influencer recorded on a vacant cell.
// It must not mutate the board; it exists for monitoring only.
type Observer func(cell Coord, digit int, reason string)

// Board is the DIM x DIM grid. It is not safe for concurrent use; one
// solver session owns it at a time.
type Board struct {
	dim   int
	size  int // dim * dim
	cells []Cell

	observer     Observer
	eliminations uint64
}

// New creates an empty board with quadrants of edge length dim.
func New(dim int) (*Board, error) {
	if dim < 2 || dim > 5 {
		return nil, fmt.Errorf("quadrant size %d: %w", dim, ErrOutOfRange)
	}
	size := dim * dim
	return &Board{
		dim:   dim,
		size:  size,
		cells: make([]Cell, size*size),
	}, nil
}

// MustNew is New for callers with a statically valid dim (tests, defaults).
func MustNew(dim int) *Board {
	b, err := New(dim)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) Dim() int  { return b.dim }
func (b *Board) Size() int { return b.size }

func (b *Board) index(row, col int) int { return (row-1)*b.size + col - 1 }

func (b *Board) inRange(row, col int) bool {
	return row >= 1 && row <= b.size && col >= 1 && col <= b.size
}

// GetCell returns the raw cell state. It does not validate coordinates
// beyond bounds; invalid coordinates panic like a slice access would.
func (b *Board) GetCell(row, col int) Cell {
	return b.cells[b.index(row, col)]
}

// SetCell installs raw cell state, bypassing invariant enforcement.
// Intended for restore operations over pre-validated grids.
func (b *Board) SetCell(row, col int, c Cell) {
	b.cells[b.index(row, col)] = c
}

// SetObserver installs the monitoring callback. A nil observer disables
// monitoring. The observer never influences solving.
func (b *Board) SetObserver(o Observer) { b.observer = o }

// Eliminations counts every influencer recorded since the board was
// created. The solver loop uses it to detect elimination progress.
func (b *Board) Eliminations() uint64 { return b.eliminations }

// Occupant returns the value at (row,col), or 0 when vacant.
func (b *Board) Occupant(row, col int) int {
	c := b.GetCell(row, col)
	if !c.Occupied {
		return 0
	}
	return c.Value
}

// Influencers returns the influencer set of a vacant cell; the empty set
// for occupied cells.
func (b *Board) Influencers(row, col int) DigitSet {
	c := b.GetCell(row, col)
	if c.Occupied {
		return 0
	}
	return c.Influencers
}

// Candidates returns the digits that may still occupy (row,col): the
// complement of the influencers. Occupied cells have no candidates.
func (b *Board) Candidates(row, col int) DigitSet {
	c := b.GetCell(row, col)
	if c.Occupied {
		return 0
	}
	return c.Influencers.Complement(b.size)
}

// IsComplete reports whether every cell is occupied.
func (b *Board) IsComplete() bool {
	for i := range b.cells {
		if !b.cells[i].Occupied {
			return false
		}
	}
	return true
}

// OccupiedCount returns the number of occupied cells.
func (b *Board) OccupiedCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].Occupied {
			n++
		}
	}
	return n
}

// Vacancies lists all vacant cells in row-major order.
func (b *Board) Vacancies() []Coord {
	var out []Coord
	for row := 1; row <= b.size; row++ {
		for col := 1; col <= b.size; col++ {
			if !b.GetCell(row, col).Occupied {
				out = append(out, Coord{row, col})
			}
		}
	}
	return out
}

// Occupy places value at (row,col). It fails with ErrInvalidPlacement when
// the cell is occupied or the value already occurs in the cell's row,
// column, or quadrant; in that case the board is unchanged. On success the
// value is pushed as an influencer onto every vacant peer; if that empties
// a peer's candidate set the board reports ErrContradiction (the caller is
// expected to roll back via a snapshot).
func (b *Board) Occupy(row, col, value int) error {
	if !b.inRange(row, col) || value < 1 || value > b.size {
		return fmt.Errorf("occupy (%d,%d)=%d: %w", row, col, value, ErrOutOfRange)
	}
	cell := b.GetCell(row, col)
	if cell.Occupied {
		return fmt.Errorf("cell (%d,%d) already occupied by %d: %w", row, col, cell.Value, ErrInvalidPlacement)
	}
	if at, dup := b.valueInRegions(row, col, value); dup {
		return fmt.Errorf("value %d already at (%d,%d): %w", value, at.Row, at.Col, ErrInvalidPlacement)
	}
	b.SetCell(row, col, Cell{Occupied: true, Value: value})
	for _, p := range b.Peers(row, col) {
		if err := b.AddInfluencer(p.Row, p.Col, value, "occupy"); err != nil {
			return err
		}
	}
	return nil
}

// AddInfluencer records that digit cannot occupy the vacant cell (row,col).
// Occupied cells are left untouched. Recording the last missing digit of a
// vacant cell fails with ErrContradiction; the influencer is recorded
// first so reports can show the offending cell with its empty candidates.
func (b *Board) AddInfluencer(row, col, digit int, reason string) error {
	if !b.inRange(row, col) || digit < 1 || digit > b.size {
		return fmt.Errorf("influencer (%d,%d)+%d: %w", row, col, digit, ErrOutOfRange)
	}
	i := b.index(row, col)
	cell := b.cells[i]
	if cell.Occupied {
		return nil
	}
	set, added := cell.Influencers.Add(digit)
	if !added {
		return nil
	}
	b.cells[i].Influencers = set
	b.eliminations++
	if b.observer != nil {
		b.observer(Coord{row, col}, digit, reason)
	}
	if set.Complement(b.size).IsEmpty() {
		return fmt.Errorf("cell (%d,%d) after eliminating %d: %w", row, col, digit, ErrContradiction)
	}
	return nil
}

// valueInRegions reports whether value occurs in any region of (row,col).
func (b *Board) valueInRegions(row, col, value int) (Coord, bool) {
	for _, p := range b.Peers(row, col) {
		if b.Occupant(p.Row, p.Col) == value {
			return p, true
		}
	}
	return Coord{}, false
}

// Clone returns a fully independent deep copy.
func (b *Board) Clone() *Board {
	cp := &Board{
		dim:          b.dim,
		size:         b.size,
		cells:        make([]Cell, len(b.cells)),
		eliminations: b.eliminations,
	}
	copy(cp.cells, b.cells)
	return cp
}
