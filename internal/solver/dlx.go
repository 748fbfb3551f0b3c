package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
	"github.com/ms1963/SudokuSolverAndGenerator/internal/ports"
)

// DLX implements Algorithm X / Dancing Links as an alternative exhaustive
// engine. Exact-cover mapping for edge length n = dim*dim:
// 4*n*n constraint columns (cell, row-number, column-number, box-number)
// and n*n*n candidate rows (r,c,v).
type DLX struct{}

func NewDLX() *DLX { return &DLX{} }

type dlxNode struct {
	left, right, up, down *dlxNode
	col                   *dlxColumn
	rowIdx                int
}

type dlxColumn struct {
	dlxNode
	size   int
	active bool
}

type dlxMatrix struct {
	n         int // board edge
	dim       int // quadrant edge
	cols      []*dlxColumn
	rowHead   []*dlxNode
	sol       []*dlxNode
	solLen    int
	nodes     int
	activeCnt int
}

func newDLXMatrix(dim int) *dlxMatrix {
	n := dim * dim
	nCells := n * n
	nCols := 4 * nCells
	nRows := nCells * n

	d := &dlxMatrix{
		n:       n,
		dim:     dim,
		cols:    make([]*dlxColumn, nCols),
		rowHead: make([]*dlxNode, nRows),
		sol:     make([]*dlxNode, nRows),
	}
	for i := 0; i < nCols; i++ {
		c := &dlxColumn{active: true}
		c.up = &c.dlxNode
		c.down = &c.dlxNode
		d.cols[i] = c
	}
	d.activeCnt = nCols

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			for v := 1; v <= n; v++ {
				row := d.rowIndex(r, c, v)
				var first, prev *dlxNode
				for _, colID := range d.rowColumns(r, c, v) {
					col := d.cols[colID]
					node := &dlxNode{col: col, rowIdx: row}
					node.down = &col.dlxNode
					node.up = col.dlxNode.up
					col.dlxNode.up.down = node
					col.dlxNode.up = node
					col.size++
					if first == nil {
						first = node
						node.left = node
						node.right = node
					} else {
						node.left = prev
						node.right = prev.right
						prev.right.left = node
						prev.right = node
					}
					prev = node
				}
				d.rowHead[row] = first
			}
		}
	}
	return d
}

func (d *dlxMatrix) rowIndex(r, c, v int) int { return (r*d.n+c)*d.n + (v - 1) }

func (d *dlxMatrix) rowColumns(r, c, v int) [4]int {
	nCells := d.n * d.n
	cell := r*d.n + c
	rowN := nCells + r*d.n + (v - 1)
	colN := 2*nCells + c*d.n + (v - 1)
	box := (r/d.dim)*d.dim + c/d.dim
	boxN := 3*nCells + box*d.n + (v - 1)
	return [4]int{cell, rowN, colN, boxN}
}

func (d *dlxMatrix) decodeRow(row int) (r, c, v int) {
	cell := row / d.n
	v = row%d.n + 1
	r = cell / d.n
	c = cell % d.n
	return
}

func (d *dlxMatrix) cover(col *dlxColumn) {
	if col.active {
		col.active = false
		d.activeCnt--
	}
	for i := col.down; i != &col.dlxNode; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (d *dlxMatrix) uncover(col *dlxColumn) {
	for i := col.up; i != &col.dlxNode; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		d.activeCnt++
	}
}

// chooseColumn picks the active column with the smallest size.
func (d *dlxMatrix) chooseColumn() *dlxColumn {
	var best *dlxColumn
	for _, c := range d.cols {
		if c.active {
			if best == nil || c.size < best.size {
				best = c
				if best.size == 0 {
					break
				}
			}
		}
	}
	return best
}

func (d *dlxMatrix) search(ctx context.Context, k, wantCount int, found *int) bool {
	select {
	case <-ctx.Done():
		return true // stop search
	default:
	}
	if d.activeCnt == 0 {
		d.solLen = k
		(*found)++
		return *found >= wantCount
	}

	c := d.chooseColumn()
	if c == nil || c.size == 0 {
		return false
	}
	d.cover(c)
	for r := c.down; r != &c.dlxNode; r = r.down {
		d.nodes++
		d.sol[k] = r
		for j := r.right; j != r; j = j.right {
			if j.col.active {
				d.cover(j.col)
			}
		}
		if d.search(ctx, k+1, wantCount, found) {
			for j := r.left; j != r; j = j.left {
				d.uncover(j.col)
			}
			d.uncover(c)
			return true
		}
		for j := r.left; j != r; j = j.left {
			d.uncover(j.col)
		}
	}
	d.uncover(c)
	return false
}

// applyGiven selects the row for a given and covers its columns, as if
// the search had chosen it at top level.
func (d *dlxMatrix) applyGiven(r, c, v int) error {
	head := d.rowHead[d.rowIndex(r, c, v)]
	if head == nil {
		return fmt.Errorf("given (%d,%d)=%d: %w", r+1, c+1, v, board.ErrOutOfRange)
	}
	for j := head; ; j = j.right {
		d.cover(j.col)
		if j.right == head {
			break
		}
	}
	return nil
}

func (d *dlxMatrix) loadGivens(b *board.Board) error {
	for r := 0; r < d.n; r++ {
		for c := 0; c < d.n; c++ {
			if v := b.Occupant(r+1, c+1); v > 0 {
				if err := d.applyGiven(r, c, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *DLX) Solve(ctx context.Context, b *board.Board) (*board.Board, ports.Stats, error) {
	start := time.Now()
	d := newDLXMatrix(b.Dim())
	if err := d.loadGivens(b); err != nil {
		return nil, ports.Stats{}, err
	}
	found := 0
	_ = d.search(ctx, 0, 1, &found)
	st := ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, st, ErrAborted
	}
	if found < 1 {
		return nil, st, ErrNoSolution
	}
	// Givens are covered outside the search, so start from the input and
	// fill in only the chosen rows.
	out := b.Clone()
	for i := 0; i < d.solLen; i++ {
		r, c, v := d.decodeRow(d.sol[i].rowIdx)
		out.SetCell(r+1, c+1, board.Cell{Occupied: true, Value: v})
	}
	return out, st, nil
}

func (s *DLX) Unique(ctx context.Context, b *board.Board) (bool, ports.Stats, error) {
	start := time.Now()
	d := newDLXMatrix(b.Dim())
	if err := d.loadGivens(b); err != nil {
		return false, ports.Stats{}, err
	}
	found := 0
	_ = d.search(ctx, 0, 2, &found) // stop after finding 2 solutions
	st := ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return false, st, ErrAborted
	}
	return found == 1, st, nil
}
