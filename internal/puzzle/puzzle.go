// Package puzzle holds the persisted Sudoku type and its listing entry.
package puzzle

import "time"

// Puzzle is a generated Sudoku with metadata. Givens is the row-major
// cell list with 0 for vacant cells; its length is (dim*dim)^2.
type Puzzle struct {
	ID        string    `json:"id"`
	Seed      int64     `json:"seed"`
	Dim       int       `json:"dim"`
	Givens    []int     `json:"givens"`
	Occupancy int       `json:"occupancy"`
	CreatedAt time.Time `json:"createdAt"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// Meta is a lightweight listing entry.
type Meta struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Dim       int       `json:"dim"`
	Occupancy int       `json:"occupancy"`
	CreatedAt time.Time `json:"createdAt"`
}
