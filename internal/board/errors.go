package board

import "errors"

// Sentinel errors for board mutation.
var (
	// ErrInvalidPlacement is returned when an occupation targets an
	// occupied cell or would duplicate a value within a row, column, or
	// quadrant. The board is left unchanged.
	ErrInvalidPlacement = errors.New("placement violates board rules")

	// ErrContradiction is returned when an elimination leaves a vacant
	// cell with an empty candidate set. Callers running speculative
	// occupations must roll back to a snapshot.
	ErrContradiction = errors.New("cell has no candidates left")

	// ErrOutOfRange is returned for coordinates or digits outside 1..DIM.
	ErrOutOfRange = errors.New("coordinate or digit out of range")
)
