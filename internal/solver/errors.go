package solver

import "errors"

var (
	// ErrNoSolution is returned when exhaustive search proves the board
	// unsolvable.
	ErrNoSolution = errors.New("board has no solution")

	// ErrAborted is returned when search stops because the context was
	// canceled or an externally configured node bound was exceeded.
	// Partial state is discarded.
	ErrAborted = errors.New("solver aborted")
)
