package weightgrid

import "errors"

var (
	// ErrUnsupportedSize indicates width or height falls outside the configured bounds.
	ErrUnsupportedSize = errors.New("weightgrid: grid size not supported")
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("weightgrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("weightgrid: all rows must have the same length")
	// ErrOutOfRange indicates a weight query outside the grid.
	ErrOutOfRange = errors.New("weightgrid: coordinate out of range")
	// ErrInvalidMovement indicates a strict move to a cell outside the grid.
	ErrInvalidMovement = errors.New("weightgrid: movement is not valid")
)
