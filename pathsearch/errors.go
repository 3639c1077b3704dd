package pathsearch

import "errors"

var (
	// ErrNilGrid indicates the engine was given no grid.
	ErrNilGrid = errors.New("pathsearch: grid is nil")

	// ErrPathTooLong indicates (W-1)+(H-1) exceeds MaxPathLength bits.
	ErrPathTooLong = errors.New("pathsearch: path encoding does not fit in 62 bits")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("pathsearch: worker count must be ≥ 0")

	// ErrBadEncoding indicates a path character other than '0' or '1'.
	ErrBadEncoding = errors.New("pathsearch: path contains a character other than '0' or '1'")

	// ErrEmptyResult indicates MaxSum was asked of a result with no paths.
	ErrEmptyResult = errors.New("pathsearch: no valid path found")
)
