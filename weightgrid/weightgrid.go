package weightgrid

import (
	"errors"
	"fmt"
)

const (
	methodNew        = "New"
	methodFromValues = "FromValues"
)

// New builds a width×height grid whose cells are drawn, row by row, from the
// configured WeightFn. Returns ErrUnsupportedSize if either dimension lies
// outside the configured Bounds.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Grid, error) {
	cfg := newGridConfig(opts...)
	if err := checkSize(methodNew, width, height, cfg.bounds); err != nil {
		return nil, err
	}

	cells := make([][]int, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]int, width)
		for x := 0; x < width; x++ {
			cells[y][x] = cfg.weightFn(cfg.rng)
		}
	}

	return &Grid{width: width, height: height, cells: cells, policy: cfg.policy}, nil
}

// FromValues builds a grid from a non-empty, rectangular row-major slice
// (values[y][x]). It deep-copies the input. Only the Bounds and MovePolicy
// options are observed.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrUnsupportedSize.
// Complexity: O(W×H) time and memory.
func FromValues(values [][]int, opts ...Option) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cfg := newGridConfig(opts...)
	if err := checkSize(methodFromValues, w, h, cfg.bounds); err != nil {
		return nil, err
	}

	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &Grid{width: w, height: h, cells: cells, policy: cfg.policy}, nil
}

// NewOrDefault is New with the size fallback applied: when the requested size
// is unsupported it returns a DefaultWidth×DefaultHeight grid built with the
// same options, together with the ErrUnsupportedSize error so the caller can
// warn. Each default side is clamped into the configured Bounds, so the
// fallback itself is always supported. Any other failure yields a nil grid.
func NewOrDefault(width, height int, opts ...Option) (*Grid, error) {
	g, err := New(width, height, opts...)
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, ErrUnsupportedSize) {
		return nil, err
	}
	b := newGridConfig(opts...).bounds
	fallback, ferr := New(b.clamp(DefaultWidth), b.clamp(DefaultHeight), opts...)
	if ferr != nil {
		return nil, errors.Join(err, ferr)
	}

	return fallback, err
}

func checkSize(method string, width, height int, b Bounds) error {
	if !b.Contains(width) || !b.Contains(height) {
		return fmt.Errorf("%s: (%d,%d) outside [%d,%d]: %w",
			method, width, height, b.Min, b.Max, ErrUnsupportedSize)
	}
	return nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Policy returns the move policy the grid was built with.
func (g *Grid) Policy() MovePolicy { return g.policy }

// Destination returns the bottom-right corner (Width-1, Height-1).
func (g *Grid) Destination() (x, y int) {
	return g.width - 1, g.height - 1
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsValidMove reports whether the cursor may be placed on (x,y).
// It has no side effects.
func (g *Grid) IsValidMove(x, y int) bool {
	return g.InBounds(x, y)
}

// WeightAt returns the weight of column x, row y.
// Returns ErrOutOfRange outside [0,Width)×[0,Height).
func (g *Grid) WeightAt(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("WeightAt(%d,%d) on %dx%d grid: %w", x, y, g.width, g.height, ErrOutOfRange)
	}
	return g.cells[y][x], nil
}

// Cursor returns the current traversal position.
func (g *Grid) Cursor() (x, y int) {
	return g.x, g.y
}

// MoveTo places the cursor on (x,y). Under Strict policy an out-of-bounds
// target leaves the cursor untouched and returns ErrInvalidMovement.
func (g *Grid) MoveTo(x, y int) error {
	if g.policy == Strict && !g.IsValidMove(x, y) {
		return fmt.Errorf("move from (%d,%d) to (%d,%d): %w", g.x, g.y, x, y, ErrInvalidMovement)
	}
	g.x, g.y = x, y
	return nil
}

// ResetCursor moves the cursor back to (0,0).
func (g *Grid) ResetCursor() {
	g.x, g.y = 0, 0
}

// Rows returns a deep copy of the weights in row-major order.
// Complexity: O(W×H).
func (g *Grid) Rows() [][]int {
	out := make([][]int, g.height)
	for y := range g.cells {
		out[y] = append([]int(nil), g.cells[y]...)
	}
	return out
}

// Clone returns a grid sharing the same (immutable) weights with its own
// cursor at (0,0). Clones are how concurrent workers privatize traversal state.
// Complexity: O(1).
func (g *Grid) Clone() *Grid {
	return &Grid{width: g.width, height: g.height, cells: g.cells, policy: g.policy}
}
