package pathsearch

import (
	"fmt"

	"github.com/katalvlaran/latsum/weightgrid"
)

// Evaluate walks path over g's weights from (0,0) without touching the grid
// cursor. It reports ok=false if a character is not '0'/'1', a move leaves
// the grid, or the walk does not end exactly on the destination. For a valid
// path sum is the total weight of every visited cell except the destination.
//
// Evaluate is safe for concurrent use on a shared grid.
// Complexity: O(len(path)).
func Evaluate(g *weightgrid.Grid, path string) (sum int, ok bool) {
	dx, dy := g.Destination()
	x, y := 0, 0
	if x == dx && y == dy {
		return 0, len(path) == 0
	}
	for i := 0; i < len(path); i++ {
		w, err := g.WeightAt(x, y)
		if err != nil {
			return 0, false
		}
		sum += w
		switch path[i] {
		case stepDown:
			y++
		case stepRight:
			x++
		default:
			return 0, false
		}
		if !g.InBounds(x, y) {
			return 0, false
		}
		if x == dx && y == dy {
			return sum, i == len(path)-1
		}
	}

	return sum, false
}

// Replay scores path by moving g's cursor: reset to (0,0), then for each
// character add the weight under the cursor and move. It stops as soon as the
// cursor reaches the destination, whose weight is never added. If path runs
// out first the partial sum is returned.
//
// Replay mutates the cursor and must not run concurrently on one grid.
// Movement or query failures are returned as-is (ErrInvalidMovement,
// ErrOutOfRange); a character other than '0'/'1' yields ErrBadEncoding.
func Replay(g *weightgrid.Grid, path string) (int, error) {
	g.ResetCursor()
	dx, dy := g.Destination()
	sum := 0
	for i := 0; i < len(path); i++ {
		x, y := g.Cursor()
		if x == dx && y == dy {
			return sum, nil
		}
		w, err := g.WeightAt(x, y)
		if err != nil {
			return sum, err
		}
		sum += w
		switch path[i] {
		case stepDown:
			err = g.MoveTo(x, y+1)
		case stepRight:
			err = g.MoveTo(x+1, y)
		default:
			return sum, fmt.Errorf("Replay(%q) at %d: %w", path, i, ErrBadEncoding)
		}
		if err != nil {
			return sum, err
		}
	}

	return sum, nil
}
