package pathsearch

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/latsum/weightgrid"
)

// BestSum — dynamic-programming maximum over monotonic paths
//
// Description:
//
//	Computes the largest path sum reachable on g without enumerating paths.
//	It is an independent cross-check for Result.MaxSum: both must agree on
//	the sum, while the witness path may differ when several paths tie.
//
// Algorithm Outline:
//  1. D[0][0] = 0.
//  2. D[y][x] = max(D[y-1][x] + w(x,y-1), D[y][x-1] + w(x-1,y)),
//     taking only the predecessors that exist.
//  3. best = D[H-1][W-1]; the destination's weight is never added.
//  4. Backtrack from the destination, preferring the cell above on ties,
//     and reverse the collected steps.
//
// Complexity:
//
//	Time   = O(W·H)
//	Memory = O(W·H)
func BestSum(g *weightgrid.Grid) (best int, path string, err error) {
	if g == nil {
		return 0, "", fmt.Errorf("BestSum: %w", ErrNilGrid)
	}
	w, h := g.Width(), g.Height()
	cells := g.Rows()

	dp := make([][]int, h)
	for y := range dp {
		dp[y] = make([]int, w)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 && y == 0 {
				continue
			}
			switch {
			case y == 0:
				dp[y][x] = dp[y][x-1] + cells[y][x-1]
			case x == 0:
				dp[y][x] = dp[y-1][x] + cells[y-1][x]
			default:
				dp[y][x] = max(dp[y-1][x]+cells[y-1][x], dp[y][x-1]+cells[y][x-1])
			}
		}
	}

	steps := make([]byte, 0, PathLength(w, h))
	x, y := w-1, h-1
	for x > 0 || y > 0 {
		if y > 0 && dp[y][x] == dp[y-1][x]+cells[y-1][x] {
			steps = append(steps, stepDown)
			y--
		} else {
			steps = append(steps, stepRight)
			x--
		}
	}
	slices.Reverse(steps)

	return dp[h-1][w-1], string(steps), nil
}
