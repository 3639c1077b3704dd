// Package latsum enumerates every monotonic lattice path across a weighted
// grid and records the distinct path sums it finds.
//
// A path starts at the top-left cell (0,0) and reaches the bottom-right cell
// (W-1,H-1) using only two moves:
//
//	'0' — down  (y+1)
//	'1' — right (x+1)
//
// Every such path is a binary string of length (W-1)+(H-1) with exactly W-1
// ones. The search walks an integer range, encodes each index as a
// left-padded bit string, discards strings that do not land on the
// destination, and scores the rest by adding the weight of every visited
// cell except the destination. The first path found for a given sum keeps it.
//
// Layout:
//
//	weightgrid/     — the weighted grid, cursor moves, size bounds, rendering
//	pathsearch/     — encoding, evaluation, sequential/parallel enumeration
//	config/         — YAML/HCL run configuration
//	internal/ctxlog — logger propagation through context.Context
//	cmd/latsum/     — command-line front end
//
// Quick example (2×2 grid):
//
//	1 2
//	3 4
//
//	"01" → down, right: 1+3 = 4
//	"10" → right, down: 1+2 = 3
//
//	go install github.com/katalvlaran/latsum/cmd/latsum@latest
package latsum
