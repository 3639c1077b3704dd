package pathsearch

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/latsum/weightgrid"
)

// Result maps each achievable path-weight sum to one representative path.
// It is written by the engine during a run and read-only afterwards.
type Result struct {
	// RunID identifies the run in logs.
	RunID uuid.UUID
	// Grid is the grid actually searched (the fallback grid after a size
	// substitution).
	Grid  *weightgrid.Grid
	Stats Stats

	mu    sync.Mutex
	sums  map[int]string
	order []int
}

func newResult(g *weightgrid.Grid) *Result {
	return &Result{
		RunID: uuid.New(),
		Grid:  g,
		sums:  make(map[int]string),
	}
}

// record inserts path under sum unless sum is already present. The test and
// the insert happen under one lock, so exactly one writer wins per sum.
func (r *Result) record(sum int, path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sums[sum]; exists {
		return false
	}
	r.sums[sum] = path
	r.order = append(r.order, sum)
	return true
}

// Len returns the number of distinct sums.
func (r *Result) Len() int {
	return len(r.sums)
}

// Lookup returns the representative path for sum.
func (r *Result) Lookup(sum int) (string, bool) {
	p, ok := r.sums[sum]
	return p, ok
}

// Sums returns the distinct sums in ascending order.
func (r *Result) Sums() []int {
	out := make([]int, 0, len(r.sums))
	for s := range r.sums {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// Paths returns a copy of the sum→path map.
func (r *Result) Paths() map[int]string {
	out := make(map[int]string, len(r.sums))
	for s, p := range r.sums {
		out[s] = p
	}
	return out
}

// Order returns the sums in the order they were first recorded.
func (r *Result) Order() []int {
	return append([]int(nil), r.order...)
}

// MaxSum returns the largest sum and its representative path, or
// ErrEmptyResult when nothing was recorded.
func (r *Result) MaxSum() (int, string, error) {
	if len(r.sums) == 0 {
		return 0, "", ErrEmptyResult
	}
	first := true
	var best int
	for s := range r.sums {
		if first || s > best {
			best, first = s, false
		}
	}
	return best, r.sums[best], nil
}
