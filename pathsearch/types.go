package pathsearch

import (
	"log/slog"
	"time"
)

// Mode selects sequential or partitioned-parallel enumeration.
type Mode int

const (
	// Parallel splits the range across Options.Workers goroutines.
	Parallel Mode = iota
	// Sequential walks the range in ascending order on the caller's goroutine.
	Sequential
)

// String implements fmt.Stringer; the value is also the metrics label.
func (m Mode) String() string {
	switch m {
	case Parallel:
		return "parallel"
	case Sequential:
		return "sequential"
	default:
		return "unknown"
	}
}

// Scoring selects how a candidate is validated and summed.
//
//   - PureScoring  — one walk over the weights validates (bounds, characters,
//     arrival) and sums; no grid state is touched.
//   - CursorScoring — step-count check, then Replay moves the grid cursor
//     cell by cell. Grid state is mutated, see GridSharing.
type Scoring int

const (
	PureScoring Scoring = iota
	CursorScoring
)

// String implements fmt.Stringer.
func (s Scoring) String() string {
	switch s {
	case PureScoring:
		return "pure"
	case CursorScoring:
		return "cursor"
	default:
		return "unknown"
	}
}

// GridSharing decides how parallel workers get a cursor under CursorScoring.
// It has no effect under PureScoring.
type GridSharing int

const (
	// PrivateGrid gives each worker its own Clone of the grid.
	PrivateGrid GridSharing = iota
	// SharedGrid lets all workers use one grid, one whole traversal at a time.
	SharedGrid
)

// String implements fmt.Stringer.
func (g GridSharing) String() string {
	switch g {
	case PrivateGrid:
		return "private"
	case SharedGrid:
		return "shared"
	default:
		return "unknown"
	}
}

// Accepted describes a path whose sum was new when it was recorded.
type Accepted struct {
	Sum    int
	Path   string
	Index  uint64 // enumeration index the path was decoded from
	Worker int    // 0 in sequential mode
}

// Options configures an Engine.
//
// Fields:
//   - Mode        — Parallel (default) or Sequential.
//   - Workers     — goroutines for Parallel; 0 means runtime.GOMAXPROCS(0).
//     Capped at the number of candidates.
//   - Narrow      — enumerate only the bit-count bounded range instead of [0,2^L).
//   - Scoring     — PureScoring (default) or CursorScoring.
//   - GridSharing — PrivateGrid (default) or SharedGrid, CursorScoring only.
//   - OnAccept    — called once per newly recorded sum, from worker
//     goroutines; must be safe for concurrent use.
//   - Logger      — overrides the logger found in the context.
type Options struct {
	Mode        Mode
	Workers     int
	Narrow      bool
	Scoring     Scoring
	GridSharing GridSharing
	OnAccept    func(Accepted)
	Logger      *slog.Logger
}

// DefaultOptions returns parallel, narrowed, pure scoring on private grids.
func DefaultOptions() Options {
	return Options{
		Mode:        Parallel,
		Workers:     0,
		Narrow:      true,
		Scoring:     PureScoring,
		GridSharing: PrivateGrid,
	}
}

// Stats summarizes one run.
type Stats struct {
	Candidates uint64 // indices visited
	Valid      uint64 // indices that decoded to a valid path
	Distinct   uint64 // valid paths whose sum was new
	Workers    int
	Elapsed    time.Duration
}
