package pathsearch

import (
	"context"
	"fmt"
	"log/slog"
	"math/bits"
	"sync"
	"time"

	"github.com/katalvlaran/latsum/internal/ctxlog"
	"github.com/katalvlaran/latsum/weightgrid"
)

// ctxCheckMask spaces out context checks in the candidate loop.
const ctxCheckMask = 1<<14 - 1

// Engine runs one exhaustive search over a fixed grid.
type Engine struct {
	grid   *weightgrid.Grid
	opts   Options
	length int
	ones   int // required one-bits (right moves)
	lo, hi uint64
}

// NewEngine validates opts against g and derives the enumeration range.
// Returns ErrNilGrid, ErrBadWorkers or ErrPathTooLong.
func NewEngine(g *weightgrid.Grid, opts Options) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if opts.Workers < 0 {
		return nil, fmt.Errorf("NewEngine: workers=%d: %w", opts.Workers, ErrBadWorkers)
	}
	lo, hi, err := EnumerationRange(g.Width(), g.Height(), opts.Narrow)
	if err != nil {
		return nil, err
	}

	return &Engine{
		grid:   g,
		opts:   opts,
		length: PathLength(g.Width(), g.Height()),
		ones:   g.Width() - 1,
		lo:     lo,
		hi:     hi,
	}, nil
}

// Range returns the inclusive enumeration range [lo, hi].
func (e *Engine) Range() (lo, hi uint64) {
	return e.lo, e.hi
}

// Search builds a grid with weightgrid.NewOrDefault and runs an Engine on it.
// An unsupported size is logged as a warning and the default-size grid is
// searched instead; it is never returned as an error.
func Search(ctx context.Context, width, height int, opts Options, gridOpts ...weightgrid.Option) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = ctxlog.FromContext(ctx)
	}

	g, err := weightgrid.NewOrDefault(width, height, gridOpts...)
	if err != nil {
		if g == nil {
			return nil, err
		}
		logger.Warn("Grid size not supported, using default.",
			"width", width, "height", height,
			"defaultWidth", g.Width(), "defaultHeight", g.Height(),
			"error", err)
	}

	e, err := NewEngine(g, opts)
	if err != nil {
		return nil, err
	}
	return e.Run(ctx)
}

// Run enumerates [lo, hi], sequentially or across workers, and blocks until
// every candidate has been processed. It returns the first internal fault
// (a movement failure during cursor scoring) or the context error.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	logger := e.opts.Logger
	if logger == nil {
		logger = ctxlog.FromContext(ctx)
	}
	res := newResult(e.grid)
	logger = logger.With("runID", res.RunID.String())
	logger.Info("Search started.",
		"width", e.grid.Width(), "height", e.grid.Height(),
		"mode", e.opts.Mode.String(), "scoring", e.opts.Scoring.String(),
		"lo", e.lo, "hi", e.hi)

	start := time.Now()
	var (
		st  Stats
		err error
	)
	switch e.opts.Mode {
	case Sequential:
		w := &worker{id: 0, grid: e.grid, logger: logger}
		st, err = e.scan(ctx, w, e.lo, 1, res)
		st.Workers = 1
	case Parallel:
		st, err = e.runParallel(ctx, res, logger)
	default:
		return nil, fmt.Errorf("Run: unknown mode %d", int(e.opts.Mode))
	}
	st.Elapsed = time.Since(start)
	res.Stats = st
	observeRun(e.opts.Mode, st, err)

	if err != nil {
		logger.Error("Search aborted.", "error", err)
		return nil, err
	}
	logger.Info("Search finished.",
		"candidates", st.Candidates, "valid", st.Valid, "distinct", st.Distinct,
		"workers", st.Workers, "elapsed", st.Elapsed)

	return res, nil
}

// worker carries the per-goroutine scoring state.
type worker struct {
	id     int
	grid   *weightgrid.Grid
	gridMu *sync.Mutex // non-nil when grid is shared between workers
	logger *slog.Logger
}

// scan evaluates indices first, first+step, first+2·step, … ≤ hi.
func (e *Engine) scan(ctx context.Context, w *worker, first, step uint64, res *Result) (Stats, error) {
	var st Stats
	if first > e.hi {
		return st, nil
	}
	for i := first; ; i += step {
		if st.Candidates&ctxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return st, err
			}
		}
		st.Candidates++

		if bits.OnesCount64(i) == e.ones {
			path := Encode(i, e.length)
			sum, ok, err := e.score(w, path)
			if err != nil {
				return st, fmt.Errorf("worker %d: path %q: %w", w.id, path, err)
			}
			if ok {
				st.Valid++
				if res.record(sum, path) {
					st.Distinct++
					w.logger.Debug("Route found.", "path", path, "sum", sum)
					if e.opts.OnAccept != nil {
						e.opts.OnAccept(Accepted{Sum: sum, Path: path, Index: i, Worker: w.id})
					}
				}
			}
		}

		if e.hi-i < step {
			break
		}
	}

	return st, nil
}

// score validates and sums one candidate according to Options.Scoring.
// An error means the encoding and the validator disagree.
func (e *Engine) score(w *worker, path string) (int, bool, error) {
	if e.opts.Scoring == PureScoring {
		sum, ok := Evaluate(w.grid, path)
		return sum, ok, nil
	}
	if !HasStepCounts(path, e.grid.Width(), e.grid.Height()) {
		return 0, false, nil
	}
	if w.gridMu != nil {
		w.gridMu.Lock()
		defer w.gridMu.Unlock()
	}
	sum, err := Replay(w.grid, path)
	if err != nil {
		return 0, false, err
	}
	if x, y := w.grid.Cursor(); !isDestination(w.grid, x, y) {
		return 0, false, fmt.Errorf("replay stopped at (%d,%d) short of the destination", x, y)
	}

	return sum, true, nil
}

func isDestination(g *weightgrid.Grid, x, y int) bool {
	dx, dy := g.Destination()
	return x == dx && y == dy
}
