package pathsearch

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// workerCount resolves Options.Workers: 0 means GOMAXPROCS, and there are
// never more workers than candidates.
func (e *Engine) workerCount() int {
	n := e.opts.Workers
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if count := e.hi - e.lo + 1; count != 0 && uint64(n) > count {
		n = int(count)
	}
	if n < 1 {
		n = 1
	}
	return n
}

// runParallel splits [lo, hi] into interleaved partitions: worker k takes
// lo+k, lo+k+n, lo+k+2n, …. All workers write into res; the first error
// cancels the rest.
func (e *Engine) runParallel(ctx context.Context, res *Result, logger *slog.Logger) (Stats, error) {
	n := e.workerCount()
	perWorker := make([]Stats, n)

	var sharedMu *sync.Mutex
	if e.opts.Scoring == CursorScoring && e.opts.GridSharing == SharedGrid {
		sharedMu = &sync.Mutex{}
	}

	g, gctx := errgroup.WithContext(ctx)
	for k := 0; k < n; k++ {
		w := &worker{id: k, logger: logger.With("workerID", k)}
		if sharedMu != nil {
			w.grid, w.gridMu = e.grid, sharedMu
		} else {
			w.grid = e.grid.Clone()
		}
		g.Go(func() error {
			w.logger.Debug("Worker started.")
			st, err := e.scan(gctx, w, e.lo+uint64(w.id), uint64(n), res)
			perWorker[w.id] = st
			w.logger.Debug("Worker finished.", "candidates", st.Candidates, "distinct", st.Distinct)
			return err
		})
	}
	err := g.Wait()

	total := Stats{Workers: n}
	for _, st := range perWorker {
		total.Candidates += st.Candidates
		total.Valid += st.Valid
		total.Distinct += st.Distinct
	}
	return total, err
}
