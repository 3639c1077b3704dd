package pathsearch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// candidatesTotal counts enumeration indices visited, by mode.
	candidatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "latsum_candidates_total",
		Help: "Total enumeration indices visited by path searches",
	}, []string{"mode"})

	// validTotal counts indices that decoded to a valid lattice path.
	validTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "latsum_paths_valid_total",
		Help: "Total valid lattice paths scored",
	}, []string{"mode"})

	// distinctTotal counts paths recorded under a new sum.
	distinctTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "latsum_sums_distinct_total",
		Help: "Total distinct path-weight sums recorded",
	}, []string{"mode"})

	// abortedTotal counts runs ended by cancellation or a fault. Aborted runs
	// are not added to the other series.
	abortedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "latsum_searches_aborted_total",
		Help: "Total path searches that ended before covering the range",
	}, []string{"mode"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "latsum_search_duration_seconds",
		Help:    "Path search wall time in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12), // 0.1ms to ~7min
	}, []string{"mode"})
)

// observeRun records a finished run; an aborted run only bumps abortedTotal.
func observeRun(mode Mode, st Stats, err error) {
	label := mode.String()
	if err != nil {
		abortedTotal.WithLabelValues(label).Inc()
		return
	}
	candidatesTotal.WithLabelValues(label).Add(float64(st.Candidates))
	validTotal.WithLabelValues(label).Add(float64(st.Valid))
	distinctTotal.WithLabelValues(label).Add(float64(st.Distinct))
	searchDuration.WithLabelValues(label).Observe(st.Elapsed.Seconds())
}
