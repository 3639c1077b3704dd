// Package pathsearch enumerates every monotonic lattice path across a
// weightgrid.Grid, scores each one and keeps one representative path per
// distinct weight sum.
//
// 🚀 What is it?
//
//	A path from (0,0) to (W-1,H-1) that only moves down or right has
//	L = (W-1)+(H-1) steps. It is encoded as an L-character bit string:
//	  '0' — move down  (y+1)
//	  '1' — move right (x+1)
//	so a valid encoding holds exactly W-1 ones and H-1 zeros. The engine walks
//	a numeric index range, renders each index as a left-padded bit string,
//	rejects invalid ones, sums the weights of every visited cell except the
//	destination, and records the path if its sum is new.
//
// ✨ Key features:
//   - principled range narrowing: [2^(W-1)-1, (2^(W-1)-1)<<(H-1)] covers every
//     valid encoding and nothing below/above it
//   - pure scoring (Evaluate) or cursor scoring on the grid (Replay)
//   - partitioned parallel mode: worker k takes lo+k, lo+k+N, lo+k+2N, …
//   - atomic check-then-insert into the shared sum→path map; first found wins
//   - OnAccept hook, slog debug logs and Prometheus counters per run
//
// ⚙️ Usage:
//
//	opts := pathsearch.DefaultOptions()
//	res, err := pathsearch.Search(ctx, 6, 6, opts, weightgrid.WithSeed(42))
//	if err != nil {
//	  // internal fault; size problems fall back to a 4×4 grid instead
//	}
//	sum, path, _ := res.MaxSum()
//
// Performance:
//
//   - Time:   O(C·L) where C = hi-lo+1 candidates (≤ 2^L)
//   - Memory: O(S·L) for S distinct sums
//
// The representative path kept for a tied sum depends on enumeration order
// and, in parallel mode, on scheduling. The set of sums does not.
package pathsearch
