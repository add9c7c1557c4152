// Package floydwarshall implements the all-pairs shortest-path solver.
//
// Solve runs the classic dynamic programming over a private copy of the cost
// matrix: for each intermediate vertex k it tries to improve every ordered
// pair (i, j) through k. Each successful relaxation is appended to the step
// log together with a full snapshot of the distance matrix, which is what
// playback layers replay.
//
// Notes on implementation choices:
//
//   - The input is deep-copied on entry; caller state is never mutated.
//   - Both operands of every candidate sum are guarded against the
//     unreachable sentinel before adding. This double guard is load-bearing:
//     sentinel-plus-finite arithmetic would otherwise fabricate a finite
//     distance for a path that does not exist.
//   - Relaxation is strictly "<": ties never update, so earlier-discovered
//     paths survive. This rule is normative: it decides which predecessor
//     chain (and therefore which concrete path) the engine reports when
//     multiple shortest paths exist, and the step log depends on it for
//     reproducibility.
//   - Cell reads happen per pair, not hoisted per row, so that in-place
//     updates from earlier pairs of the same k iteration are visible exactly
//     as they occur. The trace must reflect the true state sequence.
package floydwarshall

import (
	"fmt"

	"github.com/SPIN0ZAi/Data-Structures-Visualizer-sub000/matrix"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSolve    = "Solve"
	opMinCycle = "MinCycle"
)

// solverErrorf wraps an underlying error with operation context.
func solverErrorf(op string, err error) error {
	return fmt.Errorf("floydwarshall.%s: %w", op, err)
}

// Solve computes all-pairs shortest paths over the square cost matrix.
//
// Returns a Result holding:
//
//   - Distances: converged n×n distance matrix (unreachable cells keep the
//     sentinel; a negative diagonal cell signals a negative cycle reachable
//     from that vertex, surfaced to MinCycle rather than special-cased here).
//   - Predecessors: n×n table of second-to-last hops (NoPredecessor when
//     empty), seeded with pred[i][j] = i for every reachable off-diagonal
//     cell and inherited as pred[i][j] = pred[k][j] on every relaxation.
//   - Steps: the complete chronological event log (FullTrace mode), framed
//     by boundary markers: one for the initial state, one after each
//     finished intermediate vertex. Nil in NoTrace mode.
//
// Preconditions and validation (in order):
//  1. cost must be non-nil (ErrNilMatrix).
//  2. cost must be square (ErrNonSquare).
//
// An order-zero (0×0) input is valid: there is nothing to relax, so the
// result carries an empty distance matrix, an empty predecessor table and,
// in FullTrace mode, only the initial boundary marker.
//
// The diagonal is not enforced: a non-zero diagonal represents self-loops and
// is preserved as-is. Negative weights are permitted.
//
// Complexity: O(V³) time; O(V²) space, plus O(V²) per update step in
// FullTrace mode. Pure function over its input domain: no retries, no I/O,
// safe for concurrent calls on independent inputs.
func Solve(cost matrix.Matrix, opts ...Option) (*Result, error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate geometry: nil, then square. Order zero is legal and falls
	//    through the loops untouched.
	if err := matrix.ValidateSquare(cost); err != nil {
		return nil, solverErrorf(opSolve, err)
	}

	// 3) Copy the input and seed the predecessor table; the caller's matrix
	//    is read-only from here on.
	r := newRunner(cost)

	// 4) Record the initial state, then run the relaxation loops.
	if cfg.TraceMode == FullTrace {
		r.recordBoundary(Boundary)
		r.relaxTraced()
	} else {
		r.relaxUntraced()
	}

	// 5) Hand the converged state back as an immutable bundle. FromRows cannot
	//    express the order-zero matrix; the Dense zero value covers it.
	dist := &matrix.Dense{}
	if r.n > 0 {
		var err error
		dist, err = matrix.FromRows(r.dist)
		if err != nil {
			// Unreachable for a validated input; kept for an honest error path.
			return nil, solverErrorf(opSolve, err)
		}
	}

	return &Result{
		Distances:    dist,
		Predecessors: r.pred,
		Steps:        r.steps,
	}, nil
}

// SolveDistances is the trace-free fast path: identical final distances and
// predecessors, zero step allocations. Prefer it whenever no playback layer
// consumes the log.
func SolveDistances(cost matrix.Matrix) (*matrix.Dense, [][]int, error) {
	res, err := Solve(cost, WithoutTrace())
	if err != nil {
		return nil, nil, err
	}

	return res.Distances, res.Predecessors, nil
}

// runner holds the mutable state of a single Solve execution.
type runner struct {
	n     int         // matrix order
	dist  [][]float64 // working distance matrix, mutated in place
	pred  [][]int     // predecessor table, updated alongside dist
	steps []Step      // chronological event log (nil in NoTrace mode)
}

// newRunner deep-copies the cost matrix into working storage and seeds the
// predecessor table: pred[i][j] = i whenever i ≠ j and the cell is reachable,
// NoPredecessor otherwise.
func newRunner(cost matrix.Matrix) *runner {
	n := cost.Rows()

	// Fast path: *Dense exposes a row-copy snapshot in one call.
	var dist [][]float64
	if d, ok := cost.(*matrix.Dense); ok {
		dist = d.RowsCopy()
	} else {
		// Generic interface fallback: copy cell by cell.
		dist = make([][]float64, n)
		var i, j int
		var v float64
		for i = 0; i < n; i++ {
			dist[i] = make([]float64, n)
			for j = 0; j < n; j++ {
				v, _ = cost.At(i, j) // safe after shape validation
				dist[i][j] = v
			}
		}
	}

	// Seed predecessors from the direct edges.
	pred := make([][]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		pred[i] = make([]int, n)
		for j = 0; j < n; j++ {
			if i != j && !matrix.IsUnreachable(dist[i][j]) {
				pred[i][j] = i // direct edge: the hop before j is i itself
			} else {
				pred[i][j] = NoPredecessor
			}
		}
	}

	return &runner{n: n, dist: dist, pred: pred}
}

// snapshot returns a freshly allocated copy of the current distance matrix.
// Every update step owns independent storage; later mutations never reach
// already-recorded steps.
func (r *runner) snapshot() [][]float64 {
	out := make([][]float64, r.n)
	var i int
	for i = 0; i < r.n; i++ {
		out[i] = make([]float64, r.n)
		copy(out[i], r.dist[i])
	}

	return out
}

// recordBoundary appends a boundary marker for the given k
// (Boundary for the initial state).
func (r *runner) recordBoundary(k int) {
	r.steps = append(r.steps, Step{
		K:        k,
		I:        Boundary,
		J:        Boundary,
		Updated:  false,
		Snapshot: r.snapshot(),
	})
}

// recordUpdate appends the event of a successful relaxation of (i,j) via k.
func (r *runner) recordUpdate(k, i, j int, oldValue, newValue float64) {
	r.steps = append(r.steps, Step{
		K:        k,
		I:        i,
		J:        j,
		OldValue: oldValue,
		NewValue: newValue,
		Updated:  true,
		Snapshot: r.snapshot(),
	})
}

// relaxTraced runs the triple loop with full step recording.
// Loop order is fixed (k → i → j) for deterministic accumulation; the step
// log depends on this order being stable.
func (r *runner) relaxTraced() {
	n := r.n
	var (
		k, i, j      int     // loop indices
		ik, kj, cand float64 // operands and candidate path length via k
	)

	for k = 0; k < n; k++ { // outer: pick intermediate vertex k
		for i = 0; i < n; i++ { // middle: source vertex i
			for j = 0; j < n; j++ { // inner: destination vertex j
				// Fresh per-pair reads: earlier updates of this very k
				// iteration must be visible to later pairs.
				ik = r.dist[i][k]
				if matrix.IsUnreachable(ik) { // i cannot reach k
					continue
				}
				kj = r.dist[k][j]
				if matrix.IsUnreachable(kj) { // k cannot reach j
					continue
				}
				cand = ik + kj           // both operands finite: safe to add
				if cand < r.dist[i][j] { // strict improvement only
					old := r.dist[i][j]
					r.dist[i][j] = cand
					// The new path ends with the k→j tail, so the hop
					// before j is inherited from that tail, not from i.
					r.pred[i][j] = r.pred[k][j]
					r.recordUpdate(k, i, j, old, cand)
				}
			}
		}
		// Mark the end of this intermediate vertex for the replay layer.
		r.recordBoundary(k)
	}
}

// relaxUntraced is the same relaxation without any snapshot or log work.
// Kept as a separate loop body so the hot path carries no trace conditionals.
func (r *runner) relaxUntraced() {
	n := r.n
	var (
		k, i, j      int
		ik, kj, cand float64
	)

	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				ik = r.dist[i][k]
				if matrix.IsUnreachable(ik) {
					continue
				}
				kj = r.dist[k][j]
				if matrix.IsUnreachable(kj) {
					continue
				}
				cand = ik + kj
				if cand < r.dist[i][j] {
					r.dist[i][j] = cand
					r.pred[i][j] = r.pred[k][j]
				}
			}
		}
	}
}
