// Package floydwarshall provides a dense all-pairs shortest-path engine with
// a fully replayable execution trace, shortest-path reconstruction, and
// cycle detection over the converged distance matrix.
//
// Overview:
//
//   - Solve runs the outer-k relaxation over a private copy of an n×n cost
//     matrix and returns final distances, a predecessor table, and the
//     chronological step log (one entry per successful relaxation plus
//     boundary markers), each update step carrying a full matrix snapshot.
//   - SolveDistances is the trace-free fast path: same distances and
//     predecessors, no step allocations.
//   - ReconstructPath rebuilds the concrete vertex sequence between any two
//     vertices from the predecessor table.
//   - MinCycle reports either the dominant negative self-loop or the
//     minimum-weight two-hop round trip found in the distance matrix.
//
// When to use:
//
//   - Didactic, step-by-step visualization of all-pairs shortest paths on
//     graphs small enough to draw (tens of vertices); the step log is the
//     wire contract with any playback layer.
//   - Batch metric-closure computation on small dense graphs via the
//     trace-free entry point.
//
// Key properties:
//
//   - The unreachable sentinel (matrix.Unreachable) never takes part in
//     arithmetic: both operands are guarded before every addition.
//   - Relaxation is strictly "<". Ties keep the earlier path, which pins
//     down the predecessor chain and makes the step log reproducible.
//   - Negative weights are permitted; a negative cycle surfaces as a
//     negative diagonal cell and is reported by MinCycle, never raised as
//     an error by Solve.
//   - The solver touches no global state: concurrent Solve calls on
//     independent inputs are safe, inputs are copied on entry, and outputs
//     are immutable value bundles.
//
// Performance and complexity:
//
//   - Time:  O(V³) relaxation; O(V²) cycle scan; O(hops) path walk.
//   - Space: O(V²) for the tables, plus O(V²) per recorded update step in
//     FullTrace mode, intentionally memory-heavy for animation fidelity.
//     Bound n before calling, or use SolveDistances.
//
// Error handling (sentinel errors, matched via errors.Is):
//
//   - ErrNilMatrix, ErrNonSquare:
//     malformed geometry passed to Solve or MinCycle; programmer errors,
//     failed fast, never retried.
//   - ErrNilPredecessors, ErrRaggedPredecessors, ErrVertexOutOfRange:
//     malformed arguments to ReconstructPath.
//   - "No path" and "no cycle" are NOT errors: they come back as a nil
//     sequence and a false flag respectively.
//
// API reference:
//
//	func Solve(cost matrix.Matrix, opts ...Option) (*Result, error)
//	func SolveDistances(cost matrix.Matrix) (*matrix.Dense, [][]int, error)
//	func ReconstructPath(pred [][]int, source, destination int) ([]int, error)
//	func MinCycle(dist matrix.Matrix) (Cycle, bool, error)
package floydwarshall
