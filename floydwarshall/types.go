// Package floydwarshall defines core types and configuration options
// for the all-pairs shortest-path engine.
//
// The solver runs the classic outer-k dynamic programming over a dense cost
// matrix and, besides the final distance and predecessor tables, records a
// complete, replayable log of every state transition ("steps") for
// step-by-step playback layers.
//
// Complexity:
//
//	– Time:  O(V³)          triple nested relaxation over all vertex triples.
//	– Space: O(V²)          distance + predecessor tables,
//	         plus O(V²) per recorded update step in FullTrace mode
//	         (every update step snapshots the whole distance matrix).
//
// Options:
//
//	– TraceMode: FullTrace (default) records the step log;
//	  NoTrace runs a snapshot-free hot loop and leaves Result.Steps nil.
//
// Errors (sentinel):
//
//	– ErrNilMatrix          if the cost or distance matrix is nil.
//	– ErrNonSquare          if the cost or distance matrix is not square.
//	– ErrNilPredecessors    if a nil predecessor table is given.
//	– ErrRaggedPredecessors if the predecessor table rows are uneven.
//	– ErrVertexOutOfRange   if a path endpoint is outside [0, n).
package floydwarshall

import (
	"errors"
	"fmt"

	"github.com/SPIN0ZAi/Data-Structures-Visualizer-sub000/matrix"
)

// Sentinel errors returned by this package.
//
// Shape violations reuse the matrix package sentinels (aliased here so call
// sites can keep matching via errors.Is against either name); the predecessor
// and endpoint sentinels are local to this package.
var (
	// ErrNilMatrix indicates that a nil matrix was passed to Solve or MinCycle.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrNonSquare indicates that the supplied matrix is not square. This is a
	// programmer error: the engine is defined only over square matrices and
	// fails fast rather than producing garbage output.
	ErrNonSquare = matrix.ErrNonSquare

	// ErrNilPredecessors indicates that a nil predecessor table was passed to
	// ReconstructPath.
	ErrNilPredecessors = errors.New("floydwarshall: predecessor table is nil")

	// ErrRaggedPredecessors indicates that the predecessor table is not n×n.
	ErrRaggedPredecessors = errors.New("floydwarshall: predecessor table is not square")

	// ErrVertexOutOfRange indicates that a source or destination index lies
	// outside the vertex range of the given table.
	ErrVertexOutOfRange = errors.New("floydwarshall: vertex index out of range")
)

// NoPredecessor is the "empty" marker of the predecessor table: recorded for
// cell (i,j) exactly when no path from i to j is known, or when i == j.
const NoPredecessor = -1

// Boundary is the k/i/j value carried by boundary steps, the markers that
// frame the log (one before the first relaxation, one after each completed
// intermediate vertex). Replay layers should compare against this constant
// rather than hard-coding the sentinel.
const Boundary = -1

// TraceMode controls whether the solver records the step log.
//
// FullTrace – append one Step per successful relaxation, each carrying a full
// snapshot of the distance matrix, plus the boundary markers. Memory-heavy by
// design: the snapshots are what make faithful playback possible.
//
// NoTrace – compute only the final distances and predecessors. The hot loop
// carries no snapshot work at all; use this for anything larger than the
// tens-of-vertices graphs the trace is meant for.
type TraceMode int

const (
	// FullTrace records every state transition with a matrix snapshot.
	FullTrace TraceMode = iota

	// NoTrace skips the step log entirely (Result.Steps == nil).
	NoTrace
)

// Options configures the behavior of the solver.
//
// TraceMode – FullTrace (default) or NoTrace, see TraceMode.
type Options struct {
	TraceMode TraceMode // Controls step-log recording
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithTraceMode sets the trace mode explicitly.
func WithTraceMode(mode TraceMode) Option {
	return func(o *Options) {
		o.TraceMode = mode
	}
}

// WithoutTrace disables the step log (shorthand for WithTraceMode(NoTrace)).
func WithoutTrace() Option {
	return func(o *Options) {
		o.TraceMode = NoTrace
	}
}

// DefaultOptions returns an Options struct initialized with the defaults:
//
//   - TraceMode: FullTrace (full step log with matrix snapshots).
func DefaultOptions() Options {
	return Options{
		TraceMode: FullTrace,
	}
}

// Step is an immutable record of one discrete event in the solver's progress.
//
// Update steps (Updated == true) capture a successful relaxation: the
// intermediate vertex K under consideration, the endpoints I and J being
// tested, the cell value before and after, and a full snapshot of the
// distance matrix at that instant.
//
// Boundary steps (Updated == false) frame the log: the initial state carries
// K == I == J == Boundary; the end of each outer iteration carries the
// finished K with I == J == Boundary.
//
// Steps are appended chronologically and never mutated after creation; the
// ordered slice is the sole artifact any replay or animation layer consumes,
// so field names and ordering guarantees are a stable contract.
type Step struct {
	K, I, J  int         // intermediate vertex and tested endpoints (Boundary when n/a)
	OldValue float64     // cell value before the update (0 for boundary steps)
	NewValue float64     // cell value after the update (0 for boundary steps)
	Updated  bool        // whether this step changed a cell
	Snapshot [][]float64 // full copy of the distance matrix at this instant
}

// String renders the step as a human-readable event line, with unreachable
// cells shown through the weight codec's infinity glyph.
func (s Step) String() string {
	switch {
	case !s.Updated && s.K == Boundary:
		return "initial state"
	case !s.Updated:
		return fmt.Sprintf("finished intermediate vertex %d", s.K)
	default:
		return fmt.Sprintf("via %d: dist[%d][%d] %s → %s",
			s.K, s.I, s.J,
			matrix.FormatWeight(s.OldValue),
			matrix.FormatWeight(s.NewValue))
	}
}

// Result bundles the solver's output. It is handed to the caller as an
// immutable value bundle: the solver keeps no reference to it after returning,
// so concurrent Solve calls on independent inputs are safe.
type Result struct {
	// Distances[i][j] holds the minimum cost of any path i→j using zero or
	// more intermediate vertices, or the unreachable sentinel if none exists.
	Distances *matrix.Dense

	// Predecessors[i][j] names the second-to-last hop of the recorded
	// shortest path i→j, or NoPredecessor when the cell is unreachable
	// or i == j.
	Predecessors [][]int

	// Steps is the chronological, append-only event log (nil in NoTrace mode).
	Steps []Step
}

// Cycle describes a cycle found in a converged distance matrix: either a
// single-vertex negative self-loop [i], or a two-hop round trip [i, j, i].
type Cycle struct {
	Vertices []int   // cycle vertex sequence
	Weight   float64 // total cycle weight
}
