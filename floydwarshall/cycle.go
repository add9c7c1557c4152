// Package floydwarshall: cycle detection over a converged distance matrix.
package floydwarshall

import (
	"github.com/SPIN0ZAi/Data-Structures-Visualizer-sub000/matrix"
)

// MinCycle inspects a converged distance matrix for the two simplest cycle
// shapes, with the self-loop check taking priority:
//
//  1. Negative self-loop: scan the diagonal for entries driven below zero
//     (the Floyd–Warshall signature of a negative cycle reachable from that
//     vertex). If any exist, the most negative one wins (lowest index on a
//     tie) and the single-vertex cycle [i] is returned immediately. A
//     negative self-loop dominates any round-trip search because it signals
//     the cost matrix itself is unbounded below.
//  2. Minimum round trip: otherwise scan every unordered pair {i, j}, i < j,
//     with both directions reachable, for the minimum
//     dist[i][j] + dist[j][i], returned as the three-vertex cycle [i, j, i].
//
// Returns (Cycle{}, false, nil) when neither shape exists: "no cycle" is a
// first-class non-finding, not an error.
//
// This is deliberately not a general minimum-mean-cycle detector: the two
// shapes above are the ones a visualization of small dense graphs can point
// at directly.
//
// Errors: ErrNilMatrix for nil input, ErrNonSquare for non-square input.
// Complexity: O(V²) time, O(1) extra space.
func MinCycle(dist matrix.Matrix) (Cycle, bool, error) {
	// Validate geometry the same way Solve does.
	if err := matrix.ValidateSquare(dist); err != nil {
		return Cycle{}, false, solverErrorf(opMinCycle, err)
	}

	n := dist.Rows()
	var (
		i, j int
		v    float64
	)

	// Pass 1: most negative diagonal entry, if any.
	bestLoop := -1
	var bestLoopW float64
	for i = 0; i < n; i++ {
		v, _ = dist.At(i, i) // safe after shape validation
		if v < 0 && (bestLoop == -1 || v < bestLoopW) {
			bestLoop = i
			bestLoopW = v
		}
	}
	if bestLoop >= 0 {
		return Cycle{Vertices: []int{bestLoop}, Weight: bestLoopW}, true, nil
	}

	// Pass 2: minimum two-hop round trip across unordered pairs.
	var (
		found       bool
		bi, bj      int
		bestW       float64
		there, back float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			there, _ = dist.At(i, j)
			if matrix.IsUnreachable(there) {
				continue
			}
			back, _ = dist.At(j, i)
			if matrix.IsUnreachable(back) {
				continue
			}
			v = there + back
			if !found || v < bestW {
				found = true
				bi, bj = i, j
				bestW = v
			}
		}
	}
	if found {
		return Cycle{Vertices: []int{bi, bj, bi}, Weight: bestW}, true, nil
	}

	// No cycle of either shape.
	return Cycle{}, false, nil
}
