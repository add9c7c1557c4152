// Package floydwarshall: shortest-path reconstruction from the predecessor table.
package floydwarshall

// ReconstructPath rebuilds the concrete vertex sequence of the shortest path
// from source to destination out of a predecessor table produced by Solve.
//
// Returns:
//
//   - nil (and no error) when pred[source][destination] == NoPredecessor:
//     "no path" is a first-class outcome, not an error. This covers the
//     degenerate source == destination case with no self-loop recorded.
//   - otherwise an ordered vertex sequence starting with source and ending
//     with destination, of length hops+1. Every consecutive pair corresponds
//     to an edge improvement the solver actually recorded.
//
// Errors (all fail-fast precondition violations, never retried):
//
//   - ErrNilPredecessors    if pred is nil.
//   - ErrRaggedPredecessors if pred is not n×n.
//   - ErrVertexOutOfRange   if source or destination lies outside [0, n).
//
// Precondition: pred must be a table Solve returned for some cost matrix.
// A corrupted table whose back-chain never reaches source would loop forever;
// that is an invariant violation of the solver's output, not a case this
// walk defends against.
//
// Complexity: O(hops) time, O(hops) memory.
func ReconstructPath(pred [][]int, source, destination int) ([]int, error) {
	// 1) Validate the table shape.
	if pred == nil {
		return nil, ErrNilPredecessors
	}
	n := len(pred)
	var i int
	for i = 0; i < n; i++ {
		if len(pred[i]) != n {
			return nil, ErrRaggedPredecessors
		}
	}

	// 2) Validate the endpoints.
	if source < 0 || source >= n || destination < 0 || destination >= n {
		return nil, ErrVertexOutOfRange
	}

	// 3) No recorded predecessor means no path, an empty error-free result.
	if pred[source][destination] == NoPredecessor {
		return nil, nil
	}

	// 4) Walk backward from destination via pred[source][current] until the
	//    chain reaches source, collecting vertices as we go.
	path := []int{destination}
	current := destination
	for current != source {
		current = pred[source][current]
		path = append(path, current)
	}

	// 5) Reverse in place: the walk produced destination→…→source.
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, nil
}
