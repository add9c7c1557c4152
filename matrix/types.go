// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types shared by the dense implementation and
// the algorithm packages built on top of it. Errors live in errors.go and
// validators in validators.go per the package conventions.
package matrix

// Weight represents a single cell of a cost or distance matrix. The codec in
// weight.go speaks Weight; as an alias of float64 it interchanges freely with
// raw cell storage. A positive-infinity value is the "unreachable" sentinel;
// all other values, including negatives, are ordinary edge costs.
type Weight = float64

// Matrix represents a two-dimensional mutable array of float64 values.
// *Dense is the canonical implementation; algorithm entry points accept the
// interface so callers may plug in their own storage, and fall back to
// At/Set when the value is not a *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
