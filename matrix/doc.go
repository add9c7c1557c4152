// Package matrix offers the dense square-matrix foundation of the
// shortest-path engine.
//
// The matrix package provides:
//
//   - Dense, a flat row-major float64 matrix with O(1) cell access and
//     O(n²) memory, plus bulk ingestion (FromRows, Fill) and snapshot
//     accessors (Row, RowsCopy) for replay consumers.
//   - The Matrix interface, preserved so algorithm entry points accept
//     caller-supplied storage with *Dense as the fast path.
//   - Centralized validators (ValidateNotNil, ValidateSquare,
//     ValidateSameShape) returning the package's sentinel errors.
//   - The weight codec: FormatWeight/ParseWeight translate cells to and
//     from their display form, with "∞" (and its textual spellings) as the
//     unreachable "no edge" sentinel.
//
// Dense matrices are best for small or dense graphs where O(n²) memory is
// acceptable, which is exactly the regime the engine targets (graphs small enough
// to visualize).
//
// See the examples in this package and floydwarshall for usage patterns.
package matrix
