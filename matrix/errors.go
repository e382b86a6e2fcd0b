// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and accessors MUST return these sentinels and tests MUST
// check them via errors.Is. No function panics on user-triggered conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency. Callers that
// need context wrap with fmt.Errorf("ctx: %w", ErrX); errors.Is still matches.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRaggedRows is returned by NewDenseFromRows when the input rows
	// do not all share the length of the first row.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// (constraint coefficients must be finite; bounds carry the infinities).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates a vector whose length disagrees with
	// the matrix shape it is paired with.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
