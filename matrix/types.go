// SPDX-License-Identifier: MIT

// Package matrix: the coefficient-matrix contract consumed by model builders.
// This file intentionally contains ONLY the public Matrix interface; errors and
// validators live in dedicated files (errors.go, validators.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// A constraint matrix handed to tableau.New is read through this interface,
// one row per constraint and one column per structural variable, so callers
// may plug in any storage layout (dense, sparse, memory-mapped).
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
