// Package matrix is the coefficient storage handed to the solver: the
// constraint block A of a linear model, one row per constraint and one column
// per structural variable.
//
// The package provides:
//
//   - Matrix, a small interface (Rows, Cols, At, Set, Clone) so callers can
//     plug in their own storage.
//   - Dense, a row-major implementation with bounds-checked accessors.
//   - Validators (ValidateNotNil, ValidateFinite, ValidateVecLen) that the
//     tableau builder runs before accepting a model.
//   - MatVec for row activities a_i·x at a candidate point.
//
// Coefficients must be finite; infinities belong in row and variable bounds.
// Every failure is a sentinel (ErrOutOfRange, ErrNaNInf, ...) matched with
// errors.Is. No function panics on user-triggered conditions.
package matrix
