// SPDX-License-Identifier: MIT
// Package tableau: sentinel error set.
//
// Two families live here and must never be conflated:
//   - model-shape errors returned by New (the caller handed us a malformed model);
//   - contract violations (the caller misused a Tableau: restore before save,
//     a cut on a variable that does not exist). Every contract sentinel wraps
//     ErrContractViolation so callers can separate programmer errors from data.
//
// Infeasibility and unboundedness are NOT errors; they are reported through
// Feasible() and Bounded() after Solve.

package tableau

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyProblem is returned when the objective has no coefficients.
	ErrEmptyProblem = errors.New("tableau: problem has no variables")

	// ErrDimensionMismatch indicates that a vector (bounds, flags) or the
	// constraint matrix disagrees with the number of variables or rows.
	ErrDimensionMismatch = errors.New("tableau: dimension mismatch")

	// ErrNaN signals a NaN in the objective, the bounds or a cut value.
	ErrNaN = errors.New("tableau: NaN value")

	// ErrInfiniteCost signals a ±Inf objective coefficient.
	ErrInfiniteCost = errors.New("tableau: infinite objective coefficient")

	// ErrBadPrecision is returned by New when WithPrecision got a value
	// that is not strictly positive and finite.
	ErrBadPrecision = errors.New("tableau: precision must be > 0")

	// ErrPivotLimit is returned by Solve when the pivot budget is exhausted.
	ErrPivotLimit = errors.New("tableau: pivot limit reached")

	// ErrInvariant reports a broken basis/bounds invariant after a solve.
	// Seeing it means a pivoting bug, not bad input.
	ErrInvariant = errors.New("tableau: invariant violated")
)

// ErrContractViolation is the parent of every misuse sentinel below.
var ErrContractViolation = errors.New("tableau: contract violation")

var (
	// ErrNoSnapshot is returned by Restore when Save was never called.
	ErrNoSnapshot = fmt.Errorf("%w: restore without a saved snapshot", ErrContractViolation)

	// ErrSnapshotExists is returned by a second Save; the restore point is
	// the root relaxation and must not move once branching has started.
	ErrSnapshotExists = fmt.Errorf("%w: snapshot already saved", ErrContractViolation)

	// ErrCutOutOfRange is returned when a cut targets a non-existent variable.
	ErrCutOutOfRange = fmt.Errorf("%w: cut variable index out of range", ErrContractViolation)

	// ErrUnknownCutKind is returned for a CutKind outside {CutMin, CutMax}.
	ErrUnknownCutKind = fmt.Errorf("%w: unknown cut kind", ErrContractViolation)

	// ErrVariableIndex is returned by per-variable accessors on a bad index.
	ErrVariableIndex = fmt.Errorf("%w: variable index out of range", ErrContractViolation)
)
