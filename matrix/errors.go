// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped with
// %w) and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap with "<Op>: %w" (see opErrorf),
// so errors.Is keeps matching the sentinel.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/released -> shape/index -> dimension mismatch -> divisor.

var (
	// ErrOutOfRange indicates that a row, column or linear index is outside
	// valid bounds. Public indexers (At/Set and friends) return this.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub of different shapes, Mul where a.Cols != b.Rows, or a value
	// list longer than the matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrDivisionByZero is returned by scalar division when the divisor is zero.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrUnsupportedElementKind is returned when a runtime kind name does not
	// resolve to a supported element kind.
	ErrUnsupportedElementKind = errors.New("matrix: unsupported element kind")

	// ErrInvalidDimensions indicates that requested dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrReleased indicates a matrix used as a target or operand after Release.
	ErrReleased = errors.New("matrix: matrix released")
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
// Kept so errors.Is(err, ErrIndexOutOfBounds) remains true for older callers.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
