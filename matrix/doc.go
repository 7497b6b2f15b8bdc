// SPDX-License-Identifier: MIT

// Package matrix provides Matrix[T], a small dense row-major matrix value
// type over a closed set of fixed-width numeric element kinds.
//
// The package provides:
//
//   - Construction with explicit shape and fill (New, Zero, FromSlice) and
//     explicit lifetime operations mirroring copy/move semantics
//     (Clone, CopyFrom, Move, MoveFrom, Release).
//   - Bounds-checked element access (At, AtIndex, Set, SetIndex, SetList).
//   - Compound in-place arithmetic (AddInPlace, SubInPlace, MulInPlace,
//     ScaleInPlace, DivInPlace, Neg, Abs) and value-returning arithmetic
//     (Add, Sub, Mul, Scale, Div) that never touch their operands.
//   - A process-wide atomic live-instance counter per element kind
//     (Count, LiveCount).
//
// Every precondition (index bounds, operand shapes, zero divisor, unknown
// element kind) is always checked and reported as a sentinel error from
// errors.go; callers match with errors.Is. Nothing here panics on user input.
//
// Multiplication uses the standard rule a.Cols() == b.Rows(). The stricter
// "both products defined" rule is available through ValidateMulSymmetric for
// callers that need it.
package matrix
