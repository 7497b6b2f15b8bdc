// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating nil/shape/divisor checks here.
//  - Return sentinel errors wrapped only with the validator tag, so call sites
//    can add their operation tag uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil and not released.
//
// Returns ErrNilMatrix if m == nil, ErrReleased after m.Release().
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil[T Element](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if m.released {
		return validatorErrorf("ValidateNotNil", ErrReleased)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for Add/Sub kernels.
func ValidateSameShape[T Element](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a×b is defined: a.Cols() == b.Rows().
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Element](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulSymmetric ensures both a×b and b×a are defined:
// a.Cols() == b.Rows() and b.Cols() == a.Rows().
// Mul does not require this; it is offered for callers that alternate operand order.
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulSymmetric[T Element](a, b *Matrix[T]) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return validatorErrorf("ValidateMulSymmetric", err)
	}
	if b.c != a.r {
		return validatorErrorf("ValidateMulSymmetric", ErrDimensionMismatch)
	}

	return nil
}

// ValidateDivisor rejects a zero scalar divisor for every element kind.
// For floats both +0 and -0 are rejected.
//
// Errors: ErrDivisionByZero.
// Complexity: O(1).
func ValidateDivisor[T Element](x T) error {
	if x == 0 {
		return validatorErrorf("ValidateDivisor", ErrDivisionByZero)
	}

	return nil
}
