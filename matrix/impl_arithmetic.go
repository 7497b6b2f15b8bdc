// SPDX-License-Identifier: MIT
// Package matrix provides element-wise addition and subtraction, matrix
// multiplication, scalar scaling/division, negation and absolute value for
// Matrix[T]. All operations validate their operands first and return clear
// errors on dimension mismatches or zero divisors.
//
// Purpose:
//   - Compound forms (XxxInPlace, Neg, Abs) mutate the receiver, like +=, -=, *=, /=.
//   - Value forms (Add, Sub, Mul, Scale, Div) allocate a new live instance and
//     never mutate their operands, so D = A + B + C leaves A, B and C untouched.
//
// Notes:
//   - Validation always precedes the first write; a failed call leaves the receiver intact.
//   - Errors are wrapped via matrixErrorf with the op* tags below.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opScale      = "Scale"
	opDiv        = "Div"
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
	opMulInPlace = "MulInPlace"
	opDivInPlace = "DivInPlace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ---------- Kernels (operate on validated operands; no checks inside) ----------

// addSubInto computes dst[i] += sign*b[i] over the flat buffers.
// sign is +1 for addition, -1 for subtraction; for integer kinds the
// multiplication by ±1 is exact.
func addSubInto[T Element](dst, b []T, sign T) {
	for i := range dst {
		dst[i] += sign * b[i]
	}
}

// mulKernel returns the row-major buffer of a×b.
// Implementation:
//   - Fixed i (outer) → j (middle) → k (inner) order.
//   - The accumulator is reset to zero before every (i,j) pair.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) for the result buffer.
//
// Notes:
//   - Callers must have validated a.c == b.r.
func mulKernel[T Element](a, b *Matrix[T]) []T {
	rows, inner, cols := a.r, a.c, b.c
	out := make([]T, rows*cols)

	var (
		i, j, k    int
		rowOffsetA int
		acc        T
	)
	for i = 0; i < rows; i++ {
		rowOffsetA = i * inner
		for j = 0; j < cols; j++ {
			acc = 0
			for k = 0; k < inner; k++ {
				acc += a.data[rowOffsetA+k] * b.data[k*cols+j]
			}
			out[i*cols+j] = acc
		}
	}

	return out
}

// ---------- Compound (in-place) forms ----------

// Neg negates every element in place and returns the receiver itself.
// It is a destructive unary minus: the operand is mutated, no new value is made.
// For integer kinds the minimum value wraps to itself.
// Complexity: O(r*c).
func (m *Matrix[T]) Neg() *Matrix[T] {
	for i := range m.data {
		m.data[i] = -m.data[i]
	}

	return m
}

// AddInPlace performs m += b element-wise.
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch (m is untouched on error).
// Complexity: O(r*c).
func (m *Matrix[T]) AddInPlace(b *Matrix[T]) error {
	if err := ValidateSameShape(m, b); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	addSubInto(m.data, b.data, 1)

	return nil
}

// SubInPlace performs m -= b element-wise.
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch (m is untouched on error).
// Complexity: O(r*c).
func (m *Matrix[T]) SubInPlace(b *Matrix[T]) error {
	if err := ValidateSameShape(m, b); err != nil {
		return matrixErrorf(opSubInPlace, err)
	}
	addSubInto(m.data, b.data, -1)

	return nil
}

// MulInPlace performs m = m × b (whole-object replacement).
// MAIN DESCRIPTION:
//   - Compute the product into a fresh buffer, then swap it in; m takes the
//     shape m.Rows()×b.Cols().
//
// Behavior highlights:
//   - m.MulInPlace(m) is legal for square m: the kernel reads the old buffer only.
//   - No temporary Matrix is created, so live counts do not change.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch (m.Cols() != b.Rows()).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Matrix[T]) MulInPlace(b *Matrix[T]) error {
	if err := ValidateMulCompatible(m, b); err != nil {
		return matrixErrorf(opMulInPlace, err)
	}
	out := mulKernel(m, b)
	m.c, m.data = b.c, out

	return nil
}

// ScaleInPlace multiplies every element by x.
// Complexity: O(r*c).
func (m *Matrix[T]) ScaleInPlace(x T) {
	for i := range m.data {
		m.data[i] *= x
	}
}

// DivInPlace divides every element by x.
// Integer kinds use Go's truncated division.
// Errors: ErrDivisionByZero when x == 0 (m is untouched).
// Complexity: O(r*c).
func (m *Matrix[T]) DivInPlace(x T) error {
	if err := ValidateDivisor(x); err != nil {
		return matrixErrorf(opDivInPlace, err)
	}
	for i := range m.data {
		m.data[i] /= x
	}

	return nil
}

// Abs replaces every negative element with its additive inverse, in place.
// Non-negative elements are unchanged.
// Complexity: O(r*c).
func (m *Matrix[T]) Abs() {
	for i, v := range m.data {
		if v < 0 {
			m.data[i] = -v
		}
	}
}

// ---------- Value forms (fresh result; operands never mutated) ----------

// Add computes C = A + B and returns a new live matrix.
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: clone a's buffer and add b in a single flat loop.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Element](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := a.Clone()
	addSubInto(res.data, b.data, 1)

	return res, nil
}

// Sub computes C = A - B and returns a new live matrix.
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub[T Element](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res := a.Clone()
	addSubInto(res.data, b.data, -1)

	return res, nil
}

// Mul computes the matrix product C = A × B and returns a new live matrix.
// Implementation:
//   - Stage 1: ValidateMulCompatible (a.Cols() == b.Rows()).
//   - Stage 2: i→j→k triple loop with the accumulator reset per (i,j).
//
// Returns:
//   - *Matrix[T] with shape a.Rows()×b.Cols().
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Use ValidateMulSymmetric first if you also need b×a to be defined.
func Mul[T Element](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out := mulKernel(a, b)
	trackNew[T]()

	return &Matrix[T]{r: a.r, c: b.c, data: out}, nil
}

// Scale computes x·A and returns a new live matrix.
// Errors: ErrNilMatrix, ErrReleased.
func Scale[T Element](a *Matrix[T], x T) (*Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := a.Clone()
	res.ScaleInPlace(x)

	return res, nil
}

// Div computes A / x and returns a new live matrix.
// Errors: ErrNilMatrix, ErrReleased, ErrDivisionByZero.
func Div[T Element](a *Matrix[T], x T) (*Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	if err := ValidateDivisor(x); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	res := a.Clone()
	for i := range res.data {
		res.data[i] /= x
	}

	return res, nil
}
