// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), lifetime & safe accessors.
//
// Purpose:
//   - Provide a contiguous row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Make copy/move/release explicit so ownership and live counts stay exact.
//
// AI-Hints:
//   - Clone is the copy constructor, CopyFrom the copy assignment.
//   - Move is the move constructor, MoveFrom the move assignment; the source is left 0×0.
//   - Call Release when a matrix is no longer needed; it is the only way the live count drops.
//
// Complexity quicksheet:
//   - New/Clone/CopyFrom: O(r*c); At/Set/AtIndex/SetIndex: O(1); Move/MoveFrom/Release: O(1).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxAtIndex  = "AtIndex"  // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxSetIndex = "SetIndex" // method tag used in error wrappers
	ctxSetList  = "SetList"  // method tag used in error wrappers
	ctxNew      = "New"      // ctor tag
	ctxFrom     = "FromSlice"
	ctxCopyFrom = "CopyFrom"
	ctxMoveFrom = "MoveFrom"
)

// checkDims rejects negative dimensions and shapes whose element count overflows int.
func checkDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrInvalidDimensions
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return ErrInvalidDimensions
	}

	return nil
}

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
// Format: "Matrix.<method>(row,col): %w". Preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// linearErrorf is denseErrorf for linear-index accessors.
func linearErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Matrix.%s(%d): %w", method, idx, err)
}

// Matrix is a dense row-major matrix over the element kind T.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - released is set once by Release; the instance no longer counts as live.
//
// Each Matrix exclusively owns its buffer. Use Clone/CopyFrom for deep copies and
// Move/MoveFrom to hand the buffer over. Copying the struct value itself would alias
// the buffer; always pass *Matrix[T].
type Matrix[T Element] struct {
	r, c     int // row and column counts
	data     []T // contiguous row-major storage (len == r*c)
	released bool
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// New creates a rows×cols matrix with every element set to fill.
// MAIN DESCRIPTION:
//   - Public constructor with explicit shape and fill value.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0 and that rows*cols fits in int; else ErrInvalidDimensions.
//   - Stage 2: allocate the buffer and fill it in index order.
//   - Stage 3: record the construction in the live counter for T.
//
// Behavior highlights:
//   - Zero dimensions are legal and produce an empty matrix (no elements).
//   - The live counter is only touched on success.
//
// Errors:
//   - ErrInvalidDimensions (negative dimension or rows*cols overflow).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Use Zero for the 1×1 default; use FromSlice when the data is already known.
func New[T Element](rows, cols int, fill T) (*Matrix[T], error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, denseErrorf(ctxNew, rows, cols, err)
	}
	buf := make([]T, rows*cols)
	if fill != 0 {
		for i := range buf {
			buf[i] = fill
		}
	}
	trackNew[T]()

	return &Matrix[T]{r: rows, c: cols, data: buf}, nil
}

// Zero returns a 1×1 matrix holding the zero value of T.
// It is the no-argument form of New (rows=1, cols=1, fill=0).
func Zero[T Element]() *Matrix[T] {
	trackNew[T]()

	return &Matrix[T]{r: 1, c: 1, data: make([]T, 1)}
}

// FromSlice builds a rows×cols matrix from values given in row-major order.
// values is copied; len(values) must equal rows*cols.
//
// Errors: ErrInvalidDimensions (negative dimension or overflow), ErrDimensionMismatch (length).
// Complexity: O(r*c).
func FromSlice[T Element](rows, cols int, values []T) (*Matrix[T], error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, denseErrorf(ctxFrom, rows, cols, err)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("Matrix.%s: %d values for %dx%d: %w", ctxFrom, len(values), rows, cols, ErrDimensionMismatch)
	}
	buf := make([]T, len(values))
	copy(buf, values)
	trackNew[T]()

	return &Matrix[T]{r: rows, c: cols, data: buf}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Matrix[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the number of elements (rows*cols).
func (m *Matrix[T]) Len() int { return len(m.data) }

// IsEmpty reports whether the matrix holds no elements
// (zero-sized, moved-from or released).
func (m *Matrix[T]) IsEmpty() bool { return len(m.data) == 0 }

// Released reports whether Release has been called on m.
func (m *Matrix[T]) Released() bool { return m.released }

// Clone returns a deep copy of m as a new live instance (copy construction).
// MAIN DESCRIPTION:
//   - Produce an independent Matrix with identical shape and data.
//
// Implementation:
//   - Stage 1: allocate a new buffer len==r*c and copy.
//   - Stage 2: record the construction in the live counter.
//
// Behavior highlights:
//   - Independence: mutations of the clone never affect the original.
//   - Cloning an empty (moved-from or released) matrix yields a live empty matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)
	trackNew[T]()

	return &Matrix[T]{r: m.r, c: m.c, data: cp}
}

// CopyFrom replaces m's shape and contents with a deep copy of src (copy assignment).
// MAIN DESCRIPTION:
//   - Whole-object assignment; the live count does not change.
//
// Implementation:
//   - Stage 1: validate m and src are usable; self-assignment is a no-op.
//   - Stage 2: allocate a fresh buffer, copy, then swap it in (the old buffer is dropped).
//
// Errors:
//   - ErrNilMatrix (nil receiver or source), ErrReleased (receiver released).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix[T]) CopyFrom(src *Matrix[T]) error {
	if m == nil || src == nil {
		return fmt.Errorf("Matrix.%s: %w", ctxCopyFrom, ErrNilMatrix)
	}
	if m.released {
		return fmt.Errorf("Matrix.%s: %w", ctxCopyFrom, ErrReleased)
	}
	if m == src {
		return nil
	}
	cp := make([]T, len(src.data))
	copy(cp, src.data)
	m.r, m.c, m.data = src.r, src.c, cp

	return nil
}

// Move transfers m's buffer and shape into a new live instance (move construction).
// m is left empty (0×0, no buffer) but stays live: it must still be released.
// Moving an already-empty matrix yields an empty matrix.
// Complexity: O(1).
func (m *Matrix[T]) Move() *Matrix[T] {
	out := &Matrix[T]{r: m.r, c: m.c, data: m.data}
	m.r, m.c, m.data = 0, 0, nil
	trackNew[T]()

	return out
}

// MoveFrom takes over src's buffer and shape (move assignment).
// MAIN DESCRIPTION:
//   - m's previous buffer is dropped; src is left 0×0 with no buffer.
//
// Behavior highlights:
//   - Self-move is a no-op. Moving from an empty src makes m empty.
//   - Live counts do not change: both m and src remain live instances.
//
// Errors:
//   - ErrNilMatrix (nil receiver or source), ErrReleased (receiver released).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) MoveFrom(src *Matrix[T]) error {
	if m == nil || src == nil {
		return fmt.Errorf("Matrix.%s: %w", ctxMoveFrom, ErrNilMatrix)
	}
	if m.released {
		return fmt.Errorf("Matrix.%s: %w", ctxMoveFrom, ErrReleased)
	}
	if m == src {
		return nil
	}
	m.r, m.c, m.data = src.r, src.c, src.data
	src.r, src.c, src.data = 0, 0, nil

	return nil
}

// Release frees the buffer, zeroes the shape and decrements the live count for T.
// Safe on moved-from instances; calls after the first are no-ops, as is a nil receiver.
// Later use as an assignment target or arithmetic operand fails with ErrReleased.
// Complexity: O(1).
func (m *Matrix[T]) Release() {
	if m == nil || m.released {
		return
	}
	m.r, m.c, m.data = 0, 0, nil
	m.released = true
	trackRelease[T]()
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap with method name and coordinates.
// Complexity: O(1).
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the element at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// AtIndex returns the element at linear row-major index i or ErrOutOfRange.
// Valid indices are 0 <= i < Len().
// Complexity: O(1).
func (m *Matrix[T]) AtIndex(i int) (T, error) {
	if i < 0 || i >= len(m.data) {
		return 0, linearErrorf(ctxAtIndex, i, ErrOutOfRange)
	}

	return m.data[i], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// SetIndex stores v at linear row-major index i or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) SetIndex(i int, v T) error {
	if i < 0 || i >= len(m.data) {
		return linearErrorf(ctxSetIndex, i, ErrOutOfRange)
	}
	m.data[i] = v

	return nil
}

// SetList copies values into the buffer starting at index 0.
// MAIN DESCRIPTION:
//   - Bulk row-major assignment of a prefix of the matrix.
//
// Behavior highlights:
//   - Elements at indices >= len(values) are left unchanged.
//   - Nothing is written when the check fails.
//
// Errors:
//   - ErrReleased after Release.
//   - ErrDimensionMismatch when len(values) > Len().
//
// Complexity:
//   - Time O(len(values)), Space O(1).
func (m *Matrix[T]) SetList(values []T) error {
	if m.released {
		return fmt.Errorf("Matrix.%s: %w", ctxSetList, ErrReleased)
	}
	if len(values) > len(m.data) {
		return fmt.Errorf("Matrix.%s: %d values for %d elements: %w", ctxSetList, len(values), len(m.data), ErrDimensionMismatch)
	}
	copy(m.data, values)

	return nil
}

// Values returns a copy of the elements in row-major order.
func (m *Matrix[T]) Values() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Equal reports whether m and other have identical shape and elements.
// Two nil matrices are equal; nil never equals a non-nil matrix.
// Elements compare with ==, so a NaN element makes two float matrices unequal.
// Complexity: O(r*c) worst case; stops at the first difference.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}
