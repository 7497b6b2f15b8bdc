// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for constructors and kernels.
//   • Keep tests sequential: live counters are process-wide, so no test in this
//     package calls t.Parallel.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cxm/matrix"
)

// MustNew ALLOCATES an r×c matrix filled with v or fails the test.
func MustNew[T matrix.Element](tb testing.TB, r, c int, v T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New(r, c, v)
	if err != nil {
		tb.Fatalf("New(%d,%d,%v): %v", r, c, v, err)
	}

	return m
}

// MustFromSlice BUILDS an r×c matrix from row-major values or fails the test.
func MustFromSlice[T matrix.Element](tb testing.TB, r, c int, vals []T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.FromSlice(r, c, vals)
	if err != nil {
		tb.Fatalf("FromSlice(%d,%d): %v", r, c, err)
	}

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt[T matrix.Element](tb testing.TB, m *matrix.Matrix[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// release frees every matrix in ms at test cleanup.
func release[T matrix.Element](tb testing.TB, ms ...*matrix.Matrix[T]) {
	tb.Helper()
	tb.Cleanup(func() {
		for _, m := range ms {
			m.Release()
		}
	})
}
