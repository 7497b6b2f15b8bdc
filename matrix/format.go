// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtCellSep = "\t"
	_fmtRowEnd  = "\n"
)

// String renders the matrix row by row: every element is followed by a tab
// and every row ends with a newline. An empty matrix renders as "".
// Complexity: O(r*c).
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprint(&b, m.data[base+j])
			b.WriteString(_fmtCellSep)
		}
		b.WriteString(_fmtRowEnd)
	}

	return b.String()
}

// Print writes a blank line followed by String() to w.
// It never alters the matrix.
func (m *Matrix[T]) Print(w io.Writer) error {
	if _, err := io.WriteString(w, _fmtRowEnd+m.String()); err != nil {
		return fmt.Errorf("Matrix.Print: %w", err)
	}

	return nil
}
