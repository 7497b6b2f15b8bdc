// SPDX-License-Identifier: MIT

package matrix_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/cxm/matrix"
	"github.com/stretchr/testify/require"
)

// TestCounterLaw checks live = base + constructions - releases at every step.
func TestCounterLaw(t *testing.T) {
	base := matrix.Count[int64]()

	a := MustNew(t, 2, 2, int64(1)) // +1
	require.Equal(t, base+1, matrix.Count[int64]())

	b := a.Clone() // +1 (copy construction)
	require.Equal(t, base+2, matrix.Count[int64]())

	c := b.Move() // +1 (move construction); b stays live
	require.Equal(t, base+3, matrix.Count[int64]())

	sum, err := matrix.Add(a, c) // +1
	require.NoError(t, err)
	require.Equal(t, base+4, matrix.Count[int64]())

	require.NoError(t, a.CopyFrom(sum)) // assignment: unchanged
	require.NoError(t, a.MoveFrom(c))   // assignment: unchanged
	require.Equal(t, base+4, matrix.Count[int64]())

	for i, m := range []*matrix.Matrix[int64]{a, b, c, sum} {
		m.Release()
		require.Equal(t, base+3-int64(i), matrix.Count[int64]())
	}
}

// TestCounterPerKind checks kinds are counted independently.
func TestCounterPerKind(t *testing.T) {
	i32 := matrix.LiveCount(matrix.KindInt32)
	f64 := matrix.LiveCount(matrix.KindFloat64)

	m := MustNew(t, 1, 1, int32(0))
	require.Equal(t, i32+1, matrix.Count[int32]())
	require.Equal(t, f64, matrix.LiveCount(matrix.KindFloat64))

	m.Release()
	require.Equal(t, i32, matrix.LiveCount(matrix.KindInt32))

	require.Zero(t, matrix.LiveCount(matrix.Kind(200)))
}

// TestCounterConcurrent checks no updates are lost under concurrent construction/release.
func TestCounterConcurrent(t *testing.T) {
	const workers, perWorker = 8, 500
	base := matrix.Count[float32]()

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				m, err := matrix.New(2, 2, float32(i))
				if err != nil {
					t.Error(err)
					return
				}
				cp := m.Clone()
				m.Release()
				cp.Release()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, base, matrix.Count[float32]())
}
