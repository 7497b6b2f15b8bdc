// SPDX-License-Identifier: MIT

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cxm/matrix"
)

func TestLiveGaugesTrackConstruction(t *testing.T) {
	gauges := NewLiveGauges()
	require.Len(t, gauges, len(matrix.Kinds()))

	i64 := gauges[matrix.KindInt64]
	before := testutil.ToFloat64(i64)

	m, err := matrix.New(2, 2, int64(3))
	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(i64))

	m.Release()
	assert.Equal(t, before, testutil.ToFloat64(i64))
}

func TestRegisterAndSnapshot(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, Register(reg))

	m, err := matrix.New(1, 1, float32(1))
	require.NoError(t, err)
	defer m.Release()

	snap, err := Snapshot(reg)
	require.NoError(t, err)
	require.Len(t, snap, len(matrix.Kinds()))
	for _, k := range matrix.Kinds() {
		assert.Equal(t, float64(matrix.LiveCount(k)), snap[k.String()], k.String())
	}
	assert.GreaterOrEqual(t, snap["float32"], 1.0)

	// second registration collides
	require.Error(t, Register(reg))
}
