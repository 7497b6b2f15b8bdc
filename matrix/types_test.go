// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cxm/matrix"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	require.Equal(t, matrix.KindInt32, matrix.KindOf[int32]())
	require.Equal(t, matrix.KindInt64, matrix.KindOf[int64]())
	require.Equal(t, matrix.KindFloat32, matrix.KindOf[float32]())
	require.Equal(t, matrix.KindFloat64, matrix.KindOf[float64]())
}

func TestParseKind(t *testing.T) {
	cases := map[string]matrix.Kind{
		"int32":    matrix.KindInt32,
		"int":      matrix.KindInt32,
		"INT64":    matrix.KindInt64,
		"long":     matrix.KindInt64,
		"float":    matrix.KindFloat32,
		" double ": matrix.KindFloat64,
		"Float64":  matrix.KindFloat64,
		"float32":  matrix.KindFloat32,
	}
	for in, want := range cases {
		got, err := matrix.ParseKind(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "int16", "complex128", "uint32"} {
		_, err := matrix.ParseKind(bad)
		require.ErrorIs(t, err, matrix.ErrUnsupportedElementKind, bad)
	}
}

func TestKindString(t *testing.T) {
	names := make([]string, 0, 4)
	for _, k := range matrix.Kinds() {
		require.True(t, k.Valid())
		names = append(names, k.String())
	}
	require.Equal(t, []string{"int32", "int64", "float32", "float64"}, names)
	require.Equal(t, "kind(9)", matrix.Kind(9).String())
	require.False(t, matrix.Kind(9).Valid())
}
