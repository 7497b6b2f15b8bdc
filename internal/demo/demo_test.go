// SPDX-License-Identifier: MIT

package demo

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cxm/internal/config"
	"github.com/katalvlaran/cxm/matrix"
)

// block renders a size×size matrix of v the way Matrix.Print does.
func block(size int, v string) string {
	row := strings.Repeat(v+"\t", size) + "\n"
	return "\n" + strings.Repeat(row, size)
}

func TestRunDefaultScenario(t *testing.T) {
	var out bytes.Buffer
	before := matrix.Count[float64]()

	require.NoError(t, Run(config.DefaultConfig(), &out, zerolog.Nop()))

	assert.Equal(t, block(3, "6")+block(3, "972"), out.String())
	assert.Equal(t, before, matrix.Count[float64](), "every matrix is released")
}

func TestRunIntegerKind(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Kind = "int"
	cfg.Size = 2

	var out bytes.Buffer
	require.NoError(t, Run(cfg, &out, zerolog.Nop()))
	assert.Equal(t, block(2, "6")+block(2, "288"), out.String())
}

func TestRunWritesLiveCounts(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Kind = "long"
	cfg.Size = 1
	cfg.Metrics = true
	base := matrix.LiveCount(matrix.KindInt64)

	var out bytes.Buffer
	require.NoError(t, Run(cfg, &out, zerolog.Nop()))

	// A, B, C, D and four intermediates are live when the counts are read.
	assert.Contains(t, out.String(), fmt.Sprintf("live int64 %d\n", base+8))
	assert.Contains(t, out.String(), "live float32 ")
	assert.Equal(t, base, matrix.LiveCount(matrix.KindInt64))
}

func TestRunLogs(t *testing.T) {
	var logs, out bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)

	require.NoError(t, Run(config.DefaultConfig(), &out, logger))
	assert.Contains(t, logs.String(), "demo: D = A + B + C")
	assert.Contains(t, logs.String(), `"live"`)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Kind = "uint8"

	err := Run(cfg, &bytes.Buffer{}, zerolog.Nop())
	require.ErrorIs(t, err, matrix.ErrUnsupportedElementKind)

	cfg = config.DefaultConfig()
	cfg.Size = 0
	require.ErrorIs(t, Run(cfg, &bytes.Buffer{}, zerolog.Nop()), config.ErrInvalidConfig)

	var out bytes.Buffer
	cfg = config.DefaultConfig()
	cfg.Kind = "int"
	cfg.Fills = []float64{1.5, 2, 3}
	require.ErrorIs(t, Run(cfg, &out, zerolog.Nop()), config.ErrInvalidConfig)
	require.Zero(t, out.Len())
}
