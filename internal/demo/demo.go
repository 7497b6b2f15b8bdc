// SPDX-License-Identifier: MIT

// Package demo runs the classic cxm scenario:
//
//	A, B, C := size×size filled with fills[0..2]; D := zero
//	D = A + B + C; print D
//	D *= A * B * C; print D
//
// The operands are never mutated by the value operators, so A, B and C keep
// their fills for the second step.
package demo

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/cxm/internal/config"
	"github.com/katalvlaran/cxm/internal/metrics"
	"github.com/katalvlaran/cxm/matrix"
)

// Run validates cfg and executes the scenario for the configured element kind,
// writing both renderings of D to w.
func Run(cfg *config.Config, w io.Writer, logger zerolog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	kind, _ := cfg.ElementKind() // validated above

	logger.Debug().Str("kind", kind.String()).Int("size", cfg.Size).Msg("demo: start")

	var err error
	switch kind {
	case matrix.KindInt32:
		err = run[int32](cfg, w, logger)
	case matrix.KindInt64:
		err = run[int64](cfg, w, logger)
	case matrix.KindFloat32:
		err = run[float32](cfg, w, logger)
	default:
		err = run[float64](cfg, w, logger)
	}
	if err != nil {
		return fmt.Errorf("demo: %s: %w", kind, err)
	}

	return nil
}

// run is the scenario for one element kind. Every matrix it creates is released
// before it returns.
func run[T matrix.Element](cfg *config.Config, w io.Writer, logger zerolog.Logger) error {
	var live []*matrix.Matrix[T]
	defer func() {
		for _, m := range live {
			m.Release()
		}
	}()
	keep := func(m *matrix.Matrix[T]) *matrix.Matrix[T] {
		live = append(live, m)
		return m
	}

	operands := make([]*matrix.Matrix[T], 0, config.FillCount)
	for _, fill := range cfg.Fills {
		m, err := matrix.New(cfg.Size, cfg.Size, T(fill))
		if err != nil {
			return err
		}
		operands = append(operands, keep(m))
	}
	a, b, c := operands[0], operands[1], operands[2]
	d := keep(matrix.Zero[T]())

	ab, err := matrix.Add(a, b)
	if err != nil {
		return err
	}
	abc, err := matrix.Add(keep(ab), c)
	if err != nil {
		return err
	}
	if err := d.MoveFrom(keep(abc)); err != nil {
		return err
	}
	logger.Debug().Int("rows", d.Rows()).Int("cols", d.Cols()).Msg("demo: D = A + B + C")
	if err := d.Print(w); err != nil {
		return err
	}

	pab, err := matrix.Mul(a, b)
	if err != nil {
		return err
	}
	pabc, err := matrix.Mul(keep(pab), c)
	if err != nil {
		return err
	}
	if err := d.MulInPlace(keep(pabc)); err != nil {
		return err
	}
	logger.Debug().Int("rows", d.Rows()).Int("cols", d.Cols()).Msg("demo: D *= A * B * C")
	if err := d.Print(w); err != nil {
		return err
	}

	logger.Info().
		Str("kind", matrix.KindOf[T]().String()).
		Int64("live", matrix.Count[T]()).
		Msg("demo: done")

	if cfg.Metrics {
		return writeLive(w)
	}

	return nil
}

// writeLive prints one "live <kind> <n>" line per element kind, read back
// through a private Prometheus registry.
func writeLive(w io.Writer) error {
	reg := prometheus.NewRegistry()
	if err := metrics.Register(reg); err != nil {
		return err
	}
	snap, err := metrics.Snapshot(reg)
	if err != nil {
		return err
	}
	for _, k := range matrix.Kinds() {
		if _, err := fmt.Fprintf(w, "live %s %d\n", k, int64(snap[k.String()])); err != nil {
			return err
		}
	}

	return nil
}
