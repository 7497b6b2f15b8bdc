// Package cxm is a small dense-matrix toolkit: one generic value type and the
// plumbing around it.
//
// What is in the box?
//
//   - matrix: Matrix[T] over int32, int64, float32, float64 with construction,
//     copy/move/release, bounds-checked access, element-wise and matrix
//     arithmetic, and per-kind live counters.
//   - internal/metrics: live counters as Prometheus gauges.
//   - internal/demo: the D = A + B + C; D *= A*B*C walkthrough.
//   - cmd/cxm: CLI for the demo (cobra, YAML config, zerolog).
//
// Guarantees:
//
//   - Every precondition (bounds, shapes, zero divisor, element kind) is always
//     checked and reported as a sentinel error; nothing panics on user input.
//   - Value operators (Add, Sub, Mul, Scale, Div) never mutate their operands.
//   - Live counters are atomic per element kind.
//
// Quick start:
//
//	a, _ := matrix.FromSlice(2, 2, []float64{1, 2, 3, 4})
//	b, _ := matrix.FromSlice(2, 2, []float64{5, 6, 7, 8})
//	p, _ := matrix.Mul(a, b) // [[19 22] [43 50]]
//	defer a.Release(); defer b.Release(); defer p.Release()
package cxm
