// SPDX-License-Identifier: MIT

// Package metrics exports the matrix live-instance counters to Prometheus.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/katalvlaran/cxm/matrix"
)

// LiveMatricesName is the gauge family exported per element kind.
const LiveMatricesName = "cxm_live_matrices"

// kindLabel carries the element kind name.
const kindLabel = "kind"

// NewLiveGauges returns one GaugeFunc per element kind, each reading
// matrix.LiveCount at scrape time.
func NewLiveGauges() []prometheus.Collector {
	kinds := matrix.Kinds()
	out := make([]prometheus.Collector, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        LiveMatricesName,
			Help:        "Number of live matrices, by element kind.",
			ConstLabels: prometheus.Labels{kindLabel: k.String()},
		}, func() float64 { return float64(matrix.LiveCount(k)) }))
	}

	return out
}

// Register adds the live gauges to reg.
func Register(reg prometheus.Registerer) error {
	for _, c := range NewLiveGauges() {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("metrics: register %s: %w", LiveMatricesName, err)
		}
	}

	return nil
}

// Snapshot gathers g and returns the live gauge values keyed by kind name.
func Snapshot(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: gather: %w", err)
	}

	out := make(map[string]float64)
	for _, mf := range families {
		if mf.GetName() != LiveMatricesName || mf.GetType() != dto.MetricType_GAUGE {
			continue
		}
		for _, m := range mf.GetMetric() {
			out[labelValue(m, kindLabel)] = m.GetGauge().GetValue()
		}
	}

	return out, nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}

	return ""
}
