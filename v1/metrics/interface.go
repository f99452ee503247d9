package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/trailhead-ai/telemetry/v1/observability"
)

// Collector provides an interface for collecting and exposing the export
// pipeline's self-metrics. It combines the observability.Observer contract
// exporters report through with factories for custom metrics.
//
// This interface is implemented by the concrete *Metrics type.
type Collector interface {
	observability.Observer

	// Dynamic metric factories

	// CreateCounter creates a new CounterVec metric and registers it.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateHistogram creates a new HistogramVec metric and registers it.
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec

	// CreateGauge creates a new GaugeVec metric and registers it.
	CreateGauge(name, help string, labels []string) *prometheus.GaugeVec
}
