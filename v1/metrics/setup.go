package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing the export pipeline's self-metrics.
//
// It implements observability.Observer: plugging a *Metrics into an
// exporter's Observer field turns every export batch into counter and
// histogram samples.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// Each process maintains its own isolated registry to prevent metric
	// name collisions.
	Registry *prometheus.Registry

	// Core built-in metrics
	exportsTotal    *prometheus.CounterVec
	exportDuration  *prometheus.HistogramVec
	exportedRecords *prometheus.CounterVec
}

// NewMetrics initializes and returns a new instance of the Metrics struct.
// It sets up a dedicated Prometheus registry, registers the pipeline's
// built-in metrics, wraps all metrics with a constant `service` label, and
// creates an HTTP server exposing the /metrics endpoint.
//
// The built-in metrics:
//   - telemetry_exports_total{component, operation, status}: export batches
//     per backend component, partitioned by success/error
//   - telemetry_export_duration_seconds{component, operation}: latency of
//     the export call itself
//   - telemetry_exported_records_total{component, operation}: records
//     delivered, summed over batches
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{Address: ":9090"})
//	go m.Server.ListenAndServe()
//
//	exporters, _, _ := jsonl.NewExporters(jsonl.Config{
//	    SessionID: id,
//	    Observer:  m,
//	})
//
// Access metrics at: http://localhost:9090/metrics
func NewMetrics(cfg Config) *Metrics {
	cfg = cfg.withDefaults()

	// An isolated registry avoids metric collisions when multiple services
	// run in the same process.
	registry := prometheus.NewRegistry()

	// All metrics emitted by this instance automatically include the label:
	//   service="<cfg.ServiceName>"
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.exportsTotal = createCounterVec(
		"telemetry_exports_total",
		"Total number of export batches, partitioned by outcome",
		[]string{"component", "operation", "status"},
	)
	m.exportDuration = createHistogramVec(
		"telemetry_export_duration_seconds",
		"Duration of export calls in seconds",
		[]string{"component", "operation"},
		prometheus.DefBuckets,
	)
	m.exportedRecords = createCounterVec(
		"telemetry_exported_records_total",
		"Total number of spans and log records delivered to a backend",
		[]string{"component", "operation"},
	)

	wrappedRegistry.MustRegister(
		m.exportsTotal,
		m.exportDuration,
		m.exportedRecords,
	)

	// Standard collectors provide essential runtime metrics for Go
	// processes: memory usage, goroutines, GC stats, CPU, file descriptors
	// and binary build info.
	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}
	return m
}
