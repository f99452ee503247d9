// Package metrics provides Prometheus-based self-metrics for the telemetry
// export pipeline.
//
// The pipeline observes the application; this package observes the pipeline.
// Every exporter accepts an optional observability.Observer, and *Metrics is
// the production implementation of that contract: each export batch becomes
// an exports_total increment, a duration histogram sample, and a record
// count, labelled by backend component and operation.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Collector interface: Defines the contract for metrics operations
//   - Metrics struct: Concrete implementation of the Collector interface
//   - NewMetrics constructor: Returns *Metrics (concrete type)
//   - FX module: Provides *Metrics and its lifecycle for dependency injection
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create metrics directly:
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:                 ":9090",
//		EnableDefaultCollectors: true,
//	})
//	go m.Server.ListenAndServe()
//
//	s, err := session.Configure(session.Config{
//		Backend:  session.BackendJSONL,
//		Observer: m,
//	})
//
// Access metrics at: http://localhost:9090/metrics
//
// # Custom Metrics
//
// Applications can register additional Prometheus metrics through the
// factory methods or the exposed Registry:
//
//	dropped := m.CreateCounter("telemetry_dropped_records_total",
//		"Records dropped before reaching an exporter", []string{"reason"})
//	dropped.WithLabelValues("queue_full").Inc()
//
// # Thread Safety
//
// All methods on the Metrics struct and Prometheus collectors are safe for
// concurrent use by multiple goroutines.
package metrics
