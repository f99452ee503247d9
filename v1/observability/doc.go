// Package observability defines the observer contract shared by the
// telemetry packages.
//
// Components in this library (the JSONL and Cloud Logging exporters, the
// session lifecycle) report every significant operation as an
// OperationContext to an optional Observer. Wiring an Observer is how the
// pipeline observes itself without creating an import cycle between the
// exporters and the metrics package.
//
// # Usage
//
//	obs := metrics.NewMetrics(metrics.Config{ServiceName: "api"})
//
//	exp, err := jsonl.NewSpanExporter(jsonl.Config{
//		SessionID: sessionID,
//		Observer:  obs,
//	})
//
// A nil Observer is always legal; components skip reporting entirely when
// none is configured.
package observability
