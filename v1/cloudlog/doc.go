// Package cloudlog provides exporters that ship spans and log records to
// Google Cloud Logging as structured entries.
//
// Entries carry severity, trace and span id as first-class fields the
// service indexes (trace correlation uses the
// "projects/{project}/traces/{trace_id}" form), with the remaining record
// data in the JSON payload. Log record severity is derived from the
// OpenTelemetry severity number via v1/severity.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - SpanExporter implements sdktrace.SpanExporter
//   - LogExporter implements sdklog.Exporter
//   - The Cloud Logging client hides behind a narrow entrySink interface so
//     tests can substitute a fake without network access
//
// Core guarantees:
//   - Lazy client construction: the remote client is built on the first
//     export call, picking up ambient credentials that appear after process
//     startup. Constructors fail fast only on configuration errors.
//   - Failure isolation: remote errors are logged at warning level and
//     returned as the export result; they never propagate further than the
//     processor driving the exporter.
//   - Idempotent shutdown that closes the client only if it was ever built;
//     exports after shutdown fail with ErrShutdown and make no remote call.
//
// # Usage
//
//	exp, err := cloudlog.NewSpanExporter(cloudlog.Config{
//		ProjectID:   "my-project",
//		Environment: "prod",
//		Source:      "chat-api",
//	})
//	if err != nil {
//		return err
//	}
//	processor := sdktrace.NewBatchSpanProcessor(exp)
package cloudlog
