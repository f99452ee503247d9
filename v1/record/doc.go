// Package record defines the JSON-safe snapshot model for finished spans
// and log records.
//
// The file exporters (v1/jsonl) and the Cloud Logging exporters
// (v1/cloudlog) both need a stable, serialization-friendly view of the
// SDK's read-only records. This package owns the coercion rules:
//
//   - timestamps -> RFC3339Nano strings in UTC
//   - trace ids -> 32-char lower-case hex, span ids -> 16-char hex
//   - byte blobs -> hex strings
//   - enum-ish values (span kind, status code) -> their stable string names
//
// Optional fields (parent span id, end time, trace correlation on logs) are
// encoded as explicit JSON nulls so every serialized record carries the full
// schema and round-trips without loss.
package record
