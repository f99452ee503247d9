// Package jsonl provides file exporters that append telemetry records as
// newline-delimited JSON, one object per line, to a session-scoped file.
//
// The output is meant for local debugging and test assertions: every line
// independently parses as a complete JSON document, and all record fields
// round-trip through serialization (timestamps as RFC3339Nano strings,
// identifiers and byte blobs as hex).
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - SpanExporter implements sdktrace.SpanExporter
//   - LogExporter implements sdklog.Exporter
//   - NewExporters builds both over a single shared session file
//   - NewSpanExporter / NewLogExporter build standalone exporters
//
// Core guarantees:
//   - Thread safety: one mutex serializes the whole serialize+write loop of
//     a batch, so concurrent exports never interleave partial lines
//   - Fail-closed after shutdown: exports return ErrShutdown with no I/O
//   - Idempotent shutdown; an externally supplied writer is never closed
//   - Empty batches are free: immediate success, no I/O
//
// # Usage
//
//	spanExp, logExp, err := jsonl.NewExporters(jsonl.Config{
//		SessionID: "session_20260203_123000_000001",
//		Dir:       "./logs",
//	})
//	if err != nil {
//		return err
//	}
//	processor := sdktrace.NewBatchSpanProcessor(spanExp)
//
// # Limitations
//
// The mutex is in-process only. Two OS processes appending to the same
// session file are not coordinated; give each process its own session.
package jsonl
