package observability

import "time"

// OperationContext captures a single observed operation performed by one of
// the telemetry packages. It is the payload passed to an Observer and is the
// common vocabulary between the exporters and any metrics/tracing sink.
type OperationContext struct {
	// Component is the package reporting the operation, e.g. "jsonl",
	// "cloudlog" or "session".
	Component string

	// Operation is the action performed, e.g. "export_spans", "export_logs",
	// "flush" or "shutdown".
	Operation string

	// Resource identifies the destination being operated on.
	// For file exporters this is the file path, for cloud exporters the
	// project identifier.
	Resource string

	// SubResource carries additional context, e.g. the session identifier.
	SubResource string

	// Duration is how long the operation took.
	Duration time.Duration

	// Error is the error returned by the operation, or nil on success.
	Error error

	// Size is the number of records handled by the operation.
	Size int64

	// Metadata carries optional operation-specific key/value pairs.
	Metadata map[string]interface{}
}

// Observer receives operation notifications from telemetry components.
// Implementations must be safe for concurrent use; exporters may report from
// multiple goroutines.
//
// The v1/metrics package provides a Prometheus-backed implementation.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}
