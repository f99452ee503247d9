package jsonl

import (
	"context"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/trailhead-ai/telemetry/v1/observability"
	"github.com/trailhead-ai/telemetry/v1/record"
)

// SpanExporter writes finished spans as newline-delimited JSON to a
// session file. It implements sdktrace.SpanExporter and is safe for
// concurrent use.
type SpanExporter struct {
	sink      *sink
	sessionID string
	logger    Logger
	observer  observability.Observer
}

func newSpanExporter(s *sink, cfg Config) *SpanExporter {
	return &SpanExporter{
		sink:      s,
		sessionID: cfg.SessionID,
		logger:    cfg.Logger,
		observer:  cfg.Observer,
	}
}

// ExportSpans serializes each span to one JSON line and appends the batch
// to the session file. An empty batch returns immediately with no I/O.
// After Shutdown, ExportSpans returns ErrShutdown without touching the
// file.
func (e *SpanExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	if len(spans) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()

	objs := make([]interface{}, 0, len(spans))
	for _, span := range spans {
		objs = append(objs, record.FromReadOnlySpan(span))
	}

	err := e.sink.writeJSONLines(objs)
	e.observe("export_spans", time.Since(start), err, int64(len(spans)))

	if err != nil && !IsShutdownError(err) && e.logger != nil {
		e.logger.Warn("failed to write spans to session file", err, map[string]interface{}{
			"session_id": e.sessionID,
			"path":       e.sink.Path(),
			"count":      len(spans),
		})
	}
	return err
}

// ForceFlush pushes written data to stable storage. Returns ErrShutdown if
// the exporter has already been shut down.
func (e *SpanExporter) ForceFlush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.sink.flush()
}

// Shutdown closes the session file if this exporter's sink owns it.
// Shutdown is idempotent; subsequent exports fail with ErrShutdown.
func (e *SpanExporter) Shutdown(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.sink.close()
}

// Path returns the session file path, or "" when writing to an external
// writer.
func (e *SpanExporter) Path() string {
	return e.sink.Path()
}

func (e *SpanExporter) observe(operation string, duration time.Duration, err error, size int64) {
	if e == nil || e.observer == nil {
		return
	}

	e.observer.ObserveOperation(observability.OperationContext{
		Component:   "jsonl",
		Operation:   operation,
		Resource:    e.sink.Path(),
		SubResource: e.sessionID,
		Duration:    duration,
		Error:       err,
		Size:        size,
	})
}
