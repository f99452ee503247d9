package jsonl

import (
	"context"
	"time"

	sdklog "go.opentelemetry.io/otel/sdk/log"

	"github.com/trailhead-ai/telemetry/v1/observability"
	"github.com/trailhead-ai/telemetry/v1/record"
)

// LogExporter writes log records as newline-delimited JSON to a session
// file. It implements sdklog.Exporter and is safe for concurrent use.
type LogExporter struct {
	sink      *sink
	sessionID string
	logger    Logger
	observer  observability.Observer
}

func newLogExporter(s *sink, cfg Config) *LogExporter {
	return &LogExporter{
		sink:      s,
		sessionID: cfg.SessionID,
		logger:    cfg.Logger,
		observer:  cfg.Observer,
	}
}

// Export serializes each record to one JSON line and appends the batch to
// the session file. An empty batch returns immediately with no I/O. After
// Shutdown, Export returns ErrShutdown without touching the file.
func (e *LogExporter) Export(ctx context.Context, records []sdklog.Record) error {
	if len(records) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()

	objs := make([]interface{}, 0, len(records))
	for _, rec := range records {
		objs = append(objs, record.FromLogRecord(rec))
	}

	err := e.sink.writeJSONLines(objs)
	e.observe("export_logs", time.Since(start), err, int64(len(records)))

	if err != nil && !IsShutdownError(err) && e.logger != nil {
		e.logger.Warn("failed to write log records to session file", err, map[string]interface{}{
			"session_id": e.sessionID,
			"path":       e.sink.Path(),
			"count":      len(records),
		})
	}
	return err
}

// ForceFlush pushes written data to stable storage. Returns ErrShutdown if
// the exporter has already been shut down.
func (e *LogExporter) ForceFlush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.sink.flush()
}

// Shutdown closes the session file if this exporter's sink owns it.
// Shutdown is idempotent; subsequent exports fail with ErrShutdown.
func (e *LogExporter) Shutdown(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.sink.close()
}

// Path returns the session file path, or "" when writing to an external
// writer.
func (e *LogExporter) Path() string {
	return e.sink.Path()
}

func (e *LogExporter) observe(operation string, duration time.Duration, err error, size int64) {
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
