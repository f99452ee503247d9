package cloudlog

import (
	"context"
	"time"

	"cloud.google.com/go/logging"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"github.com/trailhead-ai/telemetry/v1/observability"
	"github.com/trailhead-ai/telemetry/v1/record"
	"github.com/trailhead-ai/telemetry/v1/severity"
)

// LogExporter ships log records to Cloud Logging as structured entries with
// mapped severity and trace correlation. It implements sdklog.Exporter.
type LogExporter struct {
	cfg    Config
	client *lazyClient
}

// Export writes one structured entry per record. Remote failures are
// reported to the diagnostics logger and returned as the export error; they
// never panic and never reach the host application. An empty batch returns
// immediately without building the client.
func (e *LogExporter) Export(ctx context.Context, records []sdklog.Record) error {
	if len(records) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	err := e.exportRecords(ctx, records)
	e.observe("export_logs", time.Since(start), err, int64(len(records)))

	if err != nil && !IsShutdownError(err) && e.cfg.Logger != nil {
		e.cfg.Logger.Warn("failed to export log records to cloud logging", err, map[string]interface{}{
			"project_id": e.cfg.ProjectID,
			"count":      len(records),
		})
	}
	return err
}

func (e *LogExporter) exportRecords(ctx context.Context, records []sdklog.Record) error {
	sink, err := e.client.get(ctx)
	if err != nil {
		return err
	}

	for _, rec := range records {
		if err := sink.LogSync(ctx, e.entryFor(rec)); err != nil {
			return err
		}
	}
	return nil
}

// entryFor builds the structured entry for one log record. Record
// attributes are merged into the payload next to the fixed fields; a record
// without trace context carries explicit nulls for trace_id/span_id rather
// than omitting them.
func (e *LogExporter) entryFor(rec sdklog.Record) logging.Entry {
	data := record.FromLogRecord(rec)

	payload := map[string]interface{}{
		"message":     data.Body,
		"trace_id":    nil,
		"span_id":     nil,
		"source":      e.cfg.Source,
		"environment": e.cfg.Environment,
	}
	if data.TraceID != nil {
		payload["trace_id"] = *data.TraceID
	}
	if data.SpanID != nil {
		payload["span_id"] = *data.SpanID
	}
	for k, v := range data.Attributes {
		payload[k] = v
	}

	entry := logging.Entry{
		Timestamp: rec.Timestamp(),
		Severity:  severity.FromNumber(int(rec.Severity())).Cloud(),
		Payload:   payload,
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = rec.ObservedTimestamp()
	}

	if data.TraceID != nil {
		entry.Trace = traceName(e.cfg.ProjectID, *data.TraceID)
	}
	if data.SpanID != nil {
		entry.SpanID = *data.SpanID
	}

	return entry
}

// ForceFlush flushes the remote client if it was ever built. Returns
// ErrShutdown after shutdown.
func (e *LogExporter) ForceFlush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.client.flush()
}

// Shutdown closes the remote client if it was ever built. Shutdown is
// idempotent; subsequent exports fail with ErrShutdown without any remote
// call.
func (e *LogExporter) Shutdown(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.client.close()
}

func (e *LogExporter) observe(operation string, duration time.Duration, err error, size int64) {
	if e == nil || e.cfg.Observer == nil {
		return
	}

	e.cfg.Observer.ObserveOperation(observability.OperationContext{
		Component:   "cloudlog",
		Operation:   operation,
		Resource:    e.cfg.ProjectID,
		SubResource: e.cfg.LogID,
		Duration:    duration,
		Error:       err,
		Size:        size,
	})
}
