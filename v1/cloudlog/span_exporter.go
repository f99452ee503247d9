package cloudlog

import (
	"context"
	"time"

	"cloud.google.com/go/logging"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/trailhead-ai/telemetry/v1/observability"
	"github.com/trailhead-ai/telemetry/v1/record"
)

// SpanExporter ships finished spans to Cloud Logging as structured entries
// with first-class trace correlation. It implements sdktrace.SpanExporter.
type SpanExporter struct {
	cfg    Config
	client *lazyClient
}

// ExportSpans writes one structured entry per span. Remote failures are
// reported to the diagnostics logger and returned as the export error; they
// never panic and never reach the host application. An empty batch returns
// immediately without building the client.
func (e *SpanExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	if len(spans) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	err := e.exportSpans(ctx, spans)
	e.observe("export_spans", time.Since(start), err, int64(len(spans)))

	if err != nil && !IsShutdownError(err) && e.cfg.Logger != nil {
		e.cfg.Logger.Warn("failed to export spans to cloud logging", err, map[string]interface{}{
			"project_id": e.cfg.ProjectID,
			"count":      len(spans),
		})
	}
	return err
}

func (e *SpanExporter) exportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	sink, err := e.client.get(ctx)
	if err != nil {
		return err
	}

	for _, span := range spans {
		if err := sink.LogSync(ctx, e.entryFor(span)); err != nil {
			return err
		}
	}
	return nil
}

// entryFor builds the structured entry for one span. The payload carries
// every identifying field; severity, trace and span id ride as first-class
// entry fields recognized by the service, not inside the JSON body.
func (e *SpanExporter) entryFor(span sdktrace.ReadOnlySpan) logging.Entry {
	data := record.FromReadOnlySpan(span)

	var duration interface{}
	if end := span.EndTime(); !end.IsZero() {
		duration = end.Sub(span.StartTime()).Seconds()
	}

	var parent interface{}
	if data.ParentSpanID != nil {
		parent = *data.ParentSpanID
	}

	payload := map[string]interface{}{
		"span_name":      data.Name,
		"trace_id":       data.TraceID,
		"span_id":        data.SpanID,
		"parent_span_id": parent,
		"start_time":     data.StartTime,
		"end_time":       data.EndTime,
		"duration":       duration,
		"kind":           data.Kind,
		"status": map[string]interface{}{
			"code":        data.Status.Code,
			"description": data.Status.Description,
		},
		"attributes":  data.Attributes,
		"environment": e.cfg.Environment,
		"source":      e.cfg.Source,
	}

	entrySeverity := logging.Info
	if span.Status().Code == codes.Error {
		entrySeverity = logging.Error
	}

	return logging.Entry{
		Timestamp: span.EndTime(),
		Severity:  entrySeverity,
		Payload:   payload,
		Trace:     traceName(e.cfg.ProjectID, data.TraceID),
		SpanID:    data.SpanID,
	}
}

// ForceFlush flushes the remote client if it was ever built. Returns
// ErrShutdown after shutdown.
func (e *SpanExporter) ForceFlush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.client.flush()
}

// Shutdown closes the remote client if it was ever built. Shutdown is
// idempotent; subsequent exports fail with ErrShutdown without any remote
// call.
func (e *SpanExporter) Shutdown(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.client.close()
}

func (e *SpanExporter) observe(operation string, duration time.Duration, err error, size int64) {
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
