package console

import (
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewSpanExporter returns the SDK's built-in stdout span exporter.
// Spans are written human-readable to standard output, one document per
// span, with timestamps kept in their original precision.
func NewSpanExporter() (sdktrace.SpanExporter, error) {
	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}

// NewLogExporter returns the SDK's built-in stdout log exporter.
func NewLogExporter() (sdklog.Exporter, error) {
	return stdoutlog.New(stdoutlog.WithPrettyPrint())
}
