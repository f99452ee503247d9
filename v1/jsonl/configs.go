package jsonl

import (
	"io"

	"github.com/trailhead-ai/telemetry/v1/observability"
)

// Config defines the configuration for the JSONL file exporters.
type Config struct {
	// SessionID names the output file: {Dir}/{SessionID}.jsonl.
	// Required; the constructors fail with ErrEmptySessionID when empty.
	SessionID string

	// Dir is the directory holding session files. It is created if absent.
	// Ignored when Writer is set.
	// Default: "./logs"
	Dir string

	// Writer is an optional externally owned destination. When set, no file
	// is opened and the exporter never closes the writer on shutdown.
	Writer io.Writer

	// Logger is an optional diagnostics logger from v1/logger.
	// If provided, swallowed I/O errors are reported through it.
	Logger Logger

	// Observer optionally receives an OperationContext per export batch.
	Observer observability.Observer
}

// Logger is an interface that matches the v1/logger.Logger
type Logger interface {
	Error(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
}

// DefaultDir is used when Config.Dir is empty.
const DefaultDir = "./logs"
