package session

import (
	"fmt"
	"time"

	"github.com/trailhead-ai/telemetry/v1/observability"
	"github.com/trailhead-ai/telemetry/v1/registry"
)

// Backend selects where a session's spans and log records are delivered.
type Backend string

// Supported backends.
const (
	// BackendConsole pretty-prints every record to stdout as it is emitted.
	BackendConsole Backend = "console"

	// BackendJSONL appends records to a session-scoped .jsonl file.
	BackendJSONL Backend = "jsonl"

	// BackendCloudLogging ships records to Google Cloud Logging.
	BackendCloudLogging Backend = "cloudlogging"

	// BackendDisabled turns the pipeline into free no-ops.
	BackendDisabled Backend = "disabled"
)

// ParseBackend converts a string to a Backend. Unrecognized values fail with
// ErrInvalidBackend.
func ParseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case BackendConsole, BackendJSONL, BackendCloudLogging, BackendDisabled:
		return Backend(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidBackend, s)
}

// Config defines the configuration for a telemetry session.
type Config struct {
	// Backend selects the export destination. Overridden by the TELEMETRY
	// environment variable when that is set.
	// Default: "console"
	Backend Backend

	// Dir is the directory for jsonl session files.
	// Default: "./logs"
	Dir string

	// ProjectID is the Google Cloud project for the cloudlogging backend.
	// Required for that backend, ignored otherwise.
	ProjectID string

	// Environment labels cloud payloads, e.g. "dev", "staging", "prod".
	// Default: "dev"
	Environment string

	// ServiceName identifies the emitting application in cloud payloads and
	// names the logging-bridge scope.
	// Default: "telemetry"
	ServiceName string

	// Registry is the provider registry to attach to. Tests pass their own
	// to keep provider pairs isolated.
	// Default: registry.Default()
	Registry *registry.Registry

	// Logger is an optional diagnostics logger from v1/logger.
	// If provided, swallowed errors and lifecycle warnings are reported
	// through it.
	Logger Logger

	// Observer optionally receives an OperationContext per export batch.
	Observer observability.Observer

	// FlushOnExit installs a SIGINT/SIGTERM watcher (once per process) that
	// flushes live sessions before the process dies. Best effort, bounded by
	// ExitFlushTimeout.
	FlushOnExit bool
}

// Logger is an interface that matches the v1/logger.Logger
type Logger interface {
	Error(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
}

// EnvBackend is the environment variable that overrides Config.Backend.
const EnvBackend = "TELEMETRY"

// Default values for configuration
const (
	DefaultBackend     = BackendConsole
	DefaultEnvironment = "dev"
	DefaultServiceName = "telemetry"

	// DefaultBatchSize is the record count that triggers a batch flush.
	DefaultBatchSize = 100

	// DefaultBatchInterval is the longest a batched record waits before a
	// time-based flush.
	DefaultBatchInterval = 5000 * time.Millisecond

	// DefaultFlushTimeout bounds the flush performed by Shutdown.
	DefaultFlushTimeout = 5000 * time.Millisecond

	// ExitFlushTimeout bounds the best-effort flush on process exit.
	ExitFlushTimeout = 1000 * time.Millisecond
)

// withDefaults returns a copy of the config with defaults applied.
func (c Config) withDefaults() Config {
	if c.Backend == "" {
		c.Backend = DefaultBackend
	}
	if c.Environment == "" {
		c.Environment = DefaultEnvironment
	}
	if c.ServiceName == "" {
		c.ServiceName = DefaultServiceName
	}
	if c.Registry == nil {
		c.Registry = registry.Default()
	}
	return c
}
