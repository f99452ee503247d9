package cloudlog

import (
	"google.golang.org/api/option"

	"github.com/trailhead-ai/telemetry/v1/observability"
)

// Config defines the configuration for the Cloud Logging exporters.
type Config struct {
	// ProjectID is the Google Cloud project receiving the telemetry.
	// Required; the constructors fail with ErrEmptyProjectID when empty.
	ProjectID string

	// Environment labels every payload, e.g. "dev", "staging", "prod".
	// Default: "dev"
	Environment string

	// Source identifies the emitting application in payloads, e.g. the
	// service name.
	// Default: "telemetry"
	Source string

	// LogID is the Cloud Logging log name entries are written to.
	// Default: "telemetry"
	LogID string

	// ClientOptions are passed through to the Cloud Logging client, e.g.
	// credentials or a custom endpoint for tests.
	ClientOptions []option.ClientOption

	// Logger is an optional diagnostics logger from v1/logger.
	// If provided, swallowed remote failures are reported through it.
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

// Default values for configuration
const (
	DefaultEnvironment = "dev"
	DefaultSource      = "telemetry"
	DefaultLogID       = "telemetry"
)

// withDefaults returns a copy of the config with defaults applied.
func (c Config) withDefaults() Config {
	if c.Environment == "" {
		c.Environment = DefaultEnvironment
	}
	if c.Source == "" {
		c.Source = DefaultSource
	}
	if c.LogID == "" {
		c.LogID = DefaultLogID
	}
	return c
}
