package logger

// Log level names accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config defines the configuration for the diagnostics logger.
type Config struct {
	// Level is the minimum level that will be emitted.
	// One of "debug", "info", "warning", "error".
	// Default: "info"
	Level string

	// ServiceName is attached to every log entry as the "service" field.
	// Default: "telemetry"
	ServiceName string
}

// DefaultServiceName is used when Config.ServiceName is empty.
const DefaultServiceName = "telemetry"
