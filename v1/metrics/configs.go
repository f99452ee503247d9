package metrics

// Config defines the configuration for the metrics server.
type Config struct {
	// Address is the listen address of the /metrics HTTP endpoint.
	// Default: ":9090"
	Address string

	// ServiceName is added as a constant `service` label to every metric.
	// Default: "telemetry"
	ServiceName string

	// EnableDefaultCollectors registers the Go runtime, process and build
	// info collectors alongside the pipeline's own metrics.
	EnableDefaultCollectors bool
}

// Default values for configuration
const (
	DefaultAddress     = ":9090"
	DefaultServiceName = "telemetry"
)

// withDefaults returns a copy of the config with defaults applied.
func (c Config) withDefaults() Config {
	if c.Address == "" {
		c.Address = DefaultAddress
	}
	if c.ServiceName == "" {
		c.ServiceName = DefaultServiceName
	}
	return c
}
