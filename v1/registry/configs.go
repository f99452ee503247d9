package registry

// Config defines the configuration for the provider registry.
type Config struct {
	// ServiceName becomes the service.name resource attribute on every
	// span and log record produced under these providers.
	// Default: "telemetry"
	ServiceName string

	// Environment becomes the deployment environment resource attribute.
	// Default: "dev"
	Environment string
}

// Default values for configuration
const (
	DefaultServiceName = "telemetry"
	DefaultEnvironment = "dev"
)

func (c Config) withDefaults() Config {
	if c.ServiceName == "" {
		c.ServiceName = DefaultServiceName
	}
	if c.Environment == "" {
		c.Environment = DefaultEnvironment
	}
	return c
}
