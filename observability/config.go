package observability

import (
	"time"

	"github.com/kbukum/laracore/validation"
)

// Config configures the OpenTelemetry tracer and meter providers.
type Config struct {
	// Enabled turns on exporting. When false Setup installs nothing and
	// the global no-op providers stay in place.
	Enabled bool `mapstructure:"enabled"`
	// ServiceName is the service.name resource attribute.
	ServiceName string `mapstructure:"service_name"`
	// ServiceVersion is the service.version resource attribute.
	ServiceVersion string `mapstructure:"service_version"`
	// Environment is the deployment environment (local, testing, production).
	Environment string `mapstructure:"environment"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string `mapstructure:"endpoint"`
	// Insecure allows plain HTTP (for development).
	Insecure bool `mapstructure:"insecure"`
	// SampleRate is the trace sampling rate (0.0 to 1.0).
	SampleRate float64 `mapstructure:"sample_rate"`
	Tracing    bool    `mapstructure:"tracing"`
	Metrics    bool    `mapstructure:"metrics"`
	// Interval is the metric export interval.
	Interval time.Duration `mapstructure:"interval"`
}

// DefaultConfig returns development defaults for the given service.
func DefaultConfig(serviceName string) Config {
	return Config{
		ServiceName:    serviceName,
		ServiceVersion: "0.0.0",
		Environment:    "production",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		SampleRate:     1.0,
		Tracing:        true,
		Metrics:        true,
		Interval:       15 * time.Second,
	}
}

// ApplyDefaults fills zero values that have a sensible default.
func (c *Config) ApplyDefaults() {
	if c.ServiceName == "" {
		c.ServiceName = "laracore"
	}
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	if c.Interval <= 0 {
		c.Interval = 15 * time.Second
	}
}

// endpointPattern matches the host:port form the OTLP HTTP exporters expect.
const endpointPattern = `^[^\s/]+:[0-9]+$`

// Validate checks the configuration. A disabled configuration is always valid.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	return validation.New().
		Required("service_name", c.ServiceName).
		Required("endpoint", c.Endpoint).
		Pattern("endpoint", c.Endpoint, endpointPattern).
		Custom(c.SampleRate >= 0 && c.SampleRate <= 1, "sample_rate", "must be between 0 and 1").
		Custom(c.Tracing || c.Metrics, "tracing", "tracing or metrics must be enabled").
		Validate()
}
