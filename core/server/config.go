package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	// An empty key leaves the API open.
	ApiKey string `mapstructure:"api_key" default:""`
	// MetricsEnabled exposes the Prometheus endpoint under /metrics.
	MetricsEnabled bool `mapstructure:"metrics_enabled" default:"true"`
}

// Address returns the listen address for the configured port.
// A port given with a leading colon is accepted as-is.
func (c Config) Address() string {
	if c.Port == "" {
		return ":8080"
	}
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
