// Package config loads service configuration from the environment.
// A .env file in the working directory is read first when present;
// real environment variables take precedence over it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config is the full service configuration.
type Config struct {
	Service   ServiceConfig
	Logging   LoggingConfig
	Tracing   TracingConfig
	Profiling ProfilingConfig
	Shutdown  ShutdownConfig
}

// ServiceConfig identifies the running service.
type ServiceConfig struct {
	Name    string
	Version string
	Env     string
	Port    string
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level string
}

// TracingConfig controls the OpenTelemetry exporter.
type TracingConfig struct {
	Enabled    bool
	Endpoint   string
	SampleRate float64
}

// ProfilingConfig controls Pyroscope continuous profiling.
type ProfilingConfig struct {
	Enabled  bool
	Endpoint string
}

// ShutdownConfig holds graceful shutdown timings as duration strings.
type ShutdownConfig struct {
	Timeout             string
	ReadinessDrainDelay string
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	// Missing .env is normal outside local development.
	_ = godotenv.Load()

	return &Config{
		Service: ServiceConfig{
			Name:    getEnv("SERVICE_NAME", "user-analytics-service"),
			Version: getEnv("SERVICE_VERSION", "dev"),
			Env:     getEnv("ENV", "development"),
			Port:    getEnv("PORT", "7000"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Tracing: TracingConfig{
			Enabled:    getEnvBool("TRACING_ENABLED", false),
			Endpoint:   getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			SampleRate: getEnvFloat("OTEL_SAMPLE_RATE", 1.0),
		},
		Profiling: ProfilingConfig{
			Enabled:  getEnvBool("PROFILING_ENABLED", false),
			Endpoint: getEnv("PYROSCOPE_ENDPOINT", "http://localhost:4040"),
		},
		Shutdown: ShutdownConfig{
			Timeout:             getEnv("SHUTDOWN_TIMEOUT", "10s"),
			ReadinessDrainDelay: getEnv("READINESS_DRAIN_DELAY", "0s"),
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Service.Name == "" {
		return errors.New("SERVICE_NAME must not be empty")
	}
	port, err := strconv.Atoi(c.Service.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Service.Port)
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("LOG_LEVEL %q: %w", c.Logging.Level, err)
	}
	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		return fmt.Errorf("OTEL_SAMPLE_RATE must be within [0, 1], got %v", c.Tracing.SampleRate)
	}
	if c.Tracing.Enabled && c.Tracing.Endpoint == "" {
		return errors.New("OTEL_EXPORTER_OTLP_ENDPOINT is required when tracing is enabled")
	}
	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return errors.New("PYROSCOPE_ENDPOINT is required when profiling is enabled")
	}
	if d, err := time.ParseDuration(c.Shutdown.Timeout); err != nil || d <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be a positive duration, got %q", c.Shutdown.Timeout)
	}
	if d, err := time.ParseDuration(c.Shutdown.ReadinessDrainDelay); err != nil || d < 0 {
		return fmt.Errorf("READINESS_DRAIN_DELAY must be a non-negative duration, got %q", c.Shutdown.ReadinessDrainDelay)
	}
	return nil
}

// GetShutdownTimeoutDuration returns the HTTP shutdown timeout, 10s if unparsable.
func (c *Config) GetShutdownTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Shutdown.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// GetReadinessDrainDelayDuration returns how long /ready fails before shutdown starts.
func (c *Config) GetReadinessDrainDelayDuration() time.Duration {
	d, err := time.ParseDuration(c.Shutdown.ReadinessDrainDelay)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}
