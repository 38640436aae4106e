package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVICE_NAME", "SERVICE_VERSION", "ENV", "PORT", "LOG_LEVEL",
		"TRACING_ENABLED", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SAMPLE_RATE",
		"PROFILING_ENABLED", "PYROSCOPE_ENDPOINT", "SHUTDOWN_TIMEOUT", "READINESS_DRAIN_DELAY",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, "user-analytics-service", cfg.Service.Name)
	assert.Equal(t, "7000", cfg.Service.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRate)
	assert.False(t, cfg.Profiling.Enabled)
	assert.Equal(t, 10*time.Second, cfg.GetShutdownTimeoutDuration())
	assert.Equal(t, time.Duration(0), cfg.GetReadinessDrainDelayDuration())
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("OTEL_SAMPLE_RATE", "0.25")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("READINESS_DRAIN_DELAY", "5s")

	cfg := Load()

	assert.Equal(t, "8081", cfg.Service.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, 0.25, cfg.Tracing.SampleRate)
	assert.Equal(t, 30*time.Second, cfg.GetShutdownTimeoutDuration())
	assert.Equal(t, 5*time.Second, cfg.GetReadinessDrainDelayDuration())
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Service:  ServiceConfig{Name: "svc", Port: "7000"},
			Logging:  LoggingConfig{Level: "info"},
			Tracing:  TracingConfig{SampleRate: 1, Endpoint: "localhost:4318"},
			Shutdown: ShutdownConfig{Timeout: "10s", ReadinessDrainDelay: "0s"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"ok", func(*Config) {}, ""},
		{"empty name", func(c *Config) { c.Service.Name = "" }, "SERVICE_NAME"},
		{"bad port", func(c *Config) { c.Service.Port = "http" }, "PORT"},
		{"port out of range", func(c *Config) { c.Service.Port = "70000" }, "PORT"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"sample rate", func(c *Config) { c.Tracing.SampleRate = 1.5 }, "OTEL_SAMPLE_RATE"},
		{"tracing endpoint", func(c *Config) { c.Tracing.Enabled = true; c.Tracing.Endpoint = "" }, "OTEL_EXPORTER_OTLP_ENDPOINT"},
		{"profiling endpoint", func(c *Config) { c.Profiling.Enabled = true }, "PYROSCOPE_ENDPOINT"},
		{"shutdown timeout", func(c *Config) { c.Shutdown.Timeout = "soon" }, "SHUTDOWN_TIMEOUT"},
		{"drain delay", func(c *Config) { c.Shutdown.ReadinessDrainDelay = "-1s" }, "READINESS_DRAIN_DELAY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
