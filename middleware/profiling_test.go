package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProfiler struct {
	err     error
	stopped int
}

func (p *stubProfiler) Stop() error {
	p.stopped++
	return p.err
}

func captureGlobalLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestStopProfiling_NotStarted(t *testing.T) {
	profiler = nil
	logs := captureGlobalLog(t)

	assert.NotPanics(t, StopProfiling)
	assert.Empty(t, logs.String())
}

func TestStopProfiling_LogsStopError(t *testing.T) {
	logs := captureGlobalLog(t)
	stub := &stubProfiler{err: errors.New("flush failed")}
	profiler = stub

	StopProfiling()

	assert.Equal(t, 1, stub.stopped)
	assert.Nil(t, profiler)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "flush failed", entry["error"])
	assert.Equal(t, "Profiler stop error", entry["message"])
}

func TestStopProfiling_CleanStop(t *testing.T) {
	logs := captureGlobalLog(t)
	stub := &stubProfiler{}
	profiler = stub

	StopProfiling()

	assert.Equal(t, 1, stub.stopped)
	assert.Nil(t, profiler)
	assert.Empty(t, logs.String())
}
