// Package logger_test contains tests for the logging facade.
package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/acdsyn/acdsyn/internal/config"
	"github.com/acdsyn/acdsyn/internal/platform/logger"
	"github.com/acdsyn/acdsyn/internal/redact"
)

// testLogBuffer is a synchronized buffer for capturing log output.
type testLogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *testLogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *testLogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// jsonConfig is the logging configuration most tests render with.
func jsonConfig(level string) config.LoggingConfig {
	return config.LoggingConfig{Level: level, Format: "json", Structured: true}
}

// parseLogEntry parses a single JSON log line into a mapping.
func parseLogEntry(t *testing.T, line string) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry), "log line should be valid JSON: %s", line)
	return entry
}

func TestLevelFiltering(t *testing.T) {
	buf := &testLogBuffer{}
	l, err := logger.Setup(jsonConfig("WARNING"), logger.WithWriter(buf))
	require.NoError(t, err)

	l.Debug(logger.ContextSystem, "debug message")
	l.Info(logger.ContextSystem, "info message")
	assert.Empty(t, buf.String(), "records below the threshold must produce no output")

	l.Warn(logger.ContextSystem, "warn message")
	l.Error(logger.ContextSystem, "error message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "warn message")
	assert.Contains(t, lines[1], "error message")
}

func TestJSONRecordShape(t *testing.T) {
	buf := &testLogBuffer{}
	l, err := logger.Setup(jsonConfig("DEBUG"), logger.WithWriter(buf))
	require.NoError(t, err)

	l.Named("synthesis").Info(logger.ContextSynthesis, "cycle started",
		zap.String("strategy", "hybrid"),
		zap.Int("depth", 3),
	)

	entry := parseLogEntry(t, strings.TrimSpace(buf.String()))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "cycle started", entry["message"])
	assert.Equal(t, "synthesis", entry["context"])
	assert.Equal(t, "synthesis", entry["logger"])
	assert.Equal(t, "hybrid", entry["strategy"])
	assert.Equal(t, float64(3), entry["depth"])

	timestamp, ok := entry["timestamp"].(string)
	require.True(t, ok, "timestamp should render as a string")
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`), timestamp)
}

func TestNamedLoggersNest(t *testing.T) {
	buf := &testLogBuffer{}
	l, err := logger.Setup(jsonConfig("INFO"), logger.WithWriter(buf))
	require.NoError(t, err)

	l.Named("network").Named("feedback").Info(logger.ContextFeedback, "loop closed")

	entry := parseLogEntry(t, strings.TrimSpace(buf.String()))
	assert.Equal(t, "network.feedback", entry["logger"])
}

func TestConsoleFormat(t *testing.T) {
	buf := &testLogBuffer{}
	l, err := logger.Setup(
		config.LoggingConfig{Level: "INFO", Format: "console", Structured: true},
		logger.WithWriter(buf),
	)
	require.NoError(t, err)

	l.Info(logger.ContextSystem, "network ready")

	line := strings.TrimSpace(buf.String())
	assert.Contains(t, line, "network ready")
	assert.Contains(t, line, "INFO")

	var entry map[string]any
	assert.Error(t, json.Unmarshal([]byte(line), &entry), "console lines are not JSON records")
}

func TestStructuredDisabledRendersConsole(t *testing.T) {
	buf := &testLogBuffer{}
	l, err := logger.Setup(
		config.LoggingConfig{Level: "INFO", Format: "json", Structured: false},
		logger.WithWriter(buf),
	)
	require.NoError(t, err)

	l.Info(logger.ContextSystem, "plain record")

	var entry map[string]any
	line := strings.TrimSpace(buf.String())
	assert.Error(t, json.Unmarshal([]byte(line), &entry))
	assert.Contains(t, line, "plain record")
}

func TestCriticalLevel(t *testing.T) {
	buf := &testLogBuffer{}
	l, err := logger.Setup(jsonConfig("CRITICAL"), logger.WithWriter(buf))
	require.NoError(t, err)

	l.Error(logger.ContextError, "below threshold")
	assert.Empty(t, buf.String())

	l.Critical(logger.ContextError, "network unrecoverable")

	entry := parseLogEntry(t, strings.TrimSpace(buf.String()))
	assert.Equal(t, "CRITICAL", entry["level"])
	assert.Equal(t, "network unrecoverable", entry["message"])
}

// TestNonSerializableField verifies the render-failure contract: a field
// that cannot be serialized must not raise and must still produce a record
// carrying the message text.
func TestNonSerializableField(t *testing.T) {
	buf := &testLogBuffer{}
	l, err := logger.Setup(jsonConfig("DEBUG"), logger.WithWriter(buf))
	require.NoError(t, err)

	require.NotPanics(t, func() {
		l.Info(logger.ContextSystem, "channel attached", zap.Any("ch", make(chan int)))
	})

	line := strings.TrimSpace(buf.String())
	require.NotEmpty(t, line, "the record must not be dropped")
	assert.Contains(t, line, "channel attached")
	assert.Contains(t, line, "chError")
}

func TestLogErrorRedactsSensitiveMaterial(t *testing.T) {
	buf := &testLogBuffer{}
	l, err := logger.Setup(jsonConfig("DEBUG"), logger.WithWriter(buf))
	require.NoError(t, err)

	credErr := errors.New("credentials not found at /etc/acdsyn/creds.json")
	l.LogError(logger.ContextError, credErr, "configuration rejected")

	line := buf.String()
	assert.Contains(t, line, "configuration rejected")
	assert.Contains(t, line, redact.PathPlaceholder)
	assert.NotContains(t, line, "/etc/acdsyn/creds.json")
}

// TestInvalidLevelDefaultsToInfo verifies the teacher-documented fallback:
// an unrecognized level name yields an INFO-level facade instead of an
// error.
func TestInvalidLevelDefaultsToInfo(t *testing.T) {
	buf := &testLogBuffer{}
	l, err := logger.Setup(jsonConfig("verbose"), logger.WithWriter(buf))
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Debug(logger.ContextSystem, "debug hidden")
	assert.Empty(t, buf.String())

	l.Info(logger.ContextSystem, "info visible")
	assert.Contains(t, buf.String(), "info visible")
}

// TestConcurrentLogging verifies that concurrent calls never interleave:
// every emitted line must parse as a complete JSON record.
func TestConcurrentLogging(t *testing.T) {
	buf := &testLogBuffer{}
	l, err := logger.Setup(jsonConfig("DEBUG"), logger.WithWriter(buf))
	require.NoError(t, err)

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			l.Info(logger.ContextCommunication, "concurrent record", zap.Int("writer", i))
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, writers)
	for _, line := range lines {
		entry := parseLogEntry(t, line)
		assert.Equal(t, "concurrent record", entry["message"])
	}
}

// TestEndToEndScenario runs the full path: environment to validated
// snapshot to one structured record.
func TestEndToEndScenario(t *testing.T) {
	creds := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(creds, []byte(`{}`), 0o600))
	t.Setenv("ACDSYN_SERVICE_PROJECT_ID", "acdsyn-e2e")
	t.Setenv("ACDSYN_SERVICE_CREDENTIALS_PATH", creds)
	t.Setenv("ACDSYN_SYNTHESIS_COMPATIBILITY_THRESHOLD", "0.7")
	t.Setenv("ACDSYN_LOGGING_FORMAT", "json")

	cfg, err := config.Load()
	require.NoError(t, err)

	buf := &testLogBuffer{}
	l, err := logger.Setup(cfg.Logging, logger.WithWriter(buf))
	require.NoError(t, err)

	l.Info(logger.ContextSystem, "ready")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"level":"INFO"`)
	assert.Contains(t, lines[0], `"message":"ready"`)
	assert.Contains(t, lines[0], `"context":"system"`)
}
