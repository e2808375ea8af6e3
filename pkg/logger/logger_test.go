package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreGlobal snapshots the global logger so tests mutating it via the
// Set* helpers do not leak into each other.
func restoreGlobal(t *testing.T) {
	t.Helper()
	out := L.Logger.Out
	formatter := L.Logger.Formatter
	level := L.Logger.GetLevel()
	t.Cleanup(func() {
		L.Logger.SetOutput(out)
		L.Logger.Formatter = formatter
		L.Logger.SetLevel(level)
	})
}

func TestNewLoggerDefaults(t *testing.T) {
	logger := newLogger()

	formatter, ok := logger.Formatter.(*logrus.TextFormatter)
	require.True(t, ok, "default format should be human-readable text")
	assert.Equal(t, time.RFC3339Nano, formatter.TimestampFormat)
	assert.True(t, formatter.FullTimestamp)
}

func TestWithLoggerRoundTrip(t *testing.T) {
	entry := logrus.NewEntry(logrus.New()).WithField("scan_id", "abc")
	ctx := WithLogger(context.Background(), entry)

	retrieved := G(ctx)
	require.NotNil(t, retrieved)
	assert.Equal(t, "abc", retrieved.Data["scan_id"])
}

func TestGetLoggerFallsBackToGlobal(t *testing.T) {
	retrieved := G(context.Background())

	require.NotNil(t, retrieved)
	assert.Equal(t, L.Logger, retrieved.Logger)
}

func TestWithLoggerChaining(t *testing.T) {
	ctx := WithLogger(context.Background(), logrus.NewEntry(logrus.New()).WithField("service", "skillet"))
	ctx = WithLogger(ctx, G(ctx).WithField("operation", "scan"))

	final := G(ctx)
	assert.Equal(t, "skillet", final.Data["service"])
	assert.Equal(t, "scan", final.Data["operation"])
}

func TestContextPropagation(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	ctx := WithLogger(context.Background(), logrus.NewEntry(logger).WithField("request_id", "123"))

	func(ctx context.Context) {
		G(ctx).Info("nested function log")
	}(ctx)

	output := buf.String()
	assert.Contains(t, output, "nested function log")
	assert.Contains(t, output, "request_id")
	assert.Contains(t, output, "123")
}

func TestSetLogLevel(t *testing.T) {
	restoreGlobal(t)

	require.NoError(t, SetLogLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, L.Logger.GetLevel())

	require.NoError(t, SetLogLevel("warn"))
	assert.Equal(t, logrus.WarnLevel, L.Logger.GetLevel())

	assert.Error(t, SetLogLevel("shouting"))
}

func TestSetLogFormat(t *testing.T) {
	restoreGlobal(t)

	SetLogFormat("json")
	_, ok := L.Logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)

	SetLogFormat("fmt")
	_, ok = L.Logger.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)

	// Unknown formats fall back to text rather than failing
	SetLogFormat("yaml")
	_, ok = L.Logger.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
}

func TestJSONFormatFieldNames(t *testing.T) {
	restoreGlobal(t)

	var buf bytes.Buffer
	SetLogOutput(&buf)
	SetLogFormat("json")

	L.Info("test message")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	assert.Equal(t, "test message", logEntry["message"])
	assert.Equal(t, "info", logEntry["logLevel"])

	timestamp, ok := logEntry["timestamp"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339Nano, timestamp)
	assert.NoError(t, err)
}
