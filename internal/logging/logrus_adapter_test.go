package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
		expectJSON  bool
	}{
		{name: "debug text", level: "debug", format: "text", expectLevel: logrus.DebugLevel},
		{name: "info json", level: "info", format: "json", expectLevel: logrus.InfoLevel, expectJSON: true},
		{name: "upper case level", level: "WARN", format: "text", expectLevel: logrus.WarnLevel},
		{name: "invalid level defaults to info", level: "loud", format: "text", expectLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogrusAdapterWithOutput(tt.level, tt.format, &buf)
			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok)
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			_, isJSON := adapter.logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.expectJSON, isJSON)
		})
	}
}

func TestNewLogrusAdapterFromLogger_Nil(t *testing.T) {
	logger := NewLogrusAdapterFromLogger(nil)
	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.NotNil(t, adapter.logger)
}

func newBufferedAdapter(level logrus.Level) (Logger, *bytes.Buffer) {
	logrusLogger := logrus.New()
	var buf bytes.Buffer
	logrusLogger.SetOutput(&buf)
	logrusLogger.SetLevel(level)
	logrusLogger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return NewLogrusAdapterFromLogger(logrusLogger), &buf
}

func TestLogrusAdapter_LevelsAndFields(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(Logger, string, ...Field)
	}{
		{"debug", func(l Logger, m string, f ...Field) { l.Debug(m, f...) }},
		{"info", func(l Logger, m string, f ...Field) { l.Info(m, f...) }},
		{"warn", func(l Logger, m string, f ...Field) { l.Warn(m, f...) }},
		{"error", func(l Logger, m string, f ...Field) { l.Error(m, f...) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferedAdapter(logrus.DebugLevel)
			tt.logFunc(logger, "row dropped", F(FieldRow, 12))

			output := buf.String()
			assert.Contains(t, output, "row dropped")
			assert.Contains(t, output, "row=12")
		})
	}
}

func TestLogrusAdapter_ChainedCalls(t *testing.T) {
	logger, buf := newBufferedAdapter(logrus.InfoLevel)

	logger.
		WithField(FieldFile, "history.csv").
		WithFields(F(FieldRow, 3)).
		WithError(errors.New("bad date")).
		Warn("skipping row")

	output := buf.String()
	assert.Contains(t, output, "skipping row")
	assert.Contains(t, output, "history.csv")
	assert.Contains(t, output, "row=3")
	assert.Contains(t, output, "bad date")
}

func TestLogrusAdapter_LevelFiltering(t *testing.T) {
	logger, buf := newBufferedAdapter(logrus.WarnLevel)
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestConvertFields(t *testing.T) {
	fields := convertFields([]Field{F("a", "x"), F("b", 42)})
	assert.Len(t, fields, 2)
	assert.Equal(t, "x", fields["a"])
	assert.Equal(t, 42, fields["b"])

	assert.Empty(t, convertFields(nil))
}

func TestMockLogger_DerivedLoggersRecordIntoParent(t *testing.T) {
	mock := &MockLogger{}
	derived := mock.WithField(FieldFile, "a.csv").WithError(errors.New("boom"))
	derived.Warn("failed", F(FieldRow, 8))
	mock.Info("done")

	require.Len(t, mock.Entries, 2)
	assert.True(t, mock.HasEntry("WARN", "failed"))
	assert.True(t, mock.HasEntry("INFO", "done"))

	warn := mock.GetEntriesByLevel("WARN")[0]
	assert.EqualError(t, warn.Error, "boom")
	file, ok := warn.FieldValue(FieldFile)
	require.True(t, ok)
	assert.Equal(t, "a.csv", file)
	row, ok := warn.FieldValue(FieldRow)
	require.True(t, ok)
	assert.Equal(t, 8, row)
}

func TestLoggersImplementInterface(t *testing.T) {
	var _ Logger = (*LogrusAdapter)(nil)
	var _ Logger = (*MockLogger)(nil)
}
