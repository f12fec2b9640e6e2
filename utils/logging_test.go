package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelUnmarshalText(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"off", LogLevelOff, false},
		{"ERROR", LogLevelError, false},
		{"warn", LogLevelWarn, false},
		{"Warning", LogLevelWarn, false},
		{"info", LogLevelInfo, false},
		{" DEBUG ", LogLevelDebug, false},
		{"loud", LogLevelOff, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var level LogLevel
			err := level.UnmarshalText([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "WARN", LogLevelWarn.String())
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "LogLevel(9)", LogLevel(9).String())
}

func TestDefaultLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, LogLevelWarn)

	logger.Info("hidden")
	logger.Warn("Invalid grade: N. Skipping", "grade", "N")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="Invalid grade: N. Skipping"`)
	assert.Contains(t, out, "grade=N")

	buf.Reset()
	logger.SetLevel(LogLevelOff)
	logger.Error("dropped")
	assert.Empty(t, buf.String())
}

func TestLoggerInterface(t *testing.T) {
	var _ Logger = NewLogger(LogLevelInfo)
	var _ Logger = NewNopLogger()
	var _ Logger = NewRecordingLogger()
	var _ Logger = &MockLogger{}
}

func TestRecordingLogger(t *testing.T) {
	r := NewRecordingLogger()
	r.Warn("one", "k", 1)
	r.Debug("two")

	msgs := r.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "WARN", msgs[0].Level)
	assert.Equal(t, []any{"k", 1}, msgs[0].Args)
	assert.True(t, r.HasMessage("two"))
	assert.False(t, r.HasMessage("three"))
	assert.Contains(t, r.String(), "[DEBUG] two")
}
