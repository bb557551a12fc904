package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/time-calculator/internal/domain/port/core"
)

func newObservedLogger(level zapcore.Level) (core.Logger, *observer.ObservedLogs) {
	atomic := zap.NewAtomicLevelAt(level)
	obsCore, logs := observer.New(atomic)
	return NewFromZap(zap.New(obsCore), atomic), logs
}

func TestZapLogger_FieldsAndLevels(t *testing.T) {
	log, logs := newObservedLogger(zap.InfoLevel)

	log.Debug("hidden", nil)
	log.Info("Duration applied", map[string]any{"duration": "2 hours"})
	log.Error("Operation failed", map[string]any{"error_code": 5000})

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "Duration applied", entries[0].Message)
	assert.Equal(t, "2 hours", entries[0].ContextMap()["duration"])
	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
}

func TestZapLogger_SetLevel(t *testing.T) {
	log, logs := newObservedLogger(zap.InfoLevel)
	assert.Equal(t, core.LogLevelInfo, log.GetLevel())

	log.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	log.Debug("visible", nil)
	assert.Equal(t, 1, logs.FilterMessage("visible").Len())

	log.SetLevel(core.LogLevelError)
	log.Warn("dropped", nil)
	assert.Equal(t, 0, logs.FilterMessage("dropped").Len())
}

func TestNewZapLogger_Options(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"json to stdout", Options{Level: "info", Format: "json", Output: "stdout"}, false},
		{"console to stderr", Options{Level: "debug", Format: "console", Output: "stderr"}, false},
		{"defaults", Options{}, false},
		{"bad level", Options{Level: "loud"}, true},
		{"bad format", Options{Format: "xml"}, true},
		{"bad output", Options{Output: "/dev/null/x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := NewZapLogger(tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelWarn)
	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
	log.Error("ignored", map[string]any{"k": "v"})
	assert.NoError(t, log.Flush())
}
