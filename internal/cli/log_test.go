package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/wheelpicker/internal/config"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	ctx := withLogger(context.Background(), custom)
	require.Same(t, custom, loggerFromContext(ctx))
	loggerFromContext(ctx).Info("selected", "item", "03:00")
	assert.Contains(t, buf.String(), "item=03:00")
}

func TestConfigFromContext(t *testing.T) {
	assert.Equal(t, config.DefaultConfig(), configFromContext(context.Background()))

	cfg := config.DefaultConfig()
	cfg.Picker.Items = []string{"a"}
	ctx := withConfig(context.Background(), cfg)
	assert.Same(t, cfg, configFromContext(ctx))
}
