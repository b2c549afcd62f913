package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"warden/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_HonorsLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "warn"

	logger, err := New(Params{Config: cfg})
	require.NoError(t, err)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelWarn))
}

func TestNew_RedactsSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "warden"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Info("login attempt",
		slog.String("email", "alice@example.com"),
		slog.String("password", "hunter2"),
		slog.String("Refresh_Token", "r-123"),
	)

	out := buf.String()
	assert.Contains(t, out, `"service":"warden"`)
	assert.Contains(t, out, "alice@example.com")
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "r-123")
	assert.Contains(t, out, redacted)
}
