package cache

import (
	"bytes"
	"log/slog"
	"testing"

	"warden/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newRedisParams(t *testing.T, addr string, buf *bytes.Buffer) (Params, *fxtest.Lifecycle) {
	t.Helper()

	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Redis: &config.RedisConfig{Addr: addr}}

	return Params{
		Lifecycle: lc,
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(buf, nil)),
	}, lc
}

func TestNewRedisClient_Connects(t *testing.T) {
	mr := miniredis.RunT(t)
	var buf bytes.Buffer
	params, lc := newRedisParams(t, mr.Addr(), &buf)

	client := NewRedisClient(params)
	require.NotNil(t, client)

	lc.RequireStart()
	assert.Contains(t, buf.String(), "Redis connected")
	lc.RequireStop()
}

func TestNewRedisClient_UnreachableDoesNotBlockStartup(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	var buf bytes.Buffer
	params, lc := newRedisParams(t, addr, &buf)

	client := NewRedisClient(params)
	require.NotNil(t, client)

	lc.RequireStart()
	assert.Contains(t, buf.String(), "Redis unreachable")
	lc.RequireStop()
}

func TestNewRedisClient_NotConfigured(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	assert.Nil(t, NewRedisClient(Params{Lifecycle: lc, Config: &config.Config{}, Logger: slog.Default()}))
}
