package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trebuchet-org/courier/internal/adapters/logbuffer"
	"github.com/trebuchet-org/courier/internal/domain/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewLogger_BufferOnly(t *testing.T) {
	buf := logbuffer.New(10)
	log := NewLogger(&config.RuntimeConfig{LogLevel: "info"}, buf)

	log.Debug("hidden")
	log.Info("account processed", "account", 1)
	log.With("network", "sepolia").Warn("bridge failed")

	entries := buf.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "account processed", entries[0].Message)
	assert.Equal(t, "account=1", entries[0].Fields)
	assert.Equal(t, slog.LevelWarn, entries[1].Level)
	assert.Equal(t, "network=sepolia", entries[1].Fields)
}

func TestFanout(t *testing.T) {
	buf := logbuffer.New(10)
	var out bytes.Buffer

	h := fanout{
		logbuffer.NewHandler(buf, slog.LevelDebug),
		slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}
	log := slog.New(h)

	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))

	log.Debug("only buffered")
	log.WithGroup("tx").Warn("both", "hash", "0xabc")

	assert.Equal(t, 2, buf.Len())
	assert.Equal(t, "tx.hash=0xabc", buf.Entries()[1].Fields)
	assert.NotContains(t, out.String(), "only buffered")
	assert.Contains(t, out.String(), "msg=both")
	assert.Contains(t, out.String(), "tx.hash=0xabc")
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "internal/usecase/swap.go", shortPath("/home/dev/courier/internal/usecase/swap.go"))
	assert.Equal(t, "main.go", shortPath("/elsewhere/main.go"))
}
