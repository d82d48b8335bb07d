package fs

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/domain/config"
)

func newTestActivityConfigStore(t *testing.T) *ActivityConfigStoreAdapter {
	t.Helper()
	cfg := &config.RuntimeConfig{
		DataDir: filepath.Join(t.TempDir(), ".courier"),
	}
	return NewActivityConfigStoreAdapter(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestActivityConfigStore_LoadCreatesDefaults(t *testing.T) {
	store := newTestActivityConfigStore(t)
	ctx := context.Background()

	assert.False(t, store.Exists())

	cfg, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultActivityConfig(), cfg)

	assert.True(t, store.Exists())
	data, err := os.ReadFile(store.GetPath())
	require.NoError(t, err)

	var onDisk map[string]int
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, map[string]int{"bridgeRepetitions": 1, "swapRepetitions": 1}, onDisk)
}

func TestActivityConfigStore_SaveAndLoad(t *testing.T) {
	store := newTestActivityConfigStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.ActivityConfig{BridgeRepetitions: 3, SwapRepetitions: 2}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.BridgeRepetitions)
	assert.Equal(t, 2, loaded.SwapRepetitions)

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(store.GetPath()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ActivityConfigFile, entries[0].Name())
}

func TestActivityConfigStore_LenientLoad(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantBridge int
		wantSwap   int
	}{
		{"non-numeric field", `{"bridgeRepetitions": "lots", "swapRepetitions": 4}`, 1, 4},
		{"missing field", `{"bridgeRepetitions": 5}`, 5, 1},
		{"numeric string", `{"bridgeRepetitions": "2", "swapRepetitions": "3"}`, 2, 3},
		{"zero and negative", `{"bridgeRepetitions": 0, "swapRepetitions": -7}`, 1, 1},
		{"null", `{"bridgeRepetitions": null, "swapRepetitions": 2}`, 1, 2},
		{"not json", `bridge=3`, 1, 1},
		{"json array", `[3, 2]`, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestActivityConfigStore(t)
			require.NoError(t, os.MkdirAll(filepath.Dir(store.GetPath()), 0755))
			require.NoError(t, os.WriteFile(store.GetPath(), []byte(tt.content), 0644))

			cfg, err := store.Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantBridge, cfg.BridgeRepetitions)
			assert.Equal(t, tt.wantSwap, cfg.SwapRepetitions)
		})
	}
}

func TestActivityConfigStore_SaveOverwrites(t *testing.T) {
	store := newTestActivityConfigStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.ActivityConfig{BridgeRepetitions: 9, SwapRepetitions: 9}))
	require.NoError(t, store.Save(ctx, &domain.ActivityConfig{BridgeRepetitions: 1, SwapRepetitions: 2}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, &domain.ActivityConfig{BridgeRepetitions: 1, SwapRepetitions: 2}, loaded)
}
