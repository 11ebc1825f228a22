package store

import (
	"context"
	"testing"
	"time"

	"github.com/mark3labs/dnvquote/internal/config"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name        string
		store       string
		debounce    time.Duration
		wantHistory bool
	}{
		{name: "file", store: config.StoreFile},
		{name: "file debounced", store: config.StoreFile, debounce: time.Hour},
		{name: "nats", store: config.StoreNATS, wantHistory: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			cfg := config.Default()
			cfg.DataDir = t.TempDir()
			cfg.Store = tt.store
			cfg.SaveDebounce = tt.debounce

			b, err := Open(ctx, cfg)
			require.NoError(t, err)
			require.Equal(t, tt.wantHistory, b.History != nil)

			_, isDebounced := b.Store.(*Debounced)
			require.Equal(t, tt.debounce > 0, isDebounced)

			require.NoError(t, b.Store.Save(ctx, testDraft()))
			require.NoError(t, b.Flush(ctx))
			require.NoError(t, b.Journal.Record(ctx, Event{Draft: "acme", Type: "saved"}))
			require.NoError(t, b.Close())

			// Reopening sees the saved draft.
			b, err = Open(ctx, cfg)
			require.NoError(t, err)
			defer b.Close()
			got, ok, err := b.Store.Load(ctx)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, testDraft(), got)
		})
	}
}

func TestOpen_UnknownStore(t *testing.T) {
	cfg := config.Default()
	cfg.Store = "redis"
	_, err := Open(context.Background(), cfg)
	require.Error(t, err)
}
