package store

import (
	"context"
	"testing"

	"github.com/mark3labs/dnvquote/internal/nats"
	"github.com/stretchr/testify/require"
)

func startNATS(t *testing.T) *nats.Embedded {
	t.Helper()
	e, err := nats.Start(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func TestKVStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	e := startNATS(t)
	kv, err := nats.SetupDraftBucket(ctx, e.JS)
	require.NoError(t, err)
	s := NewKVStore(kv)

	_, ok, err := s.Load(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	want := testDraft()
	require.NoError(t, s.Save(ctx, want))
	got, ok, err := s.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)

	want.Identity.LegalEntityName = "Acme Health"
	require.NoError(t, s.Save(ctx, want))
	got, _, err = s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "Acme Health", got.Identity.LegalEntityName)

	require.NoError(t, s.Clear(ctx))
	_, ok, err = s.Load(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}
