package nats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubjects(t *testing.T) {
	require.Equal(t, "dnvquote.acme.saved", SubjectForEvent("acme", EventTypeSaved))
	require.Equal(t, "dnvquote.acme.>", SubjectForDraft("acme"))
}

func TestStartSetupAndClose(t *testing.T) {
	ctx := context.Background()

	e, err := Start(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, e.Close()) })

	kv, err := SetupDraftBucket(ctx, e.JS)
	require.NoError(t, err)
	require.Equal(t, BucketName, kv.Bucket())

	_, err = kv.Put(ctx, "k", []byte("v"))
	require.NoError(t, err)
	entry, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v", string(entry.Value()))

	stream, err := SetupEventStream(ctx, e.JS)
	require.NoError(t, err)

	_, err = e.JS.Publish(ctx, SubjectForEvent("acme", EventTypeSubmitted), []byte(`{}`))
	require.NoError(t, err)

	cons, err := CreateReplayConsumer(ctx, stream, SubjectForDraft("acme"))
	require.NoError(t, err)
	batch, err := cons.FetchNoWait(10)
	require.NoError(t, err)

	var subjects []string
	for msg := range batch.Messages() {
		subjects = append(subjects, msg.Subject())
		require.NoError(t, msg.Ack())
	}
	require.Equal(t, []string{"dnvquote.acme.submitted"}, subjects)
}

func TestSetupIsIdempotent(t *testing.T) {
	ctx := context.Background()
	e, err := Start(t.TempDir())
	require.NoError(t, err)
	defer e.Close()

	for i := 0; i < 2; i++ {
		_, err := SetupEventStream(ctx, e.JS)
		require.NoError(t, err)
		_, err = SetupDraftBucket(ctx, e.JS)
		require.NoError(t, err)
	}
}

func TestCloseNil(t *testing.T) {
	var e *Embedded
	require.NoError(t, e.Close())
}
