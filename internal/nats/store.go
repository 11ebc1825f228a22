package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

const (
	// StreamName is the stream holding the quote journal.
	StreamName = "dnvquote_events"
	// BucketName is the key/value bucket holding the saved draft.
	BucketName = "dnvquote_drafts"

	subjectRoot = "dnvquote"

	// Journal event types
	EventTypeSaved     = "saved"
	EventTypeSubmitted = "submitted"
	EventTypeRestarted = "restarted"
)

// SubjectForDraft returns the wildcard subject for every event of a draft.
// Example: "dnvquote.acme-general-hospital.>"
func SubjectForDraft(draft string) string {
	return fmt.Sprintf("%s.%s.>", subjectRoot, draft)
}

// SubjectForEvent returns the subject an event of eventType is published on.
// Example: "dnvquote.acme-general-hospital.saved"
func SubjectForEvent(draft, eventType string) string {
	return fmt.Sprintf("%s.%s.%s", subjectRoot, draft, eventType)
}

// SetupEventStream creates or updates the journal stream. Events are kept
// for a year.
func SetupEventStream(ctx context.Context, js jetstream.JetStream) (jetstream.Stream, error) {
	return js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     StreamName,
		Subjects: []string{subjectRoot + ".>"},
		Storage:  jetstream.FileStorage,
		MaxAge:   365 * 24 * time.Hour,
	})
}

// SetupDraftBucket creates or updates the draft bucket. Only the latest
// revision of each key is kept.
func SetupDraftBucket(ctx context.Context, js jetstream.JetStream) (jetstream.KeyValue, error) {
	return js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      BucketName,
		Description: "in-progress quote request drafts",
		History:     1,
		Storage:     jetstream.FileStorage,
	})
}

// CreateReplayConsumer creates an ephemeral consumer that reads every event
// matching filter from the start of the stream.
func CreateReplayConsumer(ctx context.Context, stream jetstream.Stream, filter string) (jetstream.Consumer, error) {
	return stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		FilterSubject: filter,
		AckPolicy:     jetstream.AckExplicitPolicy,
		DeliverPolicy: jetstream.DeliverAllPolicy,
	})
}
