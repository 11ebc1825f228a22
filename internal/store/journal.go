package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"github.com/mark3labs/dnvquote/internal/logger"
	"github.com/mark3labs/dnvquote/internal/nats"
	"github.com/nats-io/nats.go/jetstream"
)

// Event is one entry in the quote journal.
type Event struct {
	ID        string    `json:"id"`        // stream sequence, filled in on replay
	Timestamp time.Time `json:"timestamp"` // when it happened
	Draft     string    `json:"draft"`     // DraftName of the legal entity
	Type      string    `json:"type"`      // saved, submitted, restarted
	Step      int       `json:"step,omitempty"`
	Ref       string    `json:"ref,omitempty"` // submission reference
}

// Journal records draft lifecycle events.
type Journal interface {
	Record(ctx context.Context, e Event) error
}

// DraftName turns a legal entity name into the subject token and file name
// stem used for a draft.
func DraftName(legalName string) string {
	if s := slug.Make(legalName); s != "" {
		return s
	}
	return "untitled"
}

// LogJournal writes events to the log only.
type LogJournal struct{}

func (LogJournal) Record(_ context.Context, e Event) error {
	logger.Info("Journal: draft=%s type=%s step=%d ref=%s", e.Draft, e.Type, e.Step, e.Ref)
	return nil
}

// StreamJournal appends events to the JetStream journal stream.
type StreamJournal struct {
	js     jetstream.JetStream
	stream jetstream.Stream
}

// NewStreamJournal returns a journal publishing through js into stream.
func NewStreamJournal(js jetstream.JetStream, stream jetstream.Stream) *StreamJournal {
	return &StreamJournal{js: js, stream: stream}
}

// Record publishes e on dnvquote.<draft>.<type>.
func (j *StreamJournal) Record(ctx context.Context, e Event) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	if e.Draft == "" {
		e.Draft = DraftName("")
	}

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}

	subject := nats.SubjectForEvent(e.Draft, e.Type)
	ack, err := j.js.Publish(ctx, subject, data)
	if err != nil {
		logger.Error("Failed to publish to %s: %v", subject, err)
		return fmt.Errorf("publishing event: %w", err)
	}
	logger.Debug("Journal event published: subject=%s seq=%d", subject, ack.Sequence)
	return nil
}

// History replays every event recorded for draft, oldest first. Malformed
// entries are skipped.
func (j *StreamJournal) History(ctx context.Context, draft string) ([]Event, error) {
	consumer, err := nats.CreateReplayConsumer(ctx, j.stream, nats.SubjectForDraft(draft))
	if err != nil {
		return nil, fmt.Errorf("creating replay consumer: %w", err)
	}

	const batchSize = 500
	var events []Event
	for {
		batch, err := consumer.FetchNoWait(batchSize)
		if err != nil {
			break
		}

		n := 0
		for msg := range batch.Messages() {
			n++
			meta, _ := msg.Metadata()
			var e Event
			if err := json.Unmarshal(msg.Data(), &e); err != nil {
				logger.Warn("Skipping malformed journal entry: %v", err)
				_ = msg.Ack()
				continue
			}
			if e.ID == "" && meta != nil {
				e.ID = fmt.Sprintf("%d", meta.Sequence.Stream)
			}
			events = append(events, e)
			_ = msg.Ack()
		}
		if n < batchSize {
			break
		}
	}
	return events, nil
}
