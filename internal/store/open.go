package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mark3labs/dnvquote/internal/config"
	"github.com/mark3labs/dnvquote/internal/logger"
	"github.com/mark3labs/dnvquote/internal/nats"
)

// Backend is an opened store with its journal.
type Backend struct {
	Store   DraftStore
	Journal Journal

	// History is set when the journal can be replayed.
	History *StreamJournal

	embedded *nats.Embedded
}

// Open builds the backend selected by cfg.Store, wrapping the store in a
// Debounced when cfg.SaveDebounce is set.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	var b Backend

	switch cfg.Store {
	case config.StoreFile:
		b.Store = NewFileStore(cfg.DataDir)
		b.Journal = LogJournal{}

	case config.StoreNATS:
		e, err := nats.Start(filepath.Join(cfg.DataDir, "nats"))
		if err != nil {
			return nil, fmt.Errorf("starting embedded nats: %w", err)
		}
		kv, err := nats.SetupDraftBucket(ctx, e.JS)
		if err != nil {
			_ = e.Close()
			return nil, fmt.Errorf("setting up draft bucket: %w", err)
		}
		stream, err := nats.SetupEventStream(ctx, e.JS)
		if err != nil {
			_ = e.Close()
			return nil, fmt.Errorf("setting up event stream: %w", err)
		}
		journal := NewStreamJournal(e.JS, stream)
		b.Store = NewKVStore(kv)
		b.Journal = journal
		b.History = journal
		b.embedded = e

	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}

	if cfg.SaveDebounce > 0 {
		b.Store = NewDebounced(b.Store, cfg.SaveDebounce)
	}

	logger.Debug("Opened %s store in %s (debounce %s)", cfg.Store, cfg.DataDir, cfg.SaveDebounce)
	return &b, nil
}

// Flush forces any debounced save to be written.
func (b *Backend) Flush(ctx context.Context) error {
	if d, ok := b.Store.(*Debounced); ok {
		return d.Flush(ctx)
	}
	return nil
}

// Close flushes and closes the store, then stops the embedded server.
func (b *Backend) Close() error {
	var errs []error
	if b.Store != nil {
		errs = append(errs, b.Store.Close())
	}
	if b.embedded != nil {
		errs = append(errs, b.embedded.Close())
	}
	return errors.Join(errs...)
}
