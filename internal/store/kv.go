package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/dnvquote/internal/form"
	"github.com/mark3labs/dnvquote/internal/logger"
	"github.com/nats-io/nats.go/jetstream"
)

// KVStore keeps the draft under Key in a JetStream key/value bucket.
type KVStore struct {
	kv jetstream.KeyValue
}

// NewKVStore wraps an existing bucket.
func NewKVStore(kv jetstream.KeyValue) *KVStore {
	return &KVStore{kv: kv}
}

func (s *KVStore) Load(ctx context.Context) (form.Draft, bool, error) {
	entry, err := s.kv.Get(ctx, Key)
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		return form.Draft{}, false, nil
	}
	if err != nil {
		return form.Draft{}, false, fmt.Errorf("reading draft from %s: %w", s.kv.Bucket(), err)
	}
	d, err := decode(entry.Value())
	if err != nil {
		return form.Draft{}, false, err
	}
	return d, true, nil
}

func (s *KVStore) Save(ctx context.Context, d form.Draft) error {
	data, err := encode(d)
	if err != nil {
		return err
	}
	rev, err := s.kv.Put(ctx, Key, data)
	if err != nil {
		logger.Error("Failed to put draft: %v", err)
		return fmt.Errorf("writing draft to %s: %w", s.kv.Bucket(), err)
	}
	logger.Debug("Draft saved to bucket %s rev=%d", s.kv.Bucket(), rev)
	return nil
}

func (s *KVStore) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, Key); err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("deleting draft from %s: %w", s.kv.Bucket(), err)
	}
	return nil
}

// Close is a no-op; the bucket belongs to the connection that created it.
func (s *KVStore) Close() error { return nil }
