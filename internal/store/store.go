// Package store persists the in-progress draft and records what happened to
// it.
//
// A draft is one keyed blob. The file backend writes it to
// <data_dir>/dnvQuoteFormData.json; the NATS backend keeps it in a JetStream
// key/value bucket on an embedded server. Both round-trip a draft exactly.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/dnvquote/internal/form"
)

// Key names the persisted draft in every backend.
const Key = "dnvQuoteFormData"

// envelopeVersion is bumped when the persisted shape changes incompatibly.
const envelopeVersion = 1

// DraftStore loads and saves the single in-progress draft.
type DraftStore interface {
	// Load returns the saved draft. ok is false when nothing is saved.
	Load(ctx context.Context) (d form.Draft, ok bool, err error)
	Save(ctx context.Context, d form.Draft) error
	Clear(ctx context.Context) error
	Close() error
}

// envelope wraps the draft with bookkeeping that is not part of the form.
type envelope struct {
	Version int        `json:"version"`
	SavedAt time.Time  `json:"savedAt"`
	Draft   form.Draft `json:"draft"`
}

func encode(d form.Draft) ([]byte, error) {
	data, err := json.MarshalIndent(envelope{
		Version: envelopeVersion,
		SavedAt: time.Now().UTC(),
		Draft:   d,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding draft: %w", err)
	}
	return data, nil
}

func decode(data []byte) (form.Draft, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return form.Draft{}, fmt.Errorf("decoding draft: %w", err)
	}
	if env.Version != envelopeVersion {
		return form.Draft{}, fmt.Errorf("unsupported draft version %d", env.Version)
	}
	return env.Draft, nil
}
