package store

import (
	"context"
	"sync"
	"time"

	"github.com/mark3labs/dnvquote/internal/form"
	"github.com/mark3labs/dnvquote/internal/logger"
)

// Debounced coalesces saves that arrive within delay of each other into one
// write to the wrapped store. The last draft saved always wins.
type Debounced struct {
	inner DraftStore
	delay time.Duration

	mu      sync.Mutex
	pending *form.Draft
	timer   *time.Timer
	lastErr error
}

// NewDebounced wraps inner. A delay of zero or less writes through.
func NewDebounced(inner DraftStore, delay time.Duration) *Debounced {
	return &Debounced{inner: inner, delay: delay}
}

// Save schedules d to be written once no other save arrives for delay.
func (s *Debounced) Save(ctx context.Context, d form.Draft) error {
	if s.delay <= 0 {
		return s.inner.Save(ctx, d)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = &d
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		if err := s.Flush(context.Background()); err != nil {
			logger.Error("Debounced save failed: %v", err)
			s.mu.Lock()
			s.lastErr = err
			s.mu.Unlock()
		}
	})
	// Report the previous background failure once, on the next save.
	err := s.lastErr
	s.lastErr = nil
	return err
}

// Flush writes the pending draft now, if there is one.
func (s *Debounced) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.pending == nil {
		return nil
	}
	d := *s.pending
	s.pending = nil

	return s.inner.Save(ctx, d)
}

// Pending reports whether a save is waiting to be written.
func (s *Debounced) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

func (s *Debounced) Load(ctx context.Context) (form.Draft, bool, error) {
	if err := s.Flush(ctx); err != nil {
		return form.Draft{}, false, err
	}
	return s.inner.Load(ctx)
}

// Clear drops any pending save before clearing the wrapped store.
func (s *Debounced) Clear(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = nil
	s.mu.Unlock()
	return s.inner.Clear(ctx)
}

func (s *Debounced) Close() error {
	flushErr := s.Flush(context.Background())
	if err := s.inner.Close(); err != nil {
		return err
	}
	return flushErr
}
