package wizard

import (
	"context"
	"fmt"

	"github.com/mark3labs/dnvquote/internal/form"
)

// EditState is where an editor is in its edit/validate/commit cycle.
type EditState int

const (
	StateEditing EditState = iota
	StateValidating
	StateCommitted
	StateRejected
)

func (s EditState) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateCommitted:
		return "committed"
	case StateRejected:
		return "rejected"
	}
	return "unknown"
}

// CommitFunc applies a change to the shared draft. Controller.Commit is the
// implementation used outside tests.
type CommitFunc func(ctx context.Context, mutate func(*form.Draft)) error

// Editor is the contract every step editor follows.
type Editor interface {
	Step() Step
	State() EditState
	// Errors returns the field errors of the last rejected validation.
	Errors() form.ValidationErrors
	// ValidateAndCommit validates the local copy and, if it passes, writes
	// it to the shared draft through commit. On failure the shared draft is
	// left untouched.
	ValidateAndCommit(ctx context.Context, commit CommitFunc) error
}

// editor holds the local copy of one sub-record and the rules for it.
type editor[T any] struct {
	step     Step
	value    T
	state    EditState
	errs     form.ValidationErrors
	validate func(T) form.Result[T]
	assign   func(*form.Draft, T)
	clone    func(T) T
	// prepare normalizes the local copy before it is validated.
	prepare  func(*T)
}

func (e *editor[T]) Step() Step                    { return e.step }
func (e *editor[T]) State() EditState              { return e.state }
func (e *editor[T]) Errors() form.ValidationErrors { return e.errs }

// Error returns the message for one field key.
func (e *editor[T]) Error(key string) string { return e.errs.For(key) }

// touch marks the editor as being edited again.
func (e *editor[T]) touch() {
	e.state = StateEditing
}

func (e *editor[T]) ValidateAndCommit(ctx context.Context, commit CommitFunc) error {
	e.state = StateValidating
	if e.prepare != nil {
		e.prepare(&e.value)
	}

	if errs := form.Errors(e.validate(e.value)); len(errs) > 0 {
		e.errs = errs
		e.state = StateRejected
		return errs
	}

	value := e.value
	if e.clone != nil {
		value = e.clone(e.value)
	}
	if err := commit(ctx, func(d *form.Draft) { e.assign(d, value) }); err != nil {
		e.state = StateRejected
		return fmt.Errorf("committing %s: %w", e.step.Label(), err)
	}

	e.errs = nil
	e.state = StateCommitted
	return nil
}
