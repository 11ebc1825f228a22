// Package wizard drives the quote request through its six steps.
//
// The Controller owns the shared draft and the current step. Each step is
// edited through an Editor that keeps a private copy of its sub-record and
// only writes it back through Controller.Commit once it validates.
package wizard

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/dnvquote/internal/form"
	"github.com/mark3labs/dnvquote/internal/logger"
	"github.com/mark3labs/dnvquote/internal/nats"
	"github.com/mark3labs/dnvquote/internal/store"
)

// SavedMessage acknowledges an explicit save.
const SavedMessage = "Form saved!"

// Options tune the rules the controller and its editors apply.
type Options struct {
	Binding          form.BindingMode
	DirectorRequired bool
	// ArchiveDir receives submitted drafts. Empty disables archiving.
	ArchiveDir string
	// UploadExtensions limits the site files that can be attached.
	UploadExtensions []string
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{
		Binding:          form.BindingSnapshot,
		DirectorRequired: true,
		UploadExtensions: []string{".csv", ".xls", ".xlsx", ".pdf"},
	}
}

// flusher is implemented by stores that buffer writes.
type flusher interface {
	Flush(ctx context.Context) error
}

// Controller is the wizard state machine.
type Controller struct {
	draft     form.Draft
	step      Step
	showStart bool
	certified bool
	restored  bool
	ref       string

	store   store.DraftStore
	journal store.Journal
	opts    Options
}

// New restores any saved draft from st and positions the controller on the
// start screen at step 1.
func New(ctx context.Context, st store.DraftStore, journal store.Journal, opts Options) (*Controller, error) {
	if journal == nil {
		journal = store.LogJournal{}
	}
	c := &Controller{
		draft:     form.New(),
		step:      StepIdentity,
		showStart: true,
		store:     st,
		journal:   journal,
		opts:      opts,
	}

	d, ok, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("restoring draft: %w", err)
	}
	if ok {
		c.draft = d
		c.restored = true
		logger.Info("Restored saved draft for %q", d.Identity.LegalEntityName)
	}
	return c, nil
}

// Draft returns a copy of the shared draft.
func (c *Controller) Draft() form.Draft { return c.draft.Clone() }

// Step returns the current step.
func (c *Controller) Step() Step { return c.step }

// ShowStart reports whether the start screen is showing.
func (c *Controller) ShowStart() bool { return c.showStart }

// Certified reports the review certification.
func (c *Controller) Certified() bool { return c.certified }

// Restored reports whether a saved draft was found at startup.
func (c *Controller) Restored() bool { return c.restored }

// Reference is the submission reference, set after Submit.
func (c *Controller) Reference() string { return c.ref }

// Submitted reports whether the quote request has been submitted.
func (c *Controller) Submitted() bool { return c.step == StepSubmitted }

// Options returns the options the controller was built with.
func (c *Controller) Options() Options { return c.opts }

// Start leaves the start screen.
func (c *Controller) Start() {
	c.showStart = false
}

// Continue validates and commits the active step through ed and advances
// when that succeeds. Validation failures come back as form.ValidationErrors.
func (c *Controller) Continue(ctx context.Context, ed Editor) error {
	if c.Submitted() {
		return ErrSubmitted
	}
	if ed.Step() != c.step {
		return fmt.Errorf("%w: editor step %d, current step %d", ErrWrongStep, ed.Step(), c.step)
	}
	if err := ed.ValidateAndCommit(ctx, c.Commit); err != nil {
		return err
	}
	c.advance()
	return nil
}

func (c *Controller) advance() {
	if c.step < StepReview {
		c.step++
	}
}

// Retreat moves back one step without validating. From step 1 it returns to
// the start screen and keeps the draft.
func (c *Controller) Retreat() {
	switch {
	case c.Submitted():
		return
	case c.step <= StepIdentity:
		c.step = StepIdentity
		c.showStart = true
	default:
		c.step--
	}
}

// GoToStep jumps to step n, used by the review's edit links.
func (c *Controller) GoToStep(n Step) error {
	if c.Submitted() {
		return ErrSubmitted
	}
	if !n.Valid() {
		return fmt.Errorf("%w: %d", ErrStepOutOfRange, int(n))
	}
	c.step = n
	c.showStart = false
	return nil
}

// Commit applies mutate to a copy of the shared draft, re-applies live
// same-as rules and persists the whole draft. The shared draft only changes
// once the copy is saved.
func (c *Controller) Commit(ctx context.Context, mutate func(*form.Draft)) error {
	if c.Submitted() {
		return ErrSubmitted
	}
	next := c.draft.Clone()
	mutate(&next)
	next.Reconcile(c.opts.Binding)

	if err := c.store.Save(ctx, next.Clone()); err != nil {
		logger.Error("Failed to persist draft: %v", err)
		return fmt.Errorf("persisting draft: %w", err)
	}
	c.draft = next
	return nil
}

// Save writes the draft immediately, bypassing any debounce.
func (c *Controller) Save(ctx context.Context) error {
	if c.Submitted() {
		return ErrSubmitted
	}
	if err := c.store.Save(ctx, c.draft.Clone()); err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	if f, ok := c.store.(flusher); ok {
		if err := f.Flush(ctx); err != nil {
			return fmt.Errorf("saving draft: %w", err)
		}
	}
	c.record(ctx, store.Event{Type: nats.EventTypeSaved, Step: int(c.step)})
	return nil
}

// SetCertified sets the review certification.
func (c *Controller) SetCertified(on bool) error {
	if c.step != StepReview {
		return ErrNotOnReview
	}
	c.certified = on
	return nil
}

// Submit finalizes the request: it checks every step once more, archives
// the draft under a new reference, clears the saved draft and moves past the
// last step. The archive is removed again if the saved draft cannot be
// cleared, so a failed submit leaves nothing behind.
func (c *Controller) Submit(ctx context.Context) (string, error) {
	if c.Submitted() {
		return "", ErrSubmitted
	}
	if c.step != StepReview {
		return "", ErrNotOnReview
	}
	if !c.certified {
		return "", ErrCertificationRequired
	}
	if step, errs := ValidateAll(c.draft, c.opts); len(errs) > 0 {
		return "", &IncompleteError{Step: step, Errs: errs}
	}

	ref := store.NewReference()
	var archived string
	if c.opts.ArchiveDir != "" {
		path, err := store.WriteArchive(c.opts.ArchiveDir, c.draft, ref)
		if err != nil {
			return "", fmt.Errorf("archiving submission: %w", err)
		}
		archived = path
	}

	if err := c.store.Clear(ctx); err != nil {
		if archived != "" {
			if rmErr := os.Remove(archived); rmErr != nil {
				logger.Warn("Failed to remove archive %s: %v", archived, rmErr)
			}
		}
		return "", fmt.Errorf("clearing saved draft: %w", err)
	}
	if archived != "" {
		logger.Info("Submission %s archived to %s", ref, archived)
	}

	c.ref = ref
	c.step = StepSubmitted
	c.record(ctx, store.Event{Type: nats.EventTypeSubmitted, Ref: ref})
	return ref, nil
}

// RestartForm clears storage and starts over with an empty draft at step 1.
func (c *Controller) RestartForm(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing saved draft: %w", err)
	}
	c.record(ctx, store.Event{Type: nats.EventTypeRestarted})

	c.draft = form.New()
	c.certified = false
	c.restored = false
	c.ref = ""
	c.step = StepIdentity
	c.showStart = false
	return nil
}

// record logs journal failures instead of failing the operation.
func (c *Controller) record(ctx context.Context, e store.Event) {
	if e.Draft == "" {
		e.Draft = store.DraftName(c.draft.Identity.LegalEntityName)
	}
	if err := c.journal.Record(ctx, e); err != nil {
		logger.Warn("Failed to record %s event: %v", e.Type, err)
	}
}
