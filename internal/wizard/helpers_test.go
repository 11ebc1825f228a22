package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/dnvquote/internal/form"
	"github.com/mark3labs/dnvquote/internal/store"
	"github.com/stretchr/testify/require"
)

// recordingJournal keeps every event it is given.
type recordingJournal struct {
	events []store.Event
}

func (j *recordingJournal) Record(_ context.Context, e store.Event) error {
	j.events = append(j.events, e)
	return nil
}

func (j *recordingJournal) types() []string {
	var out []string
	for _, e := range j.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	ctrl    *Controller
	store   *store.FileStore
	journal *recordingJournal
	dir     string
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	dir := t.TempDir()
	st := store.NewFileStore(dir)
	j := &recordingJournal{}
	if opts.ArchiveDir == "" {
		opts.ArchiveDir = dir
	}
	ctrl, err := New(context.Background(), st, j, opts)
	require.NoError(t, err)
	return &fixture{ctrl: ctrl, store: st, journal: j, dir: dir}
}

func (f *fixture) saved(t *testing.T) form.Draft {
	t.Helper()
	d, ok, err := f.store.Load(context.Background())
	require.NoError(t, err)
	require.True(t, ok, "expected a saved draft")
	return d
}

func fillIdentity(ed *IdentityEditor) {
	_ = ed.Set(form.KeyLegalEntityName, "Acme General Hospital")
	ed.SetSameAsLegal(true)
	_ = ed.Set(form.KeyFirstName, "Jane")
	_ = ed.Set(form.KeyLastName, "Doe")
	_ = ed.Set(form.KeyTitle, "Administrator")
	_ = ed.Set(form.KeyWorkPhone, "555-0100")
	_ = ed.Set(form.KeyEmail, "jane@acme.example")
}

func fillLeadership(ed *LeadershipEditor) {
	for _, role := range form.Roles {
		ed.SetSameAsPrimary(role, true)
	}
	_ = ed.Set(form.KeyBillingStreet, "1 Main St")
	_ = ed.Set(form.KeyBillingCity, "Austin")
	_ = ed.Set(form.KeyBillingState, "TX")
	_ = ed.Set(form.KeyBillingZIP, "73301")
}

// walkToReview fills every step and continues until the review step.
func walkToReview(t *testing.T, c *Controller) {
	t.Helper()
	ctx := context.Background()
	c.Start()

	id := NewIdentityEditor(c.Draft())
	fillIdentity(id)
	require.NoError(t, c.Continue(ctx, id))

	fac := NewFacilityEditor(c.Draft())
	fac.Select(form.FacilityInpatientAcute)
	require.NoError(t, c.Continue(ctx, fac))

	lead := NewLeadershipEditor(c.Draft(), c.Options())
	fillLeadership(lead)
	require.NoError(t, c.Continue(ctx, lead))

	require.NoError(t, c.Continue(ctx, c.EditorFor(StepSites)))
	require.NoError(t, c.Continue(ctx, c.EditorFor(StepServices)))
	require.Equal(t, StepReview, c.Step())
}

func storeAt(dir string) store.DraftStore {
	return store.NewFileStore(dir)
}

// stickyStore saves normally but refuses to clear.
type stickyStore struct {
	store.DraftStore
}

func (stickyStore) Clear(context.Context) error {
	return errors.New("draft is locked")
}
