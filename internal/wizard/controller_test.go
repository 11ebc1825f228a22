package wizard

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/dnvquote/internal/form"
	"github.com/mark3labs/dnvquote/internal/nats"
	"github.com/stretchr/testify/require"
)

func TestNew_StartsOnStartScreen(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	require.True(t, f.ctrl.ShowStart())
	require.Equal(t, StepIdentity, f.ctrl.Step())
	require.False(t, f.ctrl.Restored())
	require.Equal(t, form.New(), f.ctrl.Draft())
}

func TestNew_RestoresSavedDraft(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	walkToReview(t, f.ctrl)

	again, err := New(context.Background(), f.store, nil, DefaultOptions())
	require.NoError(t, err)
	require.True(t, again.Restored())
	require.Equal(t, f.ctrl.Draft(), again.Draft())
}

func TestContinue_AcmeScenario(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	ctx := context.Background()
	f.ctrl.Start()

	ed := NewIdentityEditor(f.ctrl.Draft())
	fillIdentity(ed)
	require.NoError(t, f.ctrl.Continue(ctx, ed))

	require.Equal(t, StepFacility, f.ctrl.Step())
	require.Equal(t, StateCommitted, ed.State())
	require.Empty(t, ed.Errors().For(form.KeyDoingBusinessAs))
	require.Equal(t, "Acme General Hospital", f.ctrl.Draft().Identity.DoingBusinessAs)
	require.Equal(t, "Acme General Hospital", f.saved(t).Identity.DoingBusinessAs)
}

func TestContinue_SameAsLegalWithBlankDBA(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	ctx := context.Background()
	f.ctrl.Start()

	// A restored draft can carry the toggle without the copied name.
	d := form.New()
	d.Identity = form.Identity{
		LegalEntityName: "Acme General Hospital",
		DoingBusinessAs: "",
		SameAsLegal:     true,
		Primary: form.PrimaryContact{
			FirstName: "Jane",
			LastName:  "Doe",
			Title:     "Administrator",
			WorkPhone: "555-0100",
			Email:     "jane@acme.example",
		},
	}
	ed := NewIdentityEditor(d)
	require.NoError(t, f.ctrl.Continue(ctx, ed))

	require.Equal(t, StateCommitted, ed.State())
	require.Empty(t, ed.Errors())
	require.Equal(t, "Acme General Hospital", f.ctrl.Draft().Identity.DoingBusinessAs)
	require.Equal(t, "Acme General Hospital", f.saved(t).Identity.DoingBusinessAs)
}

func TestContinue_RejectsAndLeavesDraftUntouched(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	ctx := context.Background()
	f.ctrl.Start()
	require.NoError(t, f.ctrl.GoToStep(StepFacility))

	ed := NewFacilityEditor(f.ctrl.Draft())
	err := f.ctrl.Continue(ctx, ed)

	var verrs form.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Equal(t, "Please select a facility type.", ed.Errors().For(form.KeyFacilityType))
	require.Equal(t, StateRejected, ed.State())
	require.Equal(t, StepFacility, f.ctrl.Step())

	_, ok, err := f.store.Load(ctx)
	require.NoError(t, err)
	require.False(t, ok, "nothing persisted on rejection")
}

func TestContinue_WrongEditor(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	err := f.ctrl.Continue(context.Background(), NewFacilityEditor(form.New()))
	require.ErrorIs(t, err, ErrWrongStep)
}

func TestAdvanceIsCappedAtReview(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	walkToReview(t, f.ctrl)

	ed := NewReviewEditor(true)
	require.NoError(t, f.ctrl.Continue(context.Background(), ed))
	require.Equal(t, StepReview, f.ctrl.Step())
}

func TestRetreat(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	walkToReview(t, f.ctrl)
	before := f.ctrl.Draft()

	for want := StepServices; want >= StepIdentity; want-- {
		f.ctrl.Retreat()
		require.Equal(t, want, f.ctrl.Step())
		require.False(t, f.ctrl.ShowStart())
	}

	f.ctrl.Retreat()
	require.True(t, f.ctrl.ShowStart(), "retreating from step 1 shows the start screen")
	require.Equal(t, StepIdentity, f.ctrl.Step())
	require.Equal(t, before, f.ctrl.Draft(), "retreat never touches data")
}

func TestGoToStep(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	walkToReview(t, f.ctrl)

	require.NoError(t, f.ctrl.GoToStep(StepLeadership))
	require.Equal(t, StepLeadership, f.ctrl.Step())

	require.ErrorIs(t, f.ctrl.GoToStep(0), ErrStepOutOfRange)
	require.ErrorIs(t, f.ctrl.GoToStep(StepSubmitted), ErrStepOutOfRange)
}

func TestSave(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	require.NoError(t, f.ctrl.Save(context.Background()))
	require.Equal(t, form.New(), f.saved(t))
	require.Equal(t, []string{nats.EventTypeSaved}, f.journal.types())
	require.Equal(t, "untitled", f.journal.events[0].Draft)
}

func TestSetCertified_OnlyOnReview(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	require.ErrorIs(t, f.ctrl.SetCertified(true), ErrNotOnReview)

	walkToReview(t, f.ctrl)
	require.NoError(t, f.ctrl.SetCertified(true))
	require.True(t, f.ctrl.Certified())
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("uncertified", func(t *testing.T) {
		f := newFixture(t, DefaultOptions())
		walkToReview(t, f.ctrl)

		_, err := f.ctrl.Submit(ctx)
		require.ErrorIs(t, err, ErrCertificationRequired)
		require.Equal(t, StepReview, f.ctrl.Step())
		f.saved(t)
	})

	t.Run("not on review", func(t *testing.T) {
		f := newFixture(t, DefaultOptions())
		_, err := f.ctrl.Submit(ctx)
		require.ErrorIs(t, err, ErrNotOnReview)
	})

	t.Run("incomplete draft", func(t *testing.T) {
		f := newFixture(t, DefaultOptions())
		walkToReview(t, f.ctrl)
		require.NoError(t, f.ctrl.SetCertified(true))
		// Same state a hand-edited saved draft restores into.
		f.ctrl.draft.Facility = form.Facility{}

		_, err := f.ctrl.Submit(ctx)
		require.ErrorIs(t, err, ErrIncomplete)
		var incomplete *IncompleteError
		require.ErrorAs(t, err, &incomplete)
		require.Equal(t, StepFacility, incomplete.Step)
		require.NotEmpty(t, incomplete.Errs.For(form.KeyFacilityType))

		require.Equal(t, StepReview, f.ctrl.Step())
		require.Empty(t, f.ctrl.Reference())
		matches, err := filepath.Glob(filepath.Join(f.dir, "submissions", "*.json"))
		require.NoError(t, err)
		require.Empty(t, matches, "nothing archived")
		f.saved(t)
	})

	t.Run("clear failure removes archive", func(t *testing.T) {
		f := newFixture(t, DefaultOptions())
		walkToReview(t, f.ctrl)
		require.NoError(t, f.ctrl.SetCertified(true))
		f.ctrl.store = stickyStore{DraftStore: f.store}

		_, err := f.ctrl.Submit(ctx)
		require.ErrorContains(t, err, "clearing saved draft")
		require.False(t, f.ctrl.Submitted())
		require.Empty(t, f.ctrl.Reference())

		matches, err := filepath.Glob(filepath.Join(f.dir, "submissions", "*.json"))
		require.NoError(t, err)
		require.Empty(t, matches, "archive is rolled back")
		f.saved(t)
	})

	t.Run("certified", func(t *testing.T) {
		f := newFixture(t, DefaultOptions())
		walkToReview(t, f.ctrl)
		require.NoError(t, f.ctrl.SetCertified(true))

		ref, err := f.ctrl.Submit(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, ref)
		require.Equal(t, ref, f.ctrl.Reference())
		require.Equal(t, StepSubmitted, f.ctrl.Step())
		require.True(t, f.ctrl.Submitted())

		_, ok, err := f.store.Load(ctx)
		require.NoError(t, err)
		require.False(t, ok, "saved draft is cleared")

		matches, err := filepath.Glob(filepath.Join(f.dir, "submissions", "acme-general-hospital-"+ref+".json"))
		require.NoError(t, err)
		require.Len(t, matches, 1)

		last := f.journal.events[len(f.journal.events)-1]
		require.Equal(t, nats.EventTypeSubmitted, last.Type)
		require.Equal(t, ref, last.Ref)

		require.ErrorIs(t, f.ctrl.GoToStep(StepIdentity), ErrSubmitted)
		require.ErrorIs(t, f.ctrl.Save(ctx), ErrSubmitted)
		_, err = f.ctrl.Submit(ctx)
		require.ErrorIs(t, err, ErrSubmitted)
	})
}

func TestRestartForm(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, DefaultOptions())
	walkToReview(t, f.ctrl)
	require.NoError(t, f.ctrl.SetCertified(true))
	_, err := f.ctrl.Submit(ctx)
	require.NoError(t, err)

	require.NoError(t, f.ctrl.RestartForm(ctx))
	require.Equal(t, StepIdentity, f.ctrl.Step())
	require.Equal(t, form.New(), f.ctrl.Draft())
	require.False(t, f.ctrl.Certified())
	require.Empty(t, f.ctrl.Reference())

	_, ok, err := f.store.Load(ctx)
	require.NoError(t, err)
	require.False(t, ok)
	require.Contains(t, f.journal.types(), nats.EventTypeRestarted)
}

func TestCommit_LiveBindingFollowsPrimary(t *testing.T) {
	ctx := context.Background()
	opts := DefaultOptions()
	opts.Binding = form.BindingLive
	f := newFixture(t, opts)
	walkToReview(t, f.ctrl)

	require.NoError(t, f.ctrl.GoToStep(StepIdentity))
	ed := NewIdentityEditor(f.ctrl.Draft())
	require.NoError(t, ed.Set(form.KeyFirstName, "Janet"))
	require.NoError(t, f.ctrl.Continue(ctx, ed))

	d := f.ctrl.Draft()
	require.Equal(t, "Janet", d.Leadership.CEO.FirstName)
	require.Equal(t, "Janet", f.saved(t).Leadership.Director.FirstName)
}

func TestCommit_SnapshotBindingKeepsCopy(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, DefaultOptions())
	walkToReview(t, f.ctrl)

	require.NoError(t, f.ctrl.GoToStep(StepIdentity))
	ed := NewIdentityEditor(f.ctrl.Draft())
	require.NoError(t, ed.Set(form.KeyFirstName, "Janet"))
	require.NoError(t, f.ctrl.Continue(ctx, ed))

	require.Equal(t, "Jane", f.ctrl.Draft().Leadership.CEO.FirstName)
}

func TestCommit_PersistFailure(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	// A data dir below a regular file cannot be created.
	opts := DefaultOptions()
	f := newFixture(t, opts)
	f.ctrl.store = storeAt(filepath.Join(blocker, "data"))

	err := f.ctrl.Commit(ctx, func(d *form.Draft) { d.Identity.LegalEntityName = "X" })
	require.ErrorContains(t, err, "persisting draft")
	require.Equal(t, form.New(), f.ctrl.Draft(), "failed save leaves the shared draft alone")
}

func TestContinue_PersistFailureKeepsDraft(t *testing.T) {
	ctx := context.Background()
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	f := newFixture(t, DefaultOptions())
	f.ctrl.store = storeAt(filepath.Join(blocker, "data"))
	f.ctrl.Start()

	ed := NewIdentityEditor(f.ctrl.Draft())
	fillIdentity(ed)
	err := f.ctrl.Continue(ctx, ed)
	require.ErrorContains(t, err, "persisting draft")

	require.Equal(t, StateRejected, ed.State())
	require.Equal(t, StepIdentity, f.ctrl.Step())
	require.Empty(t, f.ctrl.Draft().Identity.LegalEntityName)
}
