package wizard

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/dnvquote/internal/form"
	"github.com/stretchr/testify/require"
)

// commitInto returns a CommitFunc that applies changes to d.
func commitInto(d *form.Draft) CommitFunc {
	return func(_ context.Context, mutate func(*form.Draft)) error {
		mutate(d)
		return nil
	}
}

func TestEditor_StateTransitions(t *testing.T) {
	ctx := context.Background()
	d := form.New()
	ed := NewFacilityEditor(d)
	require.Equal(t, StateEditing, ed.State())

	require.Error(t, ed.ValidateAndCommit(ctx, commitInto(&d)))
	require.Equal(t, StateRejected, ed.State())

	ed.Select(form.FacilityOther)
	require.Equal(t, StateEditing, ed.State())

	require.NoError(t, ed.ValidateAndCommit(ctx, commitInto(&d)))
	require.Equal(t, StateCommitted, ed.State())
	require.Empty(t, ed.Errors())
	require.Equal(t, form.FacilityOther, d.Facility.Type)
}

func TestEditor_CommitFailure(t *testing.T) {
	ed := NewFacilityEditor(form.New())
	ed.Select(form.FacilityOther)

	err := ed.ValidateAndCommit(context.Background(), func(context.Context, func(*form.Draft)) error {
		return errors.New("disk full")
	})
	require.ErrorContains(t, err, "disk full")
	require.Equal(t, StateRejected, ed.State())
}

func TestEditor_LocalCopyIsPrivate(t *testing.T) {
	d := form.New()
	ed := NewServicesEditor(d)
	ed.ToggleService("Cardiac Services", "Open Heart")
	require.Nil(t, d.Services.Selected, "editing does not touch the shared draft")

	require.NoError(t, ed.ValidateAndCommit(context.Background(), commitInto(&d)))
	require.True(t, d.Services.IsSelected("Cardiac Services", "Open Heart"))

	// Later edits in the editor do not leak into the committed value.
	ed.ToggleService("Cardiac Services", "Open Heart")
	require.True(t, d.Services.IsSelected("Cardiac Services", "Open Heart"))
}

func TestIdentityEditor(t *testing.T) {
	ed := NewIdentityEditor(form.New())
	require.Error(t, ed.Set("nope", "x"))

	ed.SetSameAsLegal(true)
	require.NoError(t, ed.Set(form.KeyLegalEntityName, "Acme"))
	require.Equal(t, "Acme", ed.Get(form.KeyDoingBusinessAs), "d/b/a follows while the toggle is on")

	ed.SetSameAsLegal(false)
	require.NoError(t, ed.Set(form.KeyLegalEntityName, "Acme Health"))
	require.Equal(t, "Acme", ed.Get(form.KeyDoingBusinessAs))

	err := ed.ValidateAndCommit(context.Background(), commitInto(&form.Draft{}))
	require.Error(t, err)
	require.Equal(t, "First Name is required", ed.Errors().For(form.KeyFirstName))
}

func TestLeadershipEditor_SameAsPrimary(t *testing.T) {
	d := form.New()
	d.Identity.Primary = form.PrimaryContact{FirstName: "Jane", LastName: "Doe", WorkPhone: "555-0100", Email: "jane@acme.example"}
	ed := NewLeadershipEditor(d, DefaultOptions())

	ed.SetSameAsPrimary(form.RoleCEO, true)
	require.True(t, ed.SameAsPrimary(form.RoleCEO))
	require.Equal(t, "Jane", ed.Get("ceo.firstName"))
	require.Equal(t, "Doe", ed.Get("ceo.lastName"))

	ed.SetSameAsPrimary(form.RoleCEO, false)
	require.Equal(t, "", ed.Get("ceo.firstName"))
	require.Equal(t, "", ed.Get("ceo.lastName"))
}

func TestLeadershipEditor_DirectorRequirement(t *testing.T) {
	ctx := context.Background()
	d := form.New()
	d.Identity.Primary = form.PrimaryContact{FirstName: "Jane", LastName: "Doe", WorkPhone: "555-0100", Email: "jane@acme.example"}

	build := func(required bool) *LeadershipEditor {
		opts := DefaultOptions()
		opts.DirectorRequired = required
		ed := NewLeadershipEditor(d, opts)
		ed.SetSameAsPrimary(form.RoleCEO, true)
		ed.SetSameAsPrimary(form.RoleInvoicing, true)
		_ = ed.Set(form.KeyBillingStreet, "1 Main St")
		_ = ed.Set(form.KeyBillingCity, "Austin")
		_ = ed.Set(form.KeyBillingState, "TX")
		_ = ed.Set(form.KeyBillingZIP, "73301")
		return ed
	}

	optional := build(false)
	require.False(t, optional.Required(form.RoleDirector))
	require.NoError(t, optional.ValidateAndCommit(ctx, commitInto(&d)))

	required := build(true)
	require.True(t, required.Required(form.RoleDirector))
	require.Error(t, required.ValidateAndCommit(ctx, commitInto(&d)))
	require.Equal(t, "First name is required", required.Errors().For("director.firstName"))
}

func TestSitesEditor(t *testing.T) {
	ed := NewSitesEditor(form.New(), DefaultOptions())
	ed.SetMode(form.SiteMultiple)

	added, err := ed.AddFile(form.FileDescriptor{Name: "Sites.XLSX", Size: 10})
	require.NoError(t, err)
	require.True(t, added)

	added, err = ed.AddFile(form.FileDescriptor{Name: "Sites.XLSX", Size: 10})
	require.NoError(t, err)
	require.False(t, added)

	_, err = ed.AddFile(form.FileDescriptor{Name: "notes.txt", Size: 1})
	require.ErrorIs(t, err, ErrUnsupportedFile)

	path := filepath.Join(t.TempDir(), "locations.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0644))
	added, err = ed.AddPath(path)
	require.NoError(t, err)
	require.True(t, added)

	files := ed.Value().Files
	require.Len(t, files, 2)
	require.Equal(t, form.FileDescriptor{Name: "locations.csv", Size: 8}, files[1])

	require.True(t, ed.RemoveFile("Sites.XLSX", 10))
	require.Len(t, ed.Value().Files, 1)
}

func TestServicesEditor(t *testing.T) {
	ed := NewServicesEditor(form.New())

	require.True(t, ed.AddOther("Telemetry"))
	ed.SetOther([]string{"Dialysis", "Telemetry"})
	require.Equal(t, []string{"Dialysis", "Telemetry"}, ed.Value().Other)

	ok, err := ed.AddDate(form.KeyThrombolytics, "2026-01-02")
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, ed.RemoveDate(form.KeyThrombolytics, "2026-01-02"))

	_, err = ed.AddDate("nope", "2026-01-02")
	require.Error(t, err)

	require.NoError(t, ed.Set(form.KeyApplicationDate, "01/02/2026"))
	err = ed.ValidateAndCommit(context.Background(), commitInto(&form.Draft{}))
	require.Error(t, err)
	require.Equal(t, "Enter a date as YYYY-MM-DD", ed.Errors().For(form.KeyApplicationDate))
}

func TestReviewEditor_Submit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, DefaultOptions())
	walkToReview(t, f.ctrl)

	ed := NewReviewEditor(false)
	_, err := ed.Submit(ctx, f.ctrl)
	require.ErrorIs(t, err, ErrCertificationRequired)
	require.Equal(t, CertifyMessage, ed.Errors().For(KeyCertify))

	ed.SetCertified(true)
	ref, err := ed.Submit(ctx, f.ctrl)
	require.NoError(t, err)
	require.Equal(t, f.ctrl.Reference(), ref)
}

func TestReviewEditor_CertificationOutlivesEditor(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	walkToReview(t, f.ctrl)

	ed := f.ctrl.EditorFor(StepReview).(*ReviewEditor)
	ed.SetCertified(true)
	require.True(t, f.ctrl.Certified())

	// Leave the review to edit a step, then come back.
	require.NoError(t, f.ctrl.GoToStep(StepFacility))
	require.NoError(t, f.ctrl.GoToStep(StepReview))
	again := f.ctrl.EditorFor(StepReview).(*ReviewEditor)
	require.True(t, again.Certified())

	again.SetCertified(false)
	require.False(t, f.ctrl.Certified())
}

func TestEditorFor(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	for _, step := range Steps {
		ed := f.ctrl.EditorFor(step)
		require.NotNil(t, ed)
		require.Equal(t, step, ed.Step())
	}
	require.Nil(t, f.ctrl.EditorFor(StepSubmitted))
}

func TestValidateAll(t *testing.T) {
	step, errs := ValidateAll(form.New(), DefaultOptions())
	require.Equal(t, StepIdentity, step)
	require.NotEmpty(t, errs)

	f := newFixture(t, DefaultOptions())
	walkToReview(t, f.ctrl)
	step, errs = ValidateAll(f.ctrl.Draft(), DefaultOptions())
	require.Equal(t, Step(0), step)
	require.Empty(t, errs)
}

func TestStepLabels(t *testing.T) {
	require.Equal(t, "Step 3 of 6", StepLeadership.Title())
	require.Equal(t, "Review & Submit", StepReview.Label())
	require.False(t, StepSubmitted.Valid())
}
