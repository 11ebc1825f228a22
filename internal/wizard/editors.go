package wizard

import "github.com/mark3labs/dnvquote/internal/form"

// EditorFor builds the editor for step from the controller's current draft.
// It returns nil for StepSubmitted.
func (c *Controller) EditorFor(step Step) Editor {
	d := c.Draft()
	switch step {
	case StepIdentity:
		return NewIdentityEditor(d)
	case StepFacility:
		return NewFacilityEditor(d)
	case StepLeadership:
		return NewLeadershipEditor(d, c.opts)
	case StepSites:
		return NewSitesEditor(d, c.opts)
	case StepServices:
		return NewServicesEditor(d)
	case StepReview:
		ed := NewReviewEditor(c.certified)
		ed.certify = c.SetCertified
		return ed
	}
	return nil
}

// ValidateAll runs every step validator against d and returns the first
// step that fails along with its errors.
func ValidateAll(d form.Draft, opts Options) (Step, form.ValidationErrors) {
	checks := []struct {
		step Step
		errs form.ValidationErrors
	}{
		{StepIdentity, form.Errors(form.ValidateIdentity(d.Identity))},
		{StepFacility, form.Errors(form.ValidateFacility(d.Facility))},
		{StepLeadership, form.Errors(form.ValidateLeadership(d.Leadership, opts.DirectorRequired))},
		{StepSites, form.Errors(form.ValidateSites(d.Sites))},
		{StepServices, form.Errors(form.ValidateServices(d.Services))},
	}
	for _, c := range checks {
		if len(c.errs) > 0 {
			return c.step, c.errs
		}
	}
	return 0, nil
}
