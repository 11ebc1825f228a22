package wizard

import "fmt"

// Step is a position in the wizard. StepSubmitted is reached only by a
// successful submit.
type Step int

const (
	StepIdentity Step = iota + 1
	StepFacility
	StepLeadership
	StepSites
	StepServices
	StepReview
	StepSubmitted
)

// StepCount is the number of visible steps.
const StepCount = 6

// Steps lists the visible steps in order.
var Steps = []Step{StepIdentity, StepFacility, StepLeadership, StepSites, StepServices, StepReview}

// Label is the progress bar caption for the step.
func (s Step) Label() string {
	switch s {
	case StepIdentity:
		return "DNV Quote Request"
	case StepFacility:
		return "Facility Details"
	case StepLeadership:
		return "Leadership Contacts"
	case StepSites:
		return "Site Information"
	case StepServices:
		return "Services & Certifications"
	case StepReview:
		return "Review & Submit"
	case StepSubmitted:
		return "Submitted"
	}
	return fmt.Sprintf("Step %d", int(s))
}

// Title reads "Step N of 6" for visible steps.
func (s Step) Title() string {
	if s < StepIdentity || s > StepReview {
		return s.Label()
	}
	return fmt.Sprintf("Step %d of %d", int(s), StepCount)
}

// Valid reports whether s is one of the visible steps.
func (s Step) Valid() bool {
	return s >= StepIdentity && s <= StepReview
}
