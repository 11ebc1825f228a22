package wizard

import "github.com/mark3labs/dnvquote/internal/form"

// FacilityEditor edits the facility classification (step 2).
type FacilityEditor struct {
	editor[form.Facility]
}

func NewFacilityEditor(d form.Draft) *FacilityEditor {
	return &FacilityEditor{editor[form.Facility]{
		step:     StepFacility,
		value:    d.Facility,
		validate: form.ValidateFacility,
		assign:   func(d *form.Draft, v form.Facility) { d.Facility = v },
	}}
}

func (e *FacilityEditor) Value() form.FacilityType { return e.value.Type }

func (e *FacilityEditor) Select(ft form.FacilityType) {
	e.value.Type = ft
	e.touch()
}
