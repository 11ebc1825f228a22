package wizard

import (
	"fmt"

	"github.com/mark3labs/dnvquote/internal/form"
)

// ServicesEditor edits services and certifications (step 5).
type ServicesEditor struct {
	editor[form.Services]
}

func NewServicesEditor(d form.Draft) *ServicesEditor {
	return &ServicesEditor{editor[form.Services]{
		step:     StepServices,
		value:    d.Services.Clone(),
		validate: form.ValidateServices,
		assign:   func(d *form.Draft, v form.Services) { d.Services = v },
		clone:    form.Services.Clone,
	}}
}

func (e *ServicesEditor) Value() form.Services { return e.value }

func (e *ServicesEditor) ToggleService(category, service string) {
	e.value.ToggleService(category, service)
	e.touch()
}

func (e *ServicesEditor) ToggleStandard(std string) {
	e.value.ToggleStandard(std)
	e.touch()
}

func (e *ServicesEditor) AddOther(name string) bool {
	e.touch()
	return e.value.AddOther(name)
}

func (e *ServicesEditor) RemoveOther(name string) bool {
	e.touch()
	return e.value.RemoveOther(name)
}

// SetOther replaces the free-text services, e.g. after editing them as a
// list in an external editor.
func (e *ServicesEditor) SetOther(names []string) {
	e.value.SetOther(names)
	e.touch()
}

// Get returns one of the single date fields.
func (e *ServicesEditor) Get(key string) string {
	switch key {
	case form.KeyStrokeCertExpiry:
		return e.value.StrokeCertExpiry
	case form.KeyApplicationDate:
		return e.value.ApplicationDate
	}
	return ""
}

// Set updates one of the single date fields. Format is checked on commit.
func (e *ServicesEditor) Set(key, value string) error {
	switch key {
	case form.KeyStrokeCertExpiry:
		e.value.StrokeCertExpiry = value
	case form.KeyApplicationDate:
		e.value.ApplicationDate = value
	default:
		return fmt.Errorf("unknown services field %q", key)
	}
	e.touch()
	return nil
}

// AddDate adds a chip to the thrombolytic or thrombectomy list.
func (e *ServicesEditor) AddDate(key, iso string) (bool, error) {
	e.touch()
	switch key {
	case form.KeyThrombolytics:
		return e.value.AddThrombolytic(iso)
	case form.KeyThrombectomies:
		return e.value.AddThrombectomy(iso)
	}
	return false, fmt.Errorf("unknown date list %q", key)
}

// RemoveDate removes a chip from one of the date lists.
func (e *ServicesEditor) RemoveDate(key, iso string) bool {
	e.touch()
	switch key {
	case form.KeyThrombolytics:
		return e.value.Thrombolytics.Remove(iso)
	case form.KeyThrombectomies:
		return e.value.Thrombectomies.Remove(iso)
	}
	return false
}
