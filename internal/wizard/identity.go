package wizard

import (
	"fmt"

	"github.com/mark3labs/dnvquote/internal/form"
)

// IdentityEditor edits the organization and primary contact (step 1).
type IdentityEditor struct {
	editor[form.Identity]
}

// NewIdentityEditor starts from the identity in d.
func NewIdentityEditor(d form.Draft) *IdentityEditor {
	return &IdentityEditor{editor[form.Identity]{
		step:     StepIdentity,
		value:    d.Identity,
		validate: form.ValidateIdentity,
		assign:   func(d *form.Draft, v form.Identity) { d.Identity = v },
		prepare:  reapplySameAsLegal,
	}}
}

// reapplySameAsLegal copies the legal name into a d/b/a that was cleared or
// restored blank while the toggle stayed on.
func reapplySameAsLegal(id *form.Identity) {
	if id.SameAsLegal {
		id.SetSameAsLegal(true)
	}
}

// Value returns the local identity.
func (e *IdentityEditor) Value() form.Identity { return e.value }

func (e *IdentityEditor) field(key string) *string {
	v := &e.value
	switch key {
	case form.KeyLegalEntityName:
		return &v.LegalEntityName
	case form.KeyDoingBusinessAs:
		return &v.DoingBusinessAs
	case form.KeyFirstName:
		return &v.Primary.FirstName
	case form.KeyLastName:
		return &v.Primary.LastName
	case form.KeyTitle:
		return &v.Primary.Title
	case form.KeyWorkPhone:
		return &v.Primary.WorkPhone
	case form.KeyCellPhone:
		return &v.Primary.CellPhone
	case form.KeyEmail:
		return &v.Primary.Email
	}
	return nil
}

// Get returns the value of a text field.
func (e *IdentityEditor) Get(key string) string {
	if f := e.field(key); f != nil {
		return *f
	}
	return ""
}

// Set updates a text field. While same-as-legal is on, the d/b/a name
// follows the legal name as it is typed.
func (e *IdentityEditor) Set(key, value string) error {
	f := e.field(key)
	if f == nil {
		return fmt.Errorf("unknown identity field %q", key)
	}
	*f = value
	if key == form.KeyLegalEntityName && e.value.SameAsLegal {
		e.value.DoingBusinessAs = value
	}
	e.touch()
	return nil
}

// SetSameAsLegal flips the same-as-legal toggle.
func (e *IdentityEditor) SetSameAsLegal(on bool) {
	e.value.SetSameAsLegal(on)
	e.touch()
}
