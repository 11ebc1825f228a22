package wizard

import (
	"fmt"

	"github.com/mark3labs/dnvquote/internal/form"
)

// LeadershipEditor edits the leadership contacts and billing address
// (step 3). Same-as-primary toggles copy from the committed primary contact.
type LeadershipEditor struct {
	editor[form.Leadership]
	primary          form.PrimaryContact
	directorRequired bool
}

func NewLeadershipEditor(d form.Draft, opts Options) *LeadershipEditor {
	e := &LeadershipEditor{
		primary:          d.Identity.Primary,
		directorRequired: opts.DirectorRequired,
	}
	e.editor = editor[form.Leadership]{
		step:  StepLeadership,
		value: d.Leadership,
		validate: func(l form.Leadership) form.Result[form.Leadership] {
			return form.ValidateLeadership(l, e.directorRequired)
		},
		assign: func(d *form.Draft, v form.Leadership) { d.Leadership = v },
	}
	return e
}

func (e *LeadershipEditor) Value() form.Leadership { return e.value }

// Required reports whether the contact fields of role must be filled in.
func (e *LeadershipEditor) Required(role form.Role) bool {
	return role != form.RoleDirector || e.directorRequired
}

func (e *LeadershipEditor) field(key string) *string {
	v := &e.value
	switch key {
	case form.KeyBillingStreet:
		return &v.Billing.Street
	case form.KeyBillingCity:
		return &v.Billing.City
	case form.KeyBillingState:
		return &v.Billing.State
	case form.KeyBillingZIP:
		return &v.Billing.ZIP
	}
	for _, role := range form.Roles {
		c := v.Contact(role)
		switch key {
		case form.ContactKey(role, form.SuffixFirstName):
			return &c.FirstName
		case form.ContactKey(role, form.SuffixLastName):
			return &c.LastName
		case form.ContactKey(role, form.SuffixPhone):
			return &c.Phone
		case form.ContactKey(role, form.SuffixEmail):
			return &c.Email
		}
	}
	return nil
}

func (e *LeadershipEditor) Get(key string) string {
	if f := e.field(key); f != nil {
		return *f
	}
	return ""
}

func (e *LeadershipEditor) Set(key, value string) error {
	f := e.field(key)
	if f == nil {
		return fmt.Errorf("unknown leadership field %q", key)
	}
	*f = value
	e.touch()
	return nil
}

// SetSameAsPrimary copies the primary contact into role when on and clears
// the copied fields when off.
func (e *LeadershipEditor) SetSameAsPrimary(role form.Role, on bool) {
	e.value.Contact(role).SetSameAsPrimary(on, e.primary)
	e.touch()
}

// SameAsPrimary reports the toggle for role.
func (e *LeadershipEditor) SameAsPrimary(role form.Role) bool {
	return e.value.Contact(role).SameAsPrimary
}
