package form

import "fmt"

// BindingMode controls how same-as copies behave after the toggle is set.
type BindingMode string

const (
	// BindingSnapshot copies once when the toggle turns on. Later edits to
	// the source are not propagated.
	BindingSnapshot BindingMode = "snapshot"
	// BindingLive re-applies the copy on every commit while the toggle is on.
	BindingLive BindingMode = "live"
)

// ParseBindingMode accepts "snapshot" or "live".
func ParseBindingMode(s string) (BindingMode, error) {
	switch BindingMode(s) {
	case BindingSnapshot, BindingLive:
		return BindingMode(s), nil
	}
	return "", fmt.Errorf("unknown binding mode %q", s)
}

// ContactFields are the four fields a same-as-primary rule mirrors.
type ContactFields struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

// ContactFields projects the primary contact onto the mirrored fields.
func (p PrimaryContact) ContactFields() ContactFields {
	return ContactFields{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.WorkPhone,
		Email:     p.Email,
	}
}

// Fields returns the contact's mirrored fields.
func (c Contact) Fields() ContactFields {
	return ContactFields{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
	}
}

// Assign overwrites the mirrored fields and leaves the rest alone.
func (c *Contact) Assign(f ContactFields) {
	c.FirstName = f.FirstName
	c.LastName = f.LastName
	c.Phone = f.Phone
	c.Email = f.Email
}

// SetSameAsPrimary flips the toggle. Turning it on copies the primary
// contact's fields; turning it off clears exactly those four fields.
func (c *Contact) SetSameAsPrimary(on bool, primary PrimaryContact) {
	c.SameAsPrimary = on
	if on {
		c.Assign(primary.ContactFields())
		return
	}
	c.Assign(ContactFields{})
}

// SetSameAsLegal flips the toggle and, when on, mirrors the legal entity
// name into the d/b/a name. Turning it off keeps whatever d/b/a is present.
func (id *Identity) SetSameAsLegal(on bool) {
	id.SameAsLegal = on
	if on {
		id.DoingBusinessAs = id.LegalEntityName
	}
}

// Reconcile re-applies every active same-as rule in live mode.
// In snapshot mode it does nothing.
func (d *Draft) Reconcile(mode BindingMode) {
	if mode != BindingLive {
		return
	}
	if d.Identity.SameAsLegal {
		d.Identity.DoingBusinessAs = d.Identity.LegalEntityName
	}
	src := d.Identity.Primary.ContactFields()
	for _, role := range Roles {
		if c := d.Leadership.Contact(role); c.SameAsPrimary {
			c.Assign(src)
		}
	}
}
