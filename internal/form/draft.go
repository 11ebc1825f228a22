// Package form holds the quote request aggregate and the pure rules that act
// on it: catalogs, copy rules, chip lists and per-step validation.
//
// The aggregate is composed of one sub-record per wizard step so each step
// owns a disjoint set of fields.
package form

import "slices"

// Draft is the complete in-progress quote request.
type Draft struct {
	Identity   Identity   `json:"identity"`
	Facility   Facility   `json:"facility"`
	Leadership Leadership `json:"leadership"`
	Sites      Sites      `json:"sites"`
	Services   Services   `json:"services"`
}

// Identity is the organization and its primary contact (step 1).
type Identity struct {
	LegalEntityName string         `json:"legalEntityName"`
	DoingBusinessAs string         `json:"doingBusinessAs"`
	SameAsLegal     bool           `json:"sameAsLegal"`
	Primary         PrimaryContact `json:"primary"`
}

// PrimaryContact receives all official communications.
type PrimaryContact struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Title     string `json:"title"`
	WorkPhone string `json:"workPhone"`
	CellPhone string `json:"cellPhone"`
	Email     string `json:"email"`
}

// FullName joins first and last name, skipping empty parts.
func (p PrimaryContact) FullName() string {
	return joinName(p.FirstName, p.LastName)
}

// Facility is the facility classification (step 2).
type Facility struct {
	Type FacilityType `json:"facilityType"`
}

// Contact is one leadership contact.
type Contact struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	SameAsPrimary bool   `json:"sameAsPrimary"`
}

// FullName joins first and last name, skipping empty parts.
func (c Contact) FullName() string {
	return joinName(c.FirstName, c.LastName)
}

// Address is a postal address.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	ZIP    string `json:"zip"`
}

// IsZero reports whether no address field is set.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Leadership holds the three leadership contacts and the billing address (step 3).
type Leadership struct {
	CEO       Contact `json:"ceo"`
	Director  Contact `json:"director"`
	Invoicing Contact `json:"invoicing"`
	Billing   Address `json:"billing"`
}

// Contact returns a pointer to the contact for role.
func (l *Leadership) Contact(role Role) *Contact {
	switch role {
	case RoleCEO:
		return &l.CEO
	case RoleDirector:
		return &l.Director
	case RoleInvoicing:
		return &l.Invoicing
	}
	return nil
}

// SiteMode is the single/multiple location choice.
type SiteMode string

const (
	SiteSingle   SiteMode = "single"
	SiteMultiple SiteMode = "multiple"
)

// Label is the human readable form of the mode.
func (m SiteMode) Label() string {
	if m == SiteMultiple {
		return "Multiple Locations"
	}
	return "Single Location"
}

// Sites is the site configuration (step 4).
type Sites struct {
	Mode  SiteMode `json:"multipleLocations"`
	Files FileSet  `json:"uploadedFiles"`
}

// New returns an empty draft with its defaults applied.
func New() Draft {
	return Draft{
		Sites: Sites{Mode: SiteSingle},
	}
}

// Clone returns a deep copy so a step can edit it without touching the original.
func (d Draft) Clone() Draft {
	out := d
	out.Sites.Files = slices.Clone(d.Sites.Files)
	out.Services = d.Services.Clone()
	return out
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}
