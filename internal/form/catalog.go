package form

import (
	"fmt"
	"slices"
)

// FacilityType is one value of the closed facility classification set.
type FacilityType string

const (
	FacilityInpatientAcute   FacilityType = "Inpatient Acute Care"
	FacilityLongTermAcute    FacilityType = "Long-Term Acute Care"
	FacilityCriticalAccess   FacilityType = "Critical Access"
	FacilityChildrens        FacilityType = "Children's"
	FacilityFreeStandingPsyc FacilityType = "Non-Hospital/Free-Standing Psychiatric"
	FacilityOther            FacilityType = "Other"
)

// FacilityTypes lists every facility type in display order.
var FacilityTypes = []FacilityType{
	FacilityInpatientAcute,
	FacilityLongTermAcute,
	FacilityCriticalAccess,
	FacilityChildrens,
	FacilityFreeStandingPsyc,
	FacilityOther,
}

// ParseFacilityType maps a label to its FacilityType.
func ParseFacilityType(s string) (FacilityType, error) {
	for _, ft := range FacilityTypes {
		if string(ft) == s {
			return ft, nil
		}
	}
	return "", fmt.Errorf("unknown facility type %q", s)
}

// Role identifies one of the leadership contacts.
type Role int

const (
	RoleCEO Role = iota
	RoleDirector
	RoleInvoicing
)

// Roles lists the leadership roles in display order.
var Roles = []Role{RoleCEO, RoleDirector, RoleInvoicing}

func (r Role) String() string {
	switch r {
	case RoleCEO:
		return "Chief Executive Officer (CEO)"
	case RoleDirector:
		return "Director of Quality"
	case RoleInvoicing:
		return "Invoicing Contact"
	}
	return "Unknown"
}

// Key is the field key prefix for the role.
func (r Role) Key() string {
	switch r {
	case RoleCEO:
		return "ceo"
	case RoleDirector:
		return "director"
	case RoleInvoicing:
		return "invoicing"
	}
	return "unknown"
}

// State is a US state (or DC) for the billing address.
type State struct {
	Code string
	Name string
}

// States is the billing state list.
var States = []State{
	{"AL", "Alabama"}, {"AK", "Alaska"}, {"AZ", "Arizona"}, {"AR", "Arkansas"},
	{"CA", "California"}, {"CO", "Colorado"}, {"CT", "Connecticut"}, {"DE", "Delaware"},
	{"DC", "District of Columbia"}, {"FL", "Florida"}, {"GA", "Georgia"}, {"HI", "Hawaii"},
	{"ID", "Idaho"}, {"IL", "Illinois"}, {"IN", "Indiana"}, {"IA", "Iowa"},
	{"KS", "Kansas"}, {"KY", "Kentucky"}, {"LA", "Louisiana"}, {"ME", "Maine"},
	{"MD", "Maryland"}, {"MA", "Massachusetts"}, {"MI", "Michigan"}, {"MN", "Minnesota"},
	{"MS", "Mississippi"}, {"MO", "Missouri"}, {"MT", "Montana"}, {"NE", "Nebraska"},
	{"NV", "Nevada"}, {"NH", "New Hampshire"}, {"NJ", "New Jersey"}, {"NM", "New Mexico"},
	{"NY", "New York"}, {"NC", "North Carolina"}, {"ND", "North Dakota"}, {"OH", "Ohio"},
	{"OK", "Oklahoma"}, {"OR", "Oregon"}, {"PA", "Pennsylvania"}, {"RI", "Rhode Island"},
	{"SC", "South Carolina"}, {"SD", "South Dakota"}, {"TN", "Tennessee"}, {"TX", "Texas"},
	{"UT", "Utah"}, {"VT", "Vermont"}, {"VA", "Virginia"}, {"WA", "Washington"},
	{"WV", "West Virginia"}, {"WI", "Wisconsin"}, {"WY", "Wyoming"},
}

// IsStateCode reports whether code is in States.
func IsStateCode(code string) bool {
	return slices.ContainsFunc(States, func(s State) bool { return s.Code == code })
}

// ServiceCategory groups related clinical services.
type ServiceCategory struct {
	Name     string
	Services []string
}

// ServiceCatalog is the fixed list of selectable services.
var ServiceCatalog = []ServiceCategory{
	{
		Name: "Emergency & Critical Care",
		Services: []string{
			"Emergency Department",
			"Neonatal Intensive Care Services",
			"Pediatric Intensive Care Services",
		},
	},
	{
		Name:     "Cardiac Services",
		Services: []string{"Cardiac Catheterization Laboratory", "Open Heart"},
	},
	{
		Name: "Diagnostic Services",
		Services: []string{
			"Magnetic Resonance Imaging (MRI)",
			"Diagnostic Radioisotope Facility",
			"Lithotripsy",
		},
	},
}

// Standards are the accreditation standards an applicant can apply.
var Standards = []string{"Action1", "Action2", "Action3"}

// Caps on the clinical date lists.
const (
	MaxThrombolytics  = 25
	MaxThrombectomies = 15
)
