// Package review assembles the read-only review of a draft and the export
// artifacts built from it.
package review

import (
	"fmt"
	"strings"

	"github.com/mark3labs/dnvquote/internal/form"
)

// Row is one label/value line.
type Row struct {
	Label string
	Value string
}

// Card groups the rows of one contact. Empty rows are omitted.
type Card struct {
	Title string
	Rows  []Row
}

// ChipGroup is a titled list of short values.
type ChipGroup struct {
	Title string
	Chips []string
}

// Section is one collapsible block of the review, tied to the step that
// produced its data.
type Section struct {
	Key      string
	Title    string
	JumpStep int
	Rows     []Row
	Cards    []Card
	Lines    []string
	Chips    []ChipGroup
}

// Section keys.
const (
	SectionBasic      = "basic"
	SectionFacility   = "facility"
	SectionLeadership = "leadership"
	SectionSites      = "sites"
	SectionServices   = "services"
)

// SectionKeys lists the section keys in display order.
var SectionKeys = []string{SectionBasic, SectionFacility, SectionLeadership, SectionSites, SectionServices}

// Summary returns the six summary fields used by both exports.
func Summary(d form.Draft) []Row {
	p := d.Identity.Primary
	return []Row{
		{"Legal Entity Name", d.Identity.LegalEntityName},
		{"d/b/a Name", d.Identity.DoingBusinessAs},
		{"Primary Contact", p.FullName()},
		{"Phone", p.WorkPhone},
		{"Email", p.Email},
		{"Facility Type", string(d.Facility.Type)},
	}
}

// FlattenServices returns the selected service names in catalog order
// followed by the free-text services.
func FlattenServices(s form.Services) []string {
	return append(s.SelectedNames(), s.Other...)
}

// Sections groups the draft by originating step.
func Sections(d form.Draft) []Section {
	id := d.Identity
	svc := d.Services

	var files []string
	for _, f := range d.Sites.Files {
		files = append(files, fmt.Sprintf("%s (%s)", f.Name, f.SizeLabel()))
	}

	return []Section{
		{
			Key:      SectionBasic,
			Title:    "Basic Information",
			JumpStep: 1,
			Rows: []Row{
				{"Legal Entity Name", id.LegalEntityName},
				{"d/b/a Name", id.DoingBusinessAs},
			},
			Cards: []Card{card("Primary Contact",
				Row{"Name", id.Primary.FullName()},
				Row{"Title", id.Primary.Title},
				Row{"Work Phone", id.Primary.WorkPhone},
				Row{"Cell Phone", id.Primary.CellPhone},
				Row{"Email", id.Primary.Email},
			)},
		},
		{
			Key:      SectionFacility,
			Title:    "Facility Details",
			JumpStep: 2,
			Rows:     []Row{{"Facility Type", string(d.Facility.Type)}},
		},
		{
			Key:      SectionLeadership,
			Title:    "Leadership Contacts",
			JumpStep: 3,
			Cards: []Card{
				contactCard("CEO", d.Leadership.CEO, ""),
				contactCard("Director of Quality", d.Leadership.Director, ""),
				contactCard("Invoicing Contact", d.Leadership.Invoicing, JoinAddress(d.Leadership.Billing)),
			},
		},
		{
			Key:      SectionSites,
			Title:    "Site Information",
			JumpStep: 4,
			Rows:     []Row{{"Site Configuration", d.Sites.Mode.Label()}},
			Lines:    files,
		},
		{
			Key:      SectionServices,
			Title:    "Services & Certifications",
			JumpStep: 5,
			Rows: []Row{
				{"Date of Application", form.DisplayDate(svc.ApplicationDate)},
				{"Stroke Certification Expiry", form.DisplayDate(svc.StrokeCertExpiry)},
			},
			Chips: []ChipGroup{
				{"Services Provided", FlattenServices(svc)},
				{"Standards to Apply", svc.Standards},
				{fmt.Sprintf("Thrombolytic Dates (%d of last %d)", len(svc.Thrombolytics), form.MaxThrombolytics), svc.Thrombolytics.Display()},
				{fmt.Sprintf("Thrombectomy Dates (%d of last %d)", len(svc.Thrombectomies), form.MaxThrombectomies), svc.Thrombectomies.Display()},
			},
		},
	}
}

// JoinAddress joins the non-empty address parts with ", ".
func JoinAddress(a form.Address) string {
	if a.IsZero() {
		return ""
	}
	var parts []string
	for _, p := range []string{a.Street, a.City, a.State, a.ZIP} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func contactCard(title string, c form.Contact, address string) Card {
	return card(title,
		Row{"Name", c.FullName()},
		Row{"Phone", c.Phone},
		Row{"Email", c.Email},
		Row{"Address", address},
	)
}

func card(title string, rows ...Row) Card {
	c := Card{Title: title}
	for _, r := range rows {
		if strings.TrimSpace(r.Value) != "" {
			c.Rows = append(c.Rows, r)
		}
	}
	return c
}
