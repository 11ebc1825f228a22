package wizard

import (
	"slices"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/dnvquote/internal/form"
	wiz "github.com/mark3labs/dnvquote/internal/wizard"
)

// stepView is the screen for one wizard step. It edits through a step
// editor and never touches the controller's draft directly.
type stepView interface {
	Editor() wiz.Editor
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	Focus() tea.Cmd
	FocusLast() tea.Cmd
	Blur()
	// ShowErrors pulls the editor's rejected fields into the view.
	ShowErrors() tea.Cmd
}

// capturer is implemented by steps that temporarily own every key, such as
// an open file picker.
type capturer interface {
	Capturing() bool
}

// formStep is the shared body of the editable steps.
type formStep struct {
	ed     wiz.Editor
	fields *fieldSet
	hints  []string
}

func (s *formStep) Editor() wiz.Editor         { return s.ed }
func (s *formStep) Update(msg tea.Msg) tea.Cmd { return s.fields.Update(msg) }
func (s *formStep) Focus() tea.Cmd             { return s.fields.Focus() }
func (s *formStep) FocusLast() tea.Cmd         { return s.fields.FocusLast() }
func (s *formStep) Blur()                      { s.fields.Blur() }

func (s *formStep) SetSize(width, height int) {
	s.fields.SetSize(width, max(height-2, 5))
}

func (s *formStep) ShowErrors() tea.Cmd {
	errs := s.ed.Errors()
	s.fields.SetErrors(errs)
	if len(errs) == 0 {
		return nil
	}
	return s.fields.FocusKey(errs[0].Field)
}

func (s *formStep) View() string {
	hints := append([]string{"tab", "next field"}, s.hints...)
	return s.fields.View() + "\n\n" + renderHintBar(hints...)
}

func newIdentityStep(ed *wiz.IdentityEditor) *formStep {
	text := func(key, label string, required bool) *textField {
		return newTextField(key, label, required,
			func() string { return ed.Get(key) },
			func(v string) error { return ed.Set(key, v) })
	}
	email := text(form.KeyEmail, "Email", true)
	email.label += "  " + styles().Warning.Render("Not verified")

	return &formStep{
		ed: ed,
		fields: newFieldSet(
			entry{heading: "Organization", c: text(form.KeyLegalEntityName, "Legal Entity Name", true)},
			entry{c: newCheckbox(form.KeySameAsLegal, "Same as Legal Entity Name",
				func() bool { return ed.Value().SameAsLegal }, ed.SetSameAsLegal)},
			entry{c: text(form.KeyDoingBusinessAs, "Doing Business As (d/b/a) Name", true)},
			entry{heading: "Primary Contact", c: text(form.KeyFirstName, "First Name", true)},
			entry{c: text(form.KeyLastName, "Last Name", true)},
			entry{c: text(form.KeyTitle, "Title", true)},
			entry{c: text(form.KeyWorkPhone, "Work Phone", true)},
			entry{c: text(form.KeyCellPhone, "Cell Phone", false)},
			entry{c: email},
		),
		hints: []string{"space", "toggle"},
	}
}

func newFacilityStep(ed *wiz.FacilityEditor) *formStep {
	options := make([]string, len(form.FacilityTypes))
	for i, ft := range form.FacilityTypes {
		options[i] = string(ft)
	}
	return &formStep{
		ed: ed,
		fields: newFieldSet(
			entry{c: newRadioList(form.KeyFacilityType, "Facility Type", true, options,
				func() int { return slices.Index(form.FacilityTypes, ed.Value()) },
				func(i int) { ed.Select(form.FacilityTypes[i]) })},
		),
		hints: []string{"↑↓", "move", "space", "select"},
	}
}

func newLeadershipStep(ed *wiz.LeadershipEditor) *formStep {
	text := func(key, label string, required bool) *textField {
		return newTextField(key, label, required,
			func() string { return ed.Get(key) },
			func(v string) error { return ed.Set(key, v) })
	}

	var entries []entry
	for _, role := range form.Roles {
		req := ed.Required(role)
		entries = append(entries,
			entry{heading: role.String(), c: newCheckbox(form.ContactKey(role, form.SuffixSameAsPrimary), "Same as Primary Contact",
				func() bool { return ed.SameAsPrimary(role) },
				func(on bool) { ed.SetSameAsPrimary(role, on) })},
			entry{c: text(form.ContactKey(role, form.SuffixFirstName), "First Name", req)},
			entry{c: text(form.ContactKey(role, form.SuffixLastName), "Last Name", req)},
			entry{c: text(form.ContactKey(role, form.SuffixPhone), "Phone", req)},
			entry{c: text(form.ContactKey(role, form.SuffixEmail), "Email", req)},
		)
	}
	entries = append(entries,
		entry{heading: "Invoicing Address", c: text(form.KeyBillingStreet, "Street Address", true)},
		entry{c: text(form.KeyBillingCity, "City", true)},
		entry{c: newStateField(form.KeyBillingState,
			func() string { return ed.Get(form.KeyBillingState) },
			func(v string) { _ = ed.Set(form.KeyBillingState, v) })},
		entry{c: text(form.KeyBillingZIP, "ZIP Code", true)},
	)

	return &formStep{
		ed:     ed,
		fields: newFieldSet(entries...),
		hints:  []string{"space", "toggle", "←→", "state"},
	}
}
