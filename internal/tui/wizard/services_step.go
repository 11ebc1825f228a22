package wizard

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/editor"
	"github.com/mark3labs/dnvquote/internal/form"
	"github.com/mark3labs/dnvquote/internal/logger"
	wiz "github.com/mark3labs/dnvquote/internal/wizard"
)

// OtherServicesEditedMsg is sent when the external editor returns with the
// edited list of other services, one per line.
type OtherServicesEditedMsg struct {
	Names []string
	Err   error
}

// servicesStep is step 5.
type servicesStep struct {
	formStep
	services *wiz.ServicesEditor
	tmpFile  string
	status   string
}

func newServicesStep(ed *wiz.ServicesEditor) *servicesStep {
	var entries []entry
	for _, cat := range form.ServiceCatalog {
		for i, svc := range cat.Services {
			e := entry{c: newCheckbox("service:"+svc, svc,
				func() bool { return ed.Value().IsSelected(cat.Name, svc) },
				func(bool) { ed.ToggleService(cat.Name, svc) })}
			if i == 0 {
				e.heading = cat.Name
			}
			entries = append(entries, e)
		}
	}

	other := newChipInput(form.KeyOtherServices, "Other Services", "Type a service and press enter",
		func() []string { return ed.Value().Other },
		func(v string) error {
			if !ed.AddOther(v) {
				return fmt.Errorf("%q is already listed", v)
			}
			return nil
		},
		func(v string) { ed.RemoveOther(v) })
	entries = append(entries, entry{c: other})

	for i, std := range form.Standards {
		e := entry{c: newCheckbox("standard:"+std, std,
			func() bool { return ed.Value().HasStandard(std) },
			func(bool) { ed.ToggleStandard(std) })}
		if i == 0 {
			e.heading = "Standards Applied"
		}
		entries = append(entries, e)
	}

	date := func(key, label string) *textField {
		return newTextField(key, label, false,
			func() string { return ed.Get(key) },
			func(v string) error { return ed.Set(key, v) }).withPlaceholder("YYYY-MM-DD")
	}
	entries = append(entries,
		entry{heading: "Certifications", c: date(form.KeyStrokeCertExpiry, "Stroke Certification Expiration Date")},
		entry{c: date(form.KeyApplicationDate, "Date of Application")},
		entry{heading: "Stroke Activity", c: dateChips(ed, form.KeyThrombolytics,
			"Thrombolytic Administration Dates (last twenty-five)", form.MaxThrombolytics,
			func(s form.Services) []string { return s.Thrombolytics })},
		entry{c: dateChips(ed, form.KeyThrombectomies,
			"Thrombectomy Dates (last fifteen)", form.MaxThrombectomies,
			func(s form.Services) []string { return s.Thrombectomies })},
	)

	s := &servicesStep{services: ed}
	s.formStep = formStep{
		ed:     ed,
		fields: newFieldSet(entries...),
		hints:  []string{"space", "toggle", "enter", "add", "backspace", "remove chip", "ctrl+e", "edit others"},
	}
	return s
}

func dateChips(ed *wiz.ServicesEditor, key, label string, limit int, list func(form.Services) []string) *chipInput {
	c := newChipInput(key, label, "YYYY-MM-DD",
		func() []string { return list(ed.Value()) },
		func(v string) error {
			added, err := ed.AddDate(key, v)
			if err != nil {
				return err
			}
			if !added {
				return fmt.Errorf("%s is already listed", form.DisplayDate(v))
			}
			return nil
		},
		func(v string) { ed.RemoveDate(key, v) })
	c.display = form.DisplayDate
	c.limit = limit
	return c
}

func (s *servicesStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		s.status = ""
		if msg.String() == "ctrl+e" {
			return s.openEditor()
		}
	case OtherServicesEditedMsg:
		s.cleanup()
		if msg.Err != nil {
			s.status = msg.Err.Error()
			return nil
		}
		s.services.SetOther(msg.Names)
		s.fields.Sync()
		return nil
	}
	return s.formStep.Update(msg)
}

// openEditor launches $EDITOR on the other services, one per line.
func (s *servicesStep) openEditor() tea.Cmd {
	if os.Getenv("EDITOR") == "" {
		s.status = "Set $EDITOR to edit the list in an editor"
		return nil
	}

	tmpfile, err := os.CreateTemp("", "dnvquote_services_*.txt")
	if err != nil {
		s.status = err.Error()
		return nil
	}
	content := strings.Join(s.services.Value().Other, "\n")
	if _, err := tmpfile.WriteString(content + "\n"); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		s.status = err.Error()
		return nil
	}
	_ = tmpfile.Close()
	s.tmpFile = tmpfile.Name()

	cmd, err := editor.Command("dnvquote", tmpfile.Name())
	if err != nil {
		s.cleanup()
		s.status = err.Error()
		return nil
	}

	path := tmpfile.Name()
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err != nil {
			return OtherServicesEditedMsg{Err: fmt.Errorf("editor: %w", err)}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return OtherServicesEditedMsg{Err: fmt.Errorf("reading edited list: %w", err)}
		}
		return OtherServicesEditedMsg{Names: strings.Split(string(data), "\n")}
	})
}

func (s *servicesStep) cleanup() {
	if s.tmpFile == "" {
		return
	}
	if err := os.Remove(s.tmpFile); err != nil {
		logger.Debug("Removing %s: %v", s.tmpFile, err)
	}
	s.tmpFile = ""
}

func (s *servicesStep) View() string {
	body := s.formStep.View()
	if s.status != "" {
		body += "\n" + renderError(s.status)
	}
	return body
}
