package wizard

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/dnvquote/internal/form"
	"github.com/mark3labs/dnvquote/internal/logger"
	"github.com/mark3labs/dnvquote/internal/review"
	wiz "github.com/mark3labs/dnvquote/internal/wizard"
)

// KeyUploadedFiles is the field key of the uploaded file list.
const KeyUploadedFiles = "uploadedFiles"

type openPickerMsg struct{}

type writeTemplateMsg struct{ format review.Format }

// fileList shows the uploaded files. Enter opens the picker, d removes the
// highlighted file and t/T write the site template.
type fileList struct {
	files   func() form.FileSet
	remove  func(form.FileDescriptor)
	cursor  int
	focused bool
}

func (l *fileList) Key() string        { return KeyUploadedFiles }
func (l *fileList) Focus() tea.Cmd     { l.focused = true; return nil }
func (l *fileList) Blur()              { l.focused = false }
func (l *fileList) SetWidth(int)       {}
func (l *fileList) handlesEnter() bool { return true }

func (l *fileList) Sync() {
	l.cursor = min(l.cursor, max(len(l.files())-1, 0))
}

func (l *fileList) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	files := l.files()
	switch k.String() {
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(files)-1 {
			l.cursor++
		}
	case "enter", "a":
		return func() tea.Msg { return openPickerMsg{} }
	case "d", "delete", "backspace":
		if l.cursor < len(files) {
			l.remove(files[l.cursor])
		}
	case "t":
		return func() tea.Msg { return writeTemplateMsg{format: review.FormatCSV} }
	case "T":
		return func() tea.Msg { return writeTemplateMsg{format: review.FormatXLSX} }
	}
	return nil
}

func (l *fileList) View(errMsg string) string {
	var b strings.Builder
	b.WriteString(renderLabel("Site Information Files", false))
	b.WriteString("\n")
	b.WriteString(styles().Muted.Render("  Upload a spreadsheet listing every location (press t for the CSV template, T for XLSX)"))

	files := l.files()
	if len(files) == 0 {
		b.WriteString("\n")
		b.WriteString(renderCursorLine(l.focused, "+ Add a file"))
	}
	for i, f := range files {
		b.WriteString("\n")
		b.WriteString(renderCursorLine(l.focused && i == l.cursor, "📄 "+f.Name+"  "+f.SizeLabel()))
	}
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(errMsg))
	}
	return b.String()
}

// sitesStep is step 4: the single/multiple choice and the file list, with a
// file picker opened on demand.
type sitesStep struct {
	formStep
	sites     *wiz.SitesEditor
	exportDir string
	picker    *FilePicker
	width     int
	height    int
	status    string
	statusErr bool
}

func newSitesStep(ed *wiz.SitesEditor, exportDir string) *sitesStep {
	modes := []form.SiteMode{form.SiteSingle, form.SiteMultiple}
	labels := []string{form.SiteSingle.Label(), form.SiteMultiple.Label()}

	s := &sitesStep{sites: ed, exportDir: exportDir}
	s.formStep = formStep{
		ed: ed,
		fields: newFieldSet(
			entry{c: newRadioList("multipleLocations", "Does your organization have a single or multiple locations?", false, labels,
				func() int {
					if ed.Value().Mode == form.SiteMultiple {
						return 1
					}
					return 0
				},
				func(i int) { ed.SetMode(modes[i]) })},
			entry{
				c: &fileList{
					files:  func() form.FileSet { return ed.Value().Files },
					remove: func(f form.FileDescriptor) { ed.RemoveFile(f.Name, f.Size) },
				},
				when: func() bool { return ed.Value().Mode == form.SiteMultiple },
			},
		),
		hints: []string{"space", "select", "enter", "add file", "d", "remove"},
	}
	return s
}

// Capturing reports whether the file picker is open.
func (s *sitesStep) Capturing() bool { return s.picker != nil }

func (s *sitesStep) SetSize(width, height int) {
	s.width, s.height = width, height
	s.formStep.SetSize(width, height-1)
	if s.picker != nil {
		s.picker.SetSize(width, height)
	}
}

func (s *sitesStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case openPickerMsg:
		s.picker = NewFilePicker("", s.sites.Allowed())
		s.picker.SetSize(s.width, s.height)
		return nil

	case FilePickerClosedMsg:
		s.picker = nil
		return nil

	case FileSelectedMsg:
		s.picker = nil
		added, err := s.sites.AddPath(msg.Path)
		switch {
		case errors.Is(err, wiz.ErrUnsupportedFile):
			s.setStatus(err.Error(), true)
		case err != nil:
			logger.Warn("Adding site file %s: %v", msg.Path, err)
			s.setStatus(err.Error(), true)
		case !added:
			s.setStatus("File already added", false)
		default:
			s.setStatus("Added "+msg.Path, false)
		}
		s.fields.Sync()
		return nil

	case writeTemplateMsg:
		path, err := review.WriteTemplateFile(s.exportDir, msg.format)
		if err != nil {
			logger.Error("Writing site template: %v", err)
			s.setStatus(err.Error(), true)
			return nil
		}
		s.setStatus(fmt.Sprintf("Template saved to %s", path), false)
		return nil
	}

	if s.picker != nil {
		return s.picker.Update(msg)
	}
	if _, ok := msg.(tea.KeyPressMsg); ok {
		s.status = ""
	}
	return s.formStep.Update(msg)
}

func (s *sitesStep) setStatus(msg string, isErr bool) {
	s.status, s.statusErr = msg, isErr
}

func (s *sitesStep) View() string {
	if s.picker != nil {
		return s.picker.View()
	}
	body := s.formStep.View()
	switch {
	case s.status == "":
	case s.statusErr:
		body += "\n" + renderError(s.status)
	default:
		body += "\n" + styles().Success.Render("✓ "+s.status)
	}
	return body
}
