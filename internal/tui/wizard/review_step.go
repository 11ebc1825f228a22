package wizard

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/dnvquote/internal/form"
	"github.com/mark3labs/dnvquote/internal/logger"
	"github.com/mark3labs/dnvquote/internal/review"
	wiz "github.com/mark3labs/dnvquote/internal/wizard"
)

// JumpToStepMsg asks the app to go back to a step from the review.
type JumpToStepMsg struct {
	Step wiz.Step
}

// OutlineChangedMsg carries the review outline after a section toggle.
type OutlineChangedMsg struct {
	Outline review.Outline
}

// jumpKeys are the shifted digits on a US layout.
var jumpKeys = map[string]wiz.Step{
	"!": wiz.StepIdentity,
	"@": wiz.StepFacility,
	"#": wiz.StepLeadership,
	"$": wiz.StepSites,
	"%": wiz.StepServices,
}

// reviewStep is step 6: the rendered review, the certification and the
// export keys.
type reviewStep struct {
	ed        *wiz.ReviewEditor
	draft     form.Draft
	outline   review.Outline
	viewport  viewport.Model
	exportDir string
	exportOpt review.ExportOptions

	width       int
	height      int
	pendingJump bool
	certErr     string
	status      string
	statusErr   bool
}

func newReviewStep(ed *wiz.ReviewEditor, d form.Draft, outline review.Outline, exportDir string, exportOpt review.ExportOptions) *reviewStep {
	vp := viewport.New(
		viewport.WithWidth(60),
		viewport.WithHeight(10),
	)
	vp.MouseWheelEnabled = true

	s := &reviewStep{
		ed:        ed,
		draft:     d,
		outline:   outline,
		viewport:  vp,
		exportDir: exportDir,
		exportOpt: exportOpt,
		width:     60,
		height:    15,
	}
	s.render()
	return s
}

func (s *reviewStep) Editor() wiz.Editor { return s.ed }
func (s *reviewStep) Focus() tea.Cmd     { return nil }
func (s *reviewStep) FocusLast() tea.Cmd { return nil }
func (s *reviewStep) Blur()              {}

// Capturing holds the keys while a "g" jump waits for its digit.
func (s *reviewStep) Capturing() bool { return s.pendingJump }

func (s *reviewStep) ShowErrors() tea.Cmd {
	s.certErr = s.ed.Errors().For(wiz.KeyCertify)
	return nil
}

// Outline returns the current section toggles.
func (s *reviewStep) Outline() review.Outline { return s.outline }

func (s *reviewStep) SetSize(width, height int) {
	s.width = width
	s.height = height

	// Reserve the certification line, status and hint bar.
	s.viewport.SetWidth(width)
	s.viewport.SetHeight(max(height-6, 5))
	s.render()
}

func (s *reviewStep) render() {
	s.viewport.SetContent(RenderMarkdown(review.Markdown(s.draft, s.outline), s.width))
}

func (s *reviewStep) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		s.viewport, cmd = s.viewport.Update(msg)
		return cmd
	}

	key := k.String()
	if s.pendingJump {
		s.pendingJump = false
		if n, ok := digit(key); ok {
			return jumpTo(wiz.Step(n))
		}
		return nil
	}
	s.status = ""

	if n, ok := digit(key); ok {
		s.outline.Toggle(review.SectionKeys[n-1])
		s.render()
		o := s.outline
		return func() tea.Msg { return OutlineChangedMsg{Outline: o} }
	}
	if step, ok := jumpKeys[key]; ok {
		return jumpTo(step)
	}

	switch key {
	case "g":
		s.pendingJump = true
		return nil
	case "space", "c":
		s.ed.SetCertified(!s.ed.Certified())
		s.certErr = ""
		return nil
	case "x":
		s.export(review.FormatCSV)
		return nil
	case "p":
		s.export(review.FormatPDF)
		return nil
	case "tab":
		return func() tea.Msg { return TabExitForwardMsg{} }
	case "shift+tab":
		return func() tea.Msg { return TabExitBackwardMsg{} }
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

// digit maps "1".."5" to a section number.
func digit(key string) (int, bool) {
	if len(key) == 1 && key[0] >= '1' && key[0] <= '5' {
		return int(key[0] - '0'), true
	}
	return 0, false
}

func jumpTo(step wiz.Step) tea.Cmd {
	return func() tea.Msg { return JumpToStepMsg{Step: step} }
}

func (s *reviewStep) export(format review.Format) {
	path, err := review.ExportFile(s.exportDir, s.draft, format, s.exportOpt)
	if err != nil {
		logger.Error("Exporting review as %s: %v", format, err)
		s.status, s.statusErr = err.Error(), true
		return
	}
	s.status, s.statusErr = fmt.Sprintf("Exported to %s", path), false
}

func (s *reviewStep) View() string {
	st := styles()
	var b strings.Builder

	b.WriteString(s.viewport.View())
	b.WriteString("\n\n")

	box := "[ ]"
	if s.ed.Certified() {
		box = "[x]"
	}
	b.WriteString(st.Text.Render(box + " I certify that the information provided is accurate"))
	if s.certErr != "" {
		b.WriteString("\n")
		b.WriteString(renderError(s.certErr))
	}

	switch {
	case s.pendingJump:
		b.WriteString("\n")
		b.WriteString(st.Warning.Render("Jump to step 1-5…"))
	case s.status == "":
	case s.statusErr:
		b.WriteString("\n")
		b.WriteString(renderError(s.status))
	default:
		b.WriteString("\n")
		b.WriteString(st.Success.Render("✓ " + s.status))
	}

	b.WriteString("\n")
	b.WriteString(renderHintBar(
		"↑↓", "scroll",
		"1-5", "fold",
		"g 1-5", "edit step",
		"space", "certify",
		"x/p", "csv/pdf",
		"enter", "submit",
	))
	return b.String()
}
