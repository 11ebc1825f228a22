// Package wizard is the terminal front end of the quote request: a start
// screen, one view per step, the review and the thank-you screen, all
// driven by a wizard.Controller.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/dnvquote/internal/form"
	"github.com/mark3labs/dnvquote/internal/logger"
	"github.com/mark3labs/dnvquote/internal/review"
	"github.com/mark3labs/dnvquote/internal/state"
	wiz "github.com/mark3labs/dnvquote/internal/wizard"
)

// Options configure the terminal wizard.
type Options struct {
	// DataDir holds the UI state file.
	DataDir string
	// ExportDir receives review exports and site templates.
	ExportDir string
	// PDFFont is embedded in PDF exports when set.
	PDFFont string
	// Flush writes any pending debounced save. Called on quit.
	Flush func(ctx context.Context) error
}

// Model is the BubbleTea model for the quote wizard.
type Model struct {
	ctx  context.Context
	ctrl *wiz.Controller
	opts Options
	ui   *state.UIState

	step    stepView
	buttons *ButtonBar

	width     int
	height    int
	status    string
	statusErr bool
}

// New builds the model over ctrl.
func New(ctx context.Context, ctrl *wiz.Controller, opts Options) *Model {
	m := &Model{
		ctx:    ctx,
		ctrl:   ctrl,
		opts:   opts,
		ui:     state.Load(opts.DataDir),
		width:  100,
		height: 40,
	}
	m.loadStep()
	return m
}

// Run starts a BubbleTea program for the wizard and blocks until it quits.
func Run(ctx context.Context, ctrl *wiz.Controller, opts Options) error {
	p := tea.NewProgram(New(ctx, ctrl, opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	return nil
}

// Init initializes the wizard model.
func (m *Model) Init() tea.Cmd {
	if m.step != nil {
		return m.step.Focus()
	}
	return nil
}

// loadStep builds the view for the controller's current step.
func (m *Model) loadStep() tea.Cmd {
	if m.ctrl.ShowStart() || m.ctrl.Submitted() {
		m.step, m.buttons = nil, nil
		return nil
	}

	step := m.ctrl.Step()
	switch ed := m.ctrl.EditorFor(step).(type) {
	case *wiz.IdentityEditor:
		m.step = newIdentityStep(ed)
	case *wiz.FacilityEditor:
		m.step = newFacilityStep(ed)
	case *wiz.LeadershipEditor:
		m.step = newLeadershipStep(ed)
	case *wiz.SitesEditor:
		m.step = newSitesStep(ed, m.opts.ExportDir)
	case *wiz.ServicesEditor:
		m.step = newServicesStep(ed)
	case *wiz.ReviewEditor:
		m.step = newReviewStep(ed, m.ctrl.Draft(), m.ui.Outline(), m.opts.ExportDir, review.ExportOptions{PDFFont: m.opts.PDFFont})
	default:
		m.step = nil
		return nil
	}
	m.buttons = NewButtonBar(NavButtons(step == wiz.StepIdentity, step == wiz.StepReview))
	m.updateSize()
	return m.step.Focus()
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSize()
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, m.quit()
		}
		return m, m.handleKey(msg)

	case TabExitForwardMsg:
		if m.buttons != nil {
			m.buttons.FocusFirst()
		}
		return m, nil

	case TabExitBackwardMsg:
		if m.buttons != nil {
			m.buttons.FocusLast()
		}
		return m, nil

	case JumpToStepMsg:
		if err := m.ctrl.GoToStep(msg.Step); err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		return m, m.loadStep()

	case OutlineChangedMsg:
		m.ui.SetOutline(msg.Outline)
		if err := state.Save(m.opts.DataDir, m.ui); err != nil {
			logger.Warn("Failed to save UI state: %v", err)
		}
		return m, nil
	}

	if m.step != nil {
		return m, m.step.Update(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()

	switch {
	case m.ctrl.ShowStart():
		switch key {
		case "enter":
			m.ctrl.Start()
			return m.loadStep()
		case "esc", "q":
			return m.quit()
		}
		return nil

	case m.ctrl.Submitted():
		if key == "enter" {
			if err := m.ctrl.RestartForm(m.ctx); err != nil {
				m.setStatus(err.Error(), true)
				return nil
			}
			m.setStatus("", false)
			return m.loadStep()
		}
		return nil
	}

	if c, ok := m.step.(capturer); ok && c.Capturing() {
		return m.step.Update(msg)
	}

	switch key {
	case "ctrl+s":
		return m.save()
	case "ctrl+n":
		return m.next()
	case "ctrl+p", "esc":
		return m.back()
	}

	if m.buttons.Focused() {
		return m.updateButtons(key)
	}
	if key == "enter" && m.ctrl.Step() == wiz.StepReview {
		return m.next()
	}
	return m.step.Update(msg)
}

func (m *Model) updateButtons(key string) tea.Cmd {
	switch key {
	case "right", "tab":
		if !m.buttons.Next() {
			return m.step.Focus()
		}
	case "left", "shift+tab":
		if !m.buttons.Prev() {
			return m.step.FocusLast()
		}
	case "enter", "space":
		btn, ok := m.buttons.Selected()
		if !ok {
			return nil
		}
		switch btn.Action {
		case ActionBack:
			return m.back()
		case ActionSave:
			return m.save()
		case ActionNext:
			return m.next()
		}
	}
	return nil
}

func (m *Model) save() tea.Cmd {
	if err := m.ctrl.Save(m.ctx); err != nil {
		logger.Error("Save failed: %v", err)
		m.setStatus(err.Error(), true)
		return nil
	}
	m.setStatus(wiz.SavedMessage, false)
	return nil
}

func (m *Model) back() tea.Cmd {
	m.ctrl.Retreat()
	m.setStatus("", false)
	return m.loadStep()
}

// next continues past the current step, or submits from the review.
func (m *Model) next() tea.Cmd {
	if rs, ok := m.step.(*reviewStep); ok {
		_, err := rs.ed.Submit(m.ctx, m.ctrl)
		var incomplete *wiz.IncompleteError
		switch {
		case errors.Is(err, wiz.ErrCertificationRequired):
			rs.ShowErrors()
			m.setStatus("Certification required", true)
			return nil
		case errors.As(err, &incomplete):
			logger.Warn("Submit refused: %v", err)
			if gerr := m.ctrl.GoToStep(incomplete.Step); gerr != nil {
				m.setStatus(err.Error(), true)
				return nil
			}
			cmd := m.loadStep()
			m.setStatus(fmt.Sprintf("Please complete step %d before submitting", int(incomplete.Step)), true)
			return cmd
		case err != nil:
			logger.Error("Submit failed: %v", err)
			m.setStatus(err.Error(), true)
			return nil
		}
		m.setStatus("", false)
		return m.loadStep()
	}

	err := m.ctrl.Continue(m.ctx, m.step.Editor())
	var verrs form.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		m.buttons.Blur()
		m.setStatus("Please correct the highlighted fields", true)
		return m.step.ShowErrors()
	case err != nil:
		m.setStatus(err.Error(), true)
		return nil
	}
	m.setStatus("", false)
	return m.loadStep()
}

// quit flushes a pending debounced save before exiting.
func (m *Model) quit() tea.Cmd {
	if m.opts.Flush != nil {
		if err := m.opts.Flush(m.ctx); err != nil {
			logger.Error("Flushing draft on quit: %v", err)
		}
	}
	return tea.Quit
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status, m.statusErr = msg, isErr
}

// modalWidth is the modal width for the current terminal, kept readable.
func (m *Model) modalWidth() int {
	return min(max(m.width-10, 60), 110)
}

// updateSize sizes the current step to the space left inside the modal.
func (m *Model) updateSize() {
	// Border, padding, title, progress, buttons and status.
	contentWidth := m.modalWidth() - 6
	contentHeight := max(m.height-16, 10)

	if m.step != nil {
		m.step.SetSize(contentWidth, contentHeight)
	}
	if m.buttons != nil {
		m.buttons.SetWidth(contentWidth)
	}
}

// View renders the wizard UI.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	content := m.renderModal()

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(content).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// renderModal wraps the current screen in a centered modal container.
func (m *Model) renderModal() string {
	s := styles()
	innerWidth := m.modalWidth() - 6

	var sections []string
	switch {
	case m.ctrl.ShowStart():
		sections = append(sections, renderStart(m.ctrl.Restored()))
	case m.ctrl.Submitted():
		sections = append(sections, renderDone(m.ctrl.Reference(), innerWidth))
	case m.step != nil:
		step := m.ctrl.Step()
		sections = append(sections,
			s.ModalTitle.Width(innerWidth).Render(step.Label()),
			renderProgress(step, innerWidth),
			"",
			m.step.View(),
			"",
			m.buttons.Render(),
		)
	}

	if m.status != "" {
		if m.statusErr {
			sections = append(sections, renderError(m.status))
		} else {
			sections = append(sections, s.Success.Render("✓ "+m.status))
		}
	}

	modal := s.ModalContainer.Width(m.modalWidth()).Render(strings.Join(sections, "\n"))

	// Center the modal on screen
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
