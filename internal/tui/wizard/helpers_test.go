package wizard

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mark3labs/dnvquote/internal/form"
	"github.com/mark3labs/dnvquote/internal/store"
	wiz "github.com/mark3labs/dnvquote/internal/wizard"
	"github.com/stretchr/testify/require"
)

func init() {
	// Plain output so assertions can match rendered text.
	lipgloss.Writer.Profile = colorprofile.Ascii
}

var (
	keyEnter    = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyTab      = tea.KeyPressMsg{Code: tea.KeyTab}
	keyShiftTab = tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	keySpace    = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	keyEsc      = tea.KeyPressMsg{Code: tea.KeyEscape}
	keyDown     = tea.KeyPressMsg{Code: tea.KeyDown}
	keyRight    = tea.KeyPressMsg{Code: tea.KeyRight}
	keyLeft     = tea.KeyPressMsg{Code: tea.KeyLeft}
	keyBack     = tea.KeyPressMsg{Code: tea.KeyBackspace}
	keyCtrlN    = tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}
	keyCtrlP    = tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl}
	keyCtrlS    = tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	keyCtrlC    = tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
)

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// typeText sends s one rune at a time.
func typeText(update func(tea.Msg) tea.Cmd, s string) {
	for _, r := range s {
		_ = update(keyRune(r))
	}
}

// completeDraft passes every step validator.
func completeDraft() form.Draft {
	d := form.New()
	d.Identity = form.Identity{
		LegalEntityName: "Acme Health",
		DoingBusinessAs: "Acme",
		Primary: form.PrimaryContact{
			FirstName: "Jane",
			LastName:  "Doe",
			Title:     "COO",
			WorkPhone: "555-0100",
			Email:     "jane@acme.org",
		},
	}
	d.Facility.Type = form.FacilityCriticalAccess
	contact := form.Contact{FirstName: "Sam", LastName: "Lee", Phone: "555-0101", Email: "sam@acme.org"}
	d.Leadership = form.Leadership{
		CEO:       contact,
		Director:  contact,
		Invoicing: contact,
		Billing:   form.Address{Street: "1 Main St", City: "Springfield", State: "IL", ZIP: "62701"},
	}
	return d
}

type harness struct {
	ctrl  *wiz.Controller
	model *Model
	store store.DraftStore
	dir   string
}

// newHarness builds a model over a file store, seeded with seed when given.
func newHarness(t *testing.T, seed *form.Draft) *harness {
	t.Helper()
	dir := t.TempDir()
	st := store.NewFileStore(dir)
	if seed != nil {
		require.NoError(t, st.Save(context.Background(), *seed))
	}

	opts := wiz.DefaultOptions()
	opts.ArchiveDir = dir
	ctrl, err := wiz.New(context.Background(), st, nil, opts)
	require.NoError(t, err)

	m := New(context.Background(), ctrl, Options{DataDir: dir, ExportDir: dir})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	return &harness{ctrl: ctrl, model: m, store: st, dir: dir}
}

// press sends msg to the model and drops the returned command.
func (h *harness) press(msgs ...tea.Msg) {
	for _, msg := range msgs {
		h.model.Update(msg)
	}
}

// feed sends msg and runs the returned command once, feeding its message
// back into the model the way the runtime would. Only use it for keys
// whose command is a step message.
func (h *harness) feed(t *testing.T, msg tea.Msg) tea.Msg {
	t.Helper()
	_, cmd := h.model.Update(msg)
	require.NotNil(t, cmd, "expected a command for %v", msg)
	out := cmd()
	h.model.Update(out)
	return out
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.model.Update(keyRune(r))
	}
}

func (h *harness) view() string {
	return h.model.renderModal()
}
