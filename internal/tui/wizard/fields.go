package wizard

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/dnvquote/internal/form"
	"github.com/mark3labs/dnvquote/internal/logger"
	"github.com/mark3labs/dnvquote/internal/tui/theme"
)

// TabExitForwardMsg is sent when Tab is pressed on the last field.
// Parent should move focus to buttons.
type TabExitForwardMsg struct{}

// TabExitBackwardMsg is sent when Shift+Tab is pressed on the first field.
// Parent should move focus to buttons (from end).
type TabExitBackwardMsg struct{}

// control is one stop in a step's tab order. Controls read and write
// through closures over the step's editor, so the editor stays the single
// owner of the values.
type control interface {
	Key() string
	Focus() tea.Cmd
	Blur()
	Update(msg tea.Msg) tea.Cmd
	// Sync refreshes the control from the editor after another control
	// changed it.
	Sync()
	View(errMsg string) string
	SetWidth(w int)
}

// enterHandler is implemented by controls that use enter themselves.
// For every other control enter moves to the next field.
type enterHandler interface {
	handlesEnter() bool
}

func inputStyles() textinput.Styles {
	t := theme.Current()
	return textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgDim)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgDim)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgDim)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	}
}

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "› "
	in.SetStyles(inputStyles())
	in.SetWidth(50)
	return in
}

// textField is a labelled single line input.
type textField struct {
	key      string
	label    string
	required bool
	input    textinput.Model
	get      func() string
	set      func(string) error
}

func newTextField(key, label string, required bool, get func() string, set func(string) error) *textField {
	f := &textField{
		key:      key,
		label:    label,
		required: required,
		input:    newInput(""),
		get:      get,
		set:      set,
	}
	f.input.SetValue(get())
	return f
}

func (f *textField) withPlaceholder(p string) *textField {
	f.input.Placeholder = p
	return f
}

func (f *textField) Key() string    { return f.key }
func (f *textField) Focus() tea.Cmd { return f.input.Focus() }
func (f *textField) Blur()          { f.input.Blur() }
func (f *textField) SetWidth(w int) { f.input.SetWidth(max(w-4, 10)) }

func (f *textField) Update(msg tea.Msg) tea.Cmd {
	if p, ok := msg.(tea.PasteMsg); ok {
		msg = tea.PasteMsg{Content: singleLine(sanitizePaste(p.Content))}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if v := f.input.Value(); v != f.get() {
		if err := f.set(v); err != nil {
			logger.Warn("Field %s: %v", f.key, err)
		}
	}
	return cmd
}

func (f *textField) Sync() {
	if v := f.get(); v != f.input.Value() {
		f.input.SetValue(v)
	}
}

func (f *textField) View(errMsg string) string {
	var b strings.Builder
	b.WriteString(renderLabel(f.label, f.required))
	b.WriteString("\n")
	b.WriteString(f.input.View())
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(errMsg))
	}
	return b.String()
}

// checkbox toggles a boolean with space.
type checkbox struct {
	key     string
	label   string
	get     func() bool
	set     func(bool)
	focused bool
}

func newCheckbox(key, label string, get func() bool, set func(bool)) *checkbox {
	return &checkbox{key: key, label: label, get: get, set: set}
}

func (c *checkbox) Key() string    { return c.key }
func (c *checkbox) Focus() tea.Cmd { c.focused = true; return nil }
func (c *checkbox) Blur()          { c.focused = false }
func (c *checkbox) Sync()          {}
func (c *checkbox) SetWidth(int)   {}

func (c *checkbox) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "space" {
		c.set(!c.get())
	}
	return nil
}

func (c *checkbox) View(errMsg string) string {
	box := "[ ]"
	if c.get() {
		box = "[x]"
	}
	line := renderCursorLine(c.focused, box+" "+c.label)
	if errMsg != "" {
		line += "\n" + renderError(errMsg)
	}
	return line
}

// renderCursorLine prefixes a line with the focus marker.
func renderCursorLine(focused bool, text string) string {
	if focused {
		return styles().Cursor.Render("▸ " + text)
	}
	return "  " + styles().Text.Render(text)
}

// radioList is a vertical single-choice list.
type radioList struct {
	key      string
	label    string
	required bool
	options  []string
	cursor   int
	get      func() int
	set      func(int)
	focused  bool
}

func newRadioList(key, label string, required bool, options []string, get func() int, set func(int)) *radioList {
	r := &radioList{key: key, label: label, required: required, options: options, get: get, set: set}
	r.cursor = max(get(), 0)
	return r
}

func (r *radioList) Key() string        { return r.key }
func (r *radioList) Focus() tea.Cmd     { r.focused = true; return nil }
func (r *radioList) Blur()              { r.focused = false }
func (r *radioList) SetWidth(int)       {}
func (r *radioList) handlesEnter() bool { return true }

func (r *radioList) Sync() {
	if i := r.get(); i >= 0 && !r.focused {
		r.cursor = i
	}
}

func (r *radioList) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch k.String() {
	case "up", "k":
		if r.cursor > 0 {
			r.cursor--
		}
	case "down", "j":
		if r.cursor < len(r.options)-1 {
			r.cursor++
		}
	case "space", "enter":
		r.set(r.cursor)
	}
	return nil
}

func (r *radioList) View(errMsg string) string {
	var b strings.Builder
	b.WriteString(renderLabel(r.label, r.required))
	selected := r.get()
	for i, opt := range r.options {
		mark := "( )"
		if i == selected {
			mark = "(•)"
		}
		b.WriteString("\n")
		b.WriteString(renderCursorLine(r.focused && i == r.cursor, mark+" "+opt))
	}
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(errMsg))
	}
	return b.String()
}

// choiceField is an inline picker for long option lists. Left and right
// cycle; typing a letter jumps to the next value starting with it.
type choiceField struct {
	key      string
	label    string
	required bool
	values   []string
	display  []string
	get      func() string
	set      func(string)
	focused  bool
}

func newStateField(key string, get func() string, set func(string)) *choiceField {
	c := &choiceField{key: key, label: "State", required: true, get: get, set: set}
	for _, s := range form.States {
		c.values = append(c.values, s.Code)
		c.display = append(c.display, s.Code+"  "+s.Name)
	}
	return c
}

func (c *choiceField) Key() string    { return c.key }
func (c *choiceField) Focus() tea.Cmd { c.focused = true; return nil }
func (c *choiceField) Blur()          { c.focused = false }
func (c *choiceField) Sync()          {}
func (c *choiceField) SetWidth(int)   {}

func (c *choiceField) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	i := slices.Index(c.values, c.get())
	switch s := k.String(); {
	case s == "right" || s == "down":
		c.set(c.values[(i+1)%len(c.values)])
	case s == "left" || s == "up":
		if i <= 0 {
			i = len(c.values)
		}
		c.set(c.values[i-1])
	case s == "backspace" || s == "delete":
		c.set("")
	case len(k.Text) == 1:
		letter := strings.ToUpper(k.Text)
		for n := 1; n <= len(c.values); n++ {
			j := (i + n) % len(c.values)
			if strings.HasPrefix(c.values[j], letter) {
				c.set(c.values[j])
				break
			}
		}
	}
	return nil
}

func (c *choiceField) View(errMsg string) string {
	value := styles().Muted.Render("Select a state")
	if i := slices.Index(c.values, c.get()); i >= 0 {
		value = c.display[i]
	}
	line := renderLabel(c.label, c.required) + "\n" + renderCursorLine(c.focused, "‹ "+value+" ›")
	if errMsg != "" {
		line += "\n" + renderError(errMsg)
	}
	return line
}

// chipInput collects a list of short values. Enter adds the typed value;
// with an empty input, left/right pick a chip and backspace removes it.
type chipInput struct {
	key      string
	label    string
	input    textinput.Model
	items    func() []string
	display  func(string) string
	add      func(string) error
	remove   func(string)
	limit    int // shown as a count when set
	selected int
	err      string
}

func newChipInput(key, label, placeholder string, items func() []string, add func(string) error, remove func(string)) *chipInput {
	return &chipInput{
		key:      key,
		label:    label,
		input:    newInput(placeholder),
		items:    items,
		display:  func(s string) string { return s },
		add:      add,
		remove:   remove,
		selected: -1,
	}
}

func (c *chipInput) Key() string        { return c.key }
func (c *chipInput) Focus() tea.Cmd     { return c.input.Focus() }
func (c *chipInput) Blur()              { c.input.Blur(); c.selected = -1 }
func (c *chipInput) Sync()              {}
func (c *chipInput) SetWidth(w int)     { c.input.SetWidth(max(w-4, 10)) }
func (c *chipInput) handlesEnter() bool { return true }

func (c *chipInput) Update(msg tea.Msg) tea.Cmd {
	if p, ok := msg.(tea.PasteMsg); ok {
		return c.paste(p.Content)
	}
	if k, ok := msg.(tea.KeyPressMsg); ok {
		items := c.items()
		empty := c.input.Value() == ""
		switch k.String() {
		case "enter":
			v := strings.TrimSpace(c.input.Value())
			if v == "" {
				return nil
			}
			if err := c.add(v); err != nil {
				c.err = err.Error()
				return nil
			}
			c.err = ""
			c.input.SetValue("")
			return nil
		case "left":
			if empty && len(items) > 0 {
				if c.selected < 0 {
					c.selected = len(items) - 1
				} else if c.selected > 0 {
					c.selected--
				}
				return nil
			}
		case "right":
			if empty && c.selected >= 0 {
				c.selected++
				if c.selected >= len(items) {
					c.selected = -1
				}
				return nil
			}
		case "backspace", "delete":
			if empty && len(items) > 0 {
				i := c.selected
				if i < 0 || i >= len(items) {
					i = len(items) - 1
				}
				c.remove(items[i])
				c.selected = min(i, len(items)-2)
				return nil
			}
		}
		c.err = ""
		c.selected = -1
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// paste adds every entry of a multi-value paste. A single value is typed
// into the input instead so it can still be edited.
func (c *chipInput) paste(content string) tea.Cmd {
	items := pasteItems(sanitizePaste(content))
	if len(items) <= 1 {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(tea.PasteMsg{Content: strings.Join(items, "")})
		return cmd
	}
	c.err = ""
	for _, v := range items {
		if err := c.add(v); err != nil && c.err == "" {
			c.err = err.Error()
		}
	}
	return nil
}

func (c *chipInput) View(errMsg string) string {
	s := styles()
	items := c.items()

	var b strings.Builder
	b.WriteString(renderLabel(c.label, false))
	if c.limit > 0 {
		b.WriteString(s.Muted.Render(fmt.Sprintf("  %d of %d", len(items), c.limit)))
	}
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString(s.Muted.Render("  none yet"))
	} else {
		chips := make([]string, len(items))
		for i, it := range items {
			st := s.Chip
			if i == c.selected {
				st = s.ChipSelected
			}
			chips[i] = st.Render(c.display(it) + " ×")
		}
		b.WriteString("  " + strings.Join(chips, " "))
	}
	b.WriteString("\n")
	b.WriteString(c.input.View())
	for _, msg := range []string{c.err, errMsg} {
		if msg != "" {
			b.WriteString("\n")
			b.WriteString(renderError(msg))
		}
	}
	return b.String()
}

// entry places a control in a fieldSet, optionally under a section heading.
type entry struct {
	heading string
	c       control
	when    func() bool
}

func (e entry) visible() bool { return e.when == nil || e.when() }

// fieldSet is the tab-ordered body of a step. It scrolls so the focused
// control stays visible and clears a field's error once it is edited.
type fieldSet struct {
	entries []entry
	focus   int // -1 when the set is blurred
	errs    form.ValidationErrors
	width   int
	height  int
	offset  int
}

func newFieldSet(entries ...entry) *fieldSet {
	return &fieldSet{entries: entries, focus: -1, width: 60, height: 20}
}

func (f *fieldSet) SetErrors(errs form.ValidationErrors) { f.errs = errs }

func (f *fieldSet) SetSize(width, height int) {
	f.width = width
	f.height = height
	for _, e := range f.entries {
		e.c.SetWidth(width)
	}
}

// Focused returns the focused control or nil.
func (f *fieldSet) Focused() control {
	if f.focus < 0 || f.focus >= len(f.entries) {
		return nil
	}
	return f.entries[f.focus].c
}

// Focus focuses the first visible control.
func (f *fieldSet) Focus() tea.Cmd { return f.focusAt(f.step(-1, 1)) }

// FocusLast focuses the last visible control.
func (f *fieldSet) FocusLast() tea.Cmd { return f.focusAt(f.step(len(f.entries), -1)) }

// FocusKey focuses the control with key.
func (f *fieldSet) FocusKey(key string) tea.Cmd {
	for i, e := range f.entries {
		if e.c.Key() == key && e.visible() {
			return f.focusAt(i)
		}
	}
	return nil
}

func (f *fieldSet) Blur() {
	if c := f.Focused(); c != nil {
		c.Blur()
	}
	f.focus = -1
}

func (f *fieldSet) focusAt(i int) tea.Cmd {
	if c := f.Focused(); c != nil {
		c.Blur()
	}
	f.focus = i
	if c := f.Focused(); c != nil {
		return c.Focus()
	}
	return nil
}

// step returns the next visible index from i in direction dir, or -1.
func (f *fieldSet) step(i, dir int) int {
	for i += dir; i >= 0 && i < len(f.entries); i += dir {
		if f.entries[i].visible() {
			return i
		}
	}
	return -1
}

func (f *fieldSet) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		key := k.String()
		if key == "enter" {
			if h, ok := f.Focused().(enterHandler); !ok || !h.handlesEnter() {
				key = "tab"
			}
		}
		switch key {
		case "tab":
			next := f.step(f.focus, 1)
			if next < 0 {
				f.Blur()
				return func() tea.Msg { return TabExitForwardMsg{} }
			}
			return f.focusAt(next)
		case "shift+tab":
			prev := f.step(f.focus, -1)
			if prev < 0 {
				f.Blur()
				return func() tea.Msg { return TabExitBackwardMsg{} }
			}
			return f.focusAt(prev)
		}
	}

	c := f.Focused()
	if c == nil {
		return nil
	}
	cmd := c.Update(msg)
	switch msg.(type) {
	case tea.KeyPressMsg, tea.PasteMsg:
		f.clearError(c.Key())
	}
	f.Sync()
	return cmd
}

// Sync refreshes every control from the editor.
func (f *fieldSet) Sync() {
	for _, e := range f.entries {
		e.c.Sync()
	}
	if c := f.Focused(); c != nil && !f.entries[f.focus].visible() {
		f.Blur()
	}
}

func (f *fieldSet) clearError(key string) {
	f.errs = slices.DeleteFunc(slices.Clone(f.errs), func(e form.ValidationError) bool {
		return e.Field == key
	})
}

func (f *fieldSet) View() string {
	type block struct {
		text  string
		lines int
		index int
	}
	var blocks []block
	for i, e := range f.entries {
		if !e.visible() {
			continue
		}
		var text string
		if e.heading != "" {
			text = styles().Section.Render(e.heading) + "\n"
		}
		text += e.c.View(f.errs.For(e.c.Key()))
		blocks = append(blocks, block{text: text, lines: strings.Count(text, "\n") + 2, index: i})
	}

	if len(blocks) == 0 {
		return ""
	}

	// Keep the focused block inside the window.
	f.offset = min(f.offset, len(blocks)-1)
	focusBlock := 0
	for i, bl := range blocks {
		if bl.index == f.focus {
			focusBlock = i
		}
	}
	if focusBlock < f.offset {
		f.offset = focusBlock
	}
	for {
		used := 0
		for _, bl := range blocks[f.offset : focusBlock+1] {
			used += bl.lines
		}
		if used <= f.height || f.offset >= focusBlock {
			break
		}
		f.offset++
	}

	var out []string
	used := 0
	for _, bl := range blocks[f.offset:] {
		if used+bl.lines > f.height && len(out) > 0 {
			break
		}
		out = append(out, bl.text)
		used += bl.lines
	}
	body := strings.Join(out, "\n\n")
	if f.offset > 0 {
		body = styles().Muted.Render("  ↑ more above") + "\n" + body
	}
	return body
}
