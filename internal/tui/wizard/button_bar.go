package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// ButtonAction identifies what a navigation button does.
type ButtonAction int

const (
	ActionBack ButtonAction = iota // Exit on step 1, Previous afterwards
	ActionSave
	ActionNext // Continue, or Submit on the review step
)

// Button represents a single button in the button bar.
type Button struct {
	Label  string
	Action ButtonAction
	State  ButtonState
}

// ButtonBar manages a set of buttons with consistent styling.
type ButtonBar struct {
	buttons []Button
	focus   int // -1 when the bar is not focused
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		focus:   -1,
		width:   60,
	}
}

// NavButtons builds the navigation set for a step: Exit or Previous, Save
// on the editable steps, then Continue or Submit.
func NavButtons(first, review bool) []Button {
	back := Button{Label: "← Previous", Action: ActionBack}
	if first {
		back.Label = "Exit"
	}
	buttons := []Button{back}
	if !review {
		buttons = append(buttons, Button{Label: "Save", Action: ActionSave})
	}
	next := Button{Label: "Continue →", Action: ActionNext}
	if review {
		next.Label = "Submit"
	}
	return append(buttons, next)
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// Focused reports whether a button has focus.
func (b *ButtonBar) Focused() bool { return b.focus >= 0 }

// FocusFirst focuses the first enabled button.
func (b *ButtonBar) FocusFirst() { b.focus = b.nextEnabled(-1, 1) }

// FocusLast focuses the last enabled button.
func (b *ButtonBar) FocusLast() { b.focus = b.nextEnabled(len(b.buttons), -1) }

// Blur removes focus from the bar.
func (b *ButtonBar) Blur() { b.focus = -1 }

// Next moves focus right. It returns false when focus leaves the bar.
func (b *ButtonBar) Next() bool {
	b.focus = b.nextEnabled(b.focus, 1)
	return b.focus >= 0
}

// Prev moves focus left. It returns false when focus leaves the bar.
func (b *ButtonBar) Prev() bool {
	b.focus = b.nextEnabled(b.focus, -1)
	return b.focus >= 0
}

// Selected returns the focused button.
func (b *ButtonBar) Selected() (Button, bool) {
	if b.focus < 0 || b.focus >= len(b.buttons) {
		return Button{}, false
	}
	return b.buttons[b.focus], true
}

func (b *ButtonBar) nextEnabled(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(b.buttons); i += dir {
		if b.buttons[i].State != ButtonDisabled {
			return i
		}
	}
	return -1
}

// Render renders the button bar with proper spacing and styling.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}
	s := styles()

	var rendered []string
	for i, btn := range b.buttons {
		switch {
		case btn.State == ButtonDisabled:
			rendered = append(rendered, s.ButtonDisabled.Render(btn.Label))
		case btn.State == ButtonFocused || i == b.focus:
			rendered = append(rendered, s.ButtonFocused.Render(btn.Label))
		default:
			rendered = append(rendered, s.ButtonNormal.Render(btn.Label))
		}
	}

	// Center the button bar
	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, strings.Join(rendered, ""))
}
