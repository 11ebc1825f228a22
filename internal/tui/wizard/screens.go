package wizard

import (
	"fmt"
	"strings"

	wiz "github.com/mark3labs/dnvquote/internal/wizard"
)

// Start and done screen copy.
const (
	WelcomeTitle   = "Welcome to the DNV Health Care Form"
	ThankYouTitle  = "Thank you for submitting the quote request!"
	RestoredNotice = "A saved draft was found. You will continue where you left off."
	NewFormLabel   = "Start a New Form"
)

func renderStart(restored bool) string {
	s := styles()
	var b strings.Builder

	b.WriteString(s.HeaderTitle.Render(WelcomeTitle))
	b.WriteString("\n\n")
	b.WriteString(s.Text.Render("Request an accreditation quote in six steps:"))
	b.WriteString("\n")
	for _, step := range wiz.Steps {
		b.WriteString(s.Label.Render(fmt.Sprintf("  %d. %s", int(step), step.Label())))
		b.WriteString("\n")
	}
	if restored {
		b.WriteString("\n")
		b.WriteString(s.Success.Render("✓ " + RestoredNotice))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderHintBar("enter", "start", "esc", "quit"))
	return b.String()
}

func renderDone(ref string, width int) string {
	s := styles()
	var b strings.Builder

	b.WriteString(s.HeaderTitle.Render(ThankYouTitle))
	b.WriteString("\n\n")
	b.WriteString(s.Text.Render("A DNV representative will contact you with your quote."))
	b.WriteString("\n")
	if ref != "" {
		b.WriteString(s.Label.Render("Reference: ") + s.Text.Render(ref))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	bar := NewButtonBar([]Button{{Label: NewFormLabel, State: ButtonFocused}})
	bar.SetWidth(width)
	b.WriteString(bar.Render())
	b.WriteString("\n\n")
	b.WriteString(renderHintBar("enter", "new form", "ctrl+c", "quit"))
	return b.String()
}
