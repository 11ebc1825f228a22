package wizard

import (
	"strings"

	"github.com/mark3labs/dnvquote/internal/tui/theme"
)

func styles() *theme.Styles { return theme.Current().S() }

// renderHintBar renders a hint bar with the given key-description pairs.
// Example: renderHintBar("↑↓", "navigate", "enter", "select", "esc", "back")
// Returns: "↑↓ navigate • enter select • esc back"
func renderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}
	s := styles()

	var b strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(" " + s.HintSeparator.Render("•") + " ")
		}
		b.WriteString(s.HintKey.Render(pairs[i]) + " " + s.HintDesc.Render(pairs[i+1]))
	}
	return b.String()
}

// renderError renders an inline field or status error.
func renderError(msg string) string {
	return styles().Error.Render("✗ " + msg)
}

// renderLabel renders a field label, marking required fields with a red *.
func renderLabel(label string, required bool) string {
	s := styles()
	out := s.Label.Render(label)
	if required {
		out += " " + s.Required.Render("*")
	}
	return out
}
