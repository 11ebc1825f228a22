package wizard

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// sanitizePaste strips escape sequences and control characters other than
// newline and tab, normalizes CRLF and trims trailing whitespace.
func sanitizePaste(content string) string {
	content = ansi.Strip(content)
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var b strings.Builder
	for _, r := range content {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case r < 32 || r == 127:
			continue
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " \t\n")
}

var newlinePattern = regexp.MustCompile(`\s*\n\s*`)

// singleLine folds a sanitized paste onto one line for a text input.
func singleLine(content string) string {
	return newlinePattern.ReplaceAllString(content, " ")
}

// pasteItems splits a sanitized paste into list entries, one per line or
// comma separated value.
func pasteItems(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		for _, v := range strings.Split(line, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
