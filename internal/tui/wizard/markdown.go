package wizard

import (
	"strings"

	"charm.land/glamour/v2"
	"github.com/mark3labs/dnvquote/internal/logger"
)

// maxMarkdownWidth caps the review width for readability.
const maxMarkdownWidth = 120

// RenderMarkdown renders markdown for the terminal using glamour, falling
// back to the raw text if rendering fails.
func RenderMarkdown(content string, width int) string {
	width = min(width, maxMarkdownWidth)

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logger.Warn("Creating markdown renderer: %v", err)
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		logger.Warn("Rendering markdown: %v", err)
		return content
	}

	// Remove trailing newline that glamour adds
	return strings.TrimSuffix(rendered, "\n")
}
