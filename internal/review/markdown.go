package review

import (
	"fmt"
	"strings"

	"github.com/mark3labs/dnvquote/internal/form"
)

// NotProvided stands in for empty values in the review.
const NotProvided = "Not provided"

// Markdown renders the review as markdown. Collapsed sections keep their
// heading and lose their body.
func Markdown(d form.Draft, outline Outline) string {
	var b strings.Builder
	b.WriteString("# Hospital Information\n\n")

	for _, s := range Sections(d) {
		marker := "▾"
		if !outline.Expanded(s.Key) {
			marker = "▸"
		}
		fmt.Fprintf(&b, "## %s %d. %s\n\n", marker, s.JumpStep, s.Title)
		if !outline.Expanded(s.Key) {
			continue
		}
		writeSection(&b, s)
	}
	return b.String()
}

func writeSection(b *strings.Builder, s Section) {
	for _, r := range s.Rows {
		writeRow(b, r)
	}
	if len(s.Rows) > 0 {
		b.WriteString("\n")
	}

	for _, c := range s.Cards {
		fmt.Fprintf(b, "### %s\n\n", escape(c.Title))
		if len(c.Rows) == 0 {
			fmt.Fprintf(b, "_%s_\n\n", NotProvided)
			continue
		}
		for _, r := range c.Rows {
			writeRow(b, r)
		}
		b.WriteString("\n")
	}

	for _, line := range s.Lines {
		fmt.Fprintf(b, "- %s\n", escape(line))
	}
	if len(s.Lines) > 0 {
		b.WriteString("\n")
	}

	for _, g := range s.Chips {
		fmt.Fprintf(b, "**%s**\n\n", escape(g.Title))
		if len(g.Chips) == 0 {
			fmt.Fprintf(b, "_None_\n\n")
			continue
		}
		chips := make([]string, len(g.Chips))
		for i, c := range g.Chips {
			chips[i] = "`" + strings.ReplaceAll(c, "`", "'") + "`"
		}
		b.WriteString(strings.Join(chips, " "))
		b.WriteString("\n\n")
	}
}

func writeRow(b *strings.Builder, r Row) {
	value := NotProvided
	if strings.TrimSpace(r.Value) != "" {
		value = escape(r.Value)
	}
	fmt.Fprintf(b, "- **%s:** %s\n", r.Label, value)
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "#", `\#`,
	"[", `\[`, "]", `\]`, "<", `\<`, ">", `\>`, "|", `\|`,
)

// escape keeps user text from being read as markdown.
func escape(s string) string {
	return markdownEscaper.Replace(s)
}
