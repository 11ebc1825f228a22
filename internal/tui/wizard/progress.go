package wizard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/dnvquote/internal/tui/theme"
	wiz "github.com/mark3labs/dnvquote/internal/wizard"
)

// renderProgress draws one bar segment per step, colored up to current,
// followed by the current step's label.
func renderProgress(current wiz.Step, width int) string {
	t := theme.Current()
	colors := theme.Gradient(t.Secondary, t.Primary, wiz.StepCount)
	segment := max((width-wiz.StepCount+1)/wiz.StepCount, 3)

	parts := make([]string, len(wiz.Steps))
	for i, step := range wiz.Steps {
		bar := strings.Repeat("━", segment)
		if step <= current {
			parts[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i])).Render(bar)
		} else {
			parts[i] = t.S().ProgressTodo.Render(bar)
		}
	}

	label := fmt.Sprintf("%s · %s", current.Title(), current.Label())
	return strings.Join(parts, " ") + "\n" + t.S().Label.Render(label)
}
