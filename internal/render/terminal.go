package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tessler/checkup/internal/gate"
	"github.com/tessler/checkup/internal/runner"
)

// Terminal renders a styled recap table and summary via lipgloss.
type Terminal struct {
	theme Theme
	title cases.Caser
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme) *Terminal {
	return &Terminal{theme: theme, title: cases.Title(language.English)}
}

// Render formats the per-check recap and the final summary line.
func (t *Terminal) Render(results []runner.Result, report gate.Report) string {
	var sb strings.Builder
	sb.WriteString("\n")

	nameWidth := 0
	for _, result := range results {
		if w := runewidth.StringWidth(result.Check.Name); w > nameWidth {
			nameWidth = w
		}
	}

	for _, result := range results {
		icon := t.theme.Success.Render(t.theme.Icons.Pass)
		if !result.Status.Passed() {
			icon = t.theme.Error.Render(t.theme.Icons.Fail)
		}

		name := runewidth.FillRight(t.title.String(result.Check.Name), nameWidth+2)
		detail := fmt.Sprintf("%.1fs", result.Duration.Seconds())
		if result.ExitCode != 0 {
			detail += fmt.Sprintf("  exit %d", result.ExitCode)
		}
		if runner.IsCommandNotFound(result) {
			detail += "  (not found)"
		}

		sb.WriteString("  ")
		sb.WriteString(icon)
		sb.WriteString(" ")
		sb.WriteString(t.theme.Primary.Render(name))
		sb.WriteString(t.theme.Muted.Render(detail))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	style := t.theme.Success
	if report.Code != gate.ExitAllPassed {
		style = t.theme.Error
	}
	sb.WriteString(style.Bold(true).Render(report.Message))
	sb.WriteString("\n")
	return sb.String()
}
