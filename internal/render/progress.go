package render

import (
	"fmt"
	"io"

	"github.com/tessler/checkup/internal/config"
	"github.com/tessler/checkup/internal/gate"
	"github.com/tessler/checkup/internal/runner"
)

// Progress writes per-check progress lines as the run advances. It
// implements runner.Observer and carries the legacy line protocol:
// each check's label goes to Out before the tool is spawned.
type Progress struct {
	Out        io.Writer
	Theme      Theme
	Styled     bool   // lipgloss styling; off for piped output
	ShowOutput string // config.ShowAlways, ShowOnFail, ShowNever
}

// NewProgress returns a Progress observer with the on-fail output
// policy.
func NewProgress(out io.Writer, theme Theme, styled bool) *Progress {
	return &Progress{Out: out, Theme: theme, Styled: styled, ShowOutput: config.ShowOnFail}
}

// CheckStarted prints the check's progress label.
func (p *Progress) CheckStarted(_ int, check runner.Check) {
	if p.Styled {
		fmt.Fprintln(p.Out, p.Theme.Primary.Render(check.Label))
		return
	}
	fmt.Fprintln(p.Out, check.Label)
}

// CheckFinished echoes the tool's captured output according to the
// show-output policy and, in styled mode, a status line.
func (p *Progress) CheckFinished(_ int, result runner.Result) {
	if p.showFor(result) {
		for _, line := range result.Output {
			fmt.Fprintln(p.Out, line)
		}
	}

	if !p.Styled {
		return
	}

	icon := p.Theme.Success.Render(p.Theme.Icons.Pass)
	if !result.Status.Passed() {
		icon = p.Theme.Error.Render(p.Theme.Icons.Fail)
	}
	detail := fmt.Sprintf("%.1fs", result.Duration.Seconds())
	if result.ExitCode != 0 {
		detail += fmt.Sprintf(", exit %d", result.ExitCode)
	}
	fmt.Fprintf(p.Out, "%s %s %s\n", icon, result.Check.Name, p.Theme.Muted.Render("("+detail+")"))
}

func (p *Progress) showFor(result runner.Result) bool {
	switch p.ShowOutput {
	case config.ShowAlways:
		return true
	case config.ShowNever:
		return false
	default:
		return result.Status == gate.StatusFail
	}
}
