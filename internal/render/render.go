// Package render formats gate progress and reports for terminals,
// pipes, and automation.
package render

import (
	"github.com/tessler/checkup/internal/gate"
	"github.com/tessler/checkup/internal/runner"
)

// Renderer formats the end-of-run report.
type Renderer interface {
	Render(results []runner.Result, report gate.Report) string
}

// ByName returns the renderer for a format name. Unknown names get
// the plain renderer, the format whose output matches the legacy gate
// byte for byte.
func ByName(format string, theme Theme) Renderer {
	switch format {
	case "terminal":
		return NewTerminal(theme)
	case "json":
		return NewJSON()
	default:
		return NewPlain()
	}
}
