package render

import (
	"github.com/tessler/checkup/internal/gate"
	"github.com/tessler/checkup/internal/runner"
)

// Plain renders only the final summary line. Together with an
// unstyled Progress observer this reproduces the legacy gate's stdout
// surface: three progress lines, then the message.
type Plain struct{}

// NewPlain creates a plain renderer.
func NewPlain() *Plain {
	return &Plain{}
}

// Render returns the summary message terminated by a newline.
func (p *Plain) Render(_ []runner.Result, report gate.Report) string {
	return report.Message + "\n"
}
