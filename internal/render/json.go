package render

import (
	"encoding/json"

	"github.com/tessler/checkup/internal/gate"
	"github.com/tessler/checkup/internal/runner"
)

// JSON renders the full report as an indented JSON document for
// automation. No progress lines are emitted in this mode so stdout
// stays machine-parseable.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

type jsonCheck struct {
	Name       string   `json:"name"`
	Label      string   `json:"label"`
	Status     string   `json:"status"`
	ExitCode   int      `json:"exit_code"`
	DurationMs int64    `json:"duration_ms"`
	Output     []string `json:"output,omitempty"`
	Error      string   `json:"error,omitempty"`
}

type jsonReport struct {
	Version  string      `json:"version"`
	Checks   []jsonCheck `json:"checks"`
	Message  string      `json:"message"`
	ExitCode int         `json:"exit_code"`
}

// Render marshals results and the aggregated report.
func (j *JSON) Render(results []runner.Result, report gate.Report) string {
	doc := jsonReport{
		Version:  "1.0",
		Checks:   make([]jsonCheck, 0, len(results)),
		Message:  report.Message,
		ExitCode: report.Code,
	}

	for _, result := range results {
		check := jsonCheck{
			Name:       result.Check.Name,
			Label:      result.Check.Label,
			Status:     result.Status.String(),
			ExitCode:   result.ExitCode,
			DurationMs: result.Duration.Milliseconds(),
			Output:     result.Output,
		}
		if result.Err != nil {
			check.Error = result.Err.Error()
		}
		doc.Checks = append(doc.Checks, check)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		// The document contains only strings and ints; marshalling
		// cannot realistically fail.
		return "{}"
	}
	return string(out) + "\n"
}
