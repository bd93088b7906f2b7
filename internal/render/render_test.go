package render

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessler/checkup/internal/config"
	"github.com/tessler/checkup/internal/gate"
	"github.com/tessler/checkup/internal/runner"
)

func sampleResults() []runner.Result {
	return []runner.Result{
		{
			Check:    runner.Check{Name: "lint", Label: "Linting code..."},
			Status:   gate.StatusPass,
			Duration: 1200 * time.Millisecond,
		},
		{
			Check:    runner.Check{Name: "types", Label: "Checking types..."},
			Status:   gate.StatusFail,
			ExitCode: 1,
			Output:   []string{"main.py:3: error: bad type"},
			Duration: 800 * time.Millisecond,
		},
		{
			Check:    runner.Check{Name: "test", Label: "Running tests..."},
			Status:   gate.StatusPass,
			Duration: 3 * time.Second,
		},
	}
}

func TestPlain_RendersOnlyTheSummaryLine(t *testing.T) {
	t.Parallel()

	report := gate.Aggregate(gate.StatusPass, gate.StatusFail, gate.StatusPass)
	out := NewPlain().Render(sampleResults(), report)

	assert.Equal(t, "Linting and tests passed, but type checking failed.\n", out)
}

func TestProgress_PlainModeMatchesLegacyLineProtocol(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewProgress(&buf, MonoTheme(), false)
	p.ShowOutput = config.ShowNever

	results := sampleResults()
	for i, result := range results {
		p.CheckStarted(i, result.Check)
		p.CheckFinished(i, result)
	}

	assert.Equal(t, "Linting code...\nChecking types...\nRunning tests...\n", buf.String())
}

func TestProgress_OnFailEchoesFailedCheckOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewProgress(&buf, MonoTheme(), false)

	results := sampleResults()
	for i, result := range results {
		p.CheckStarted(i, result.Check)
		p.CheckFinished(i, result)
	}

	assert.Contains(t, buf.String(), "main.py:3: error: bad type")
}

func TestProgress_StyledModeAddsStatusLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewProgress(&buf, MonoTheme(), true)
	p.ShowOutput = config.ShowNever

	results := sampleResults()
	for i, result := range results {
		p.CheckStarted(i, result.Check)
		p.CheckFinished(i, result)
	}

	out := buf.String()
	assert.Contains(t, out, "+ lint")
	assert.Contains(t, out, "x types")
	assert.Contains(t, out, "exit 1")
}

func TestTerminal_RendersRecapAndSummary(t *testing.T) {
	t.Parallel()

	report := gate.Aggregate(gate.StatusPass, gate.StatusFail, gate.StatusPass)
	out := NewTerminal(MonoTheme()).Render(sampleResults(), report)

	assert.Contains(t, out, "Lint")
	assert.Contains(t, out, "Types")
	assert.Contains(t, out, "Test")
	assert.Contains(t, out, "exit 1")
	assert.Contains(t, out, "Linting and tests passed, but type checking failed.")
}

func TestJSON_RoundTrips(t *testing.T) {
	t.Parallel()

	report := gate.Aggregate(gate.StatusFail, gate.StatusFail, gate.StatusFail)
	out := NewJSON().Render(sampleResults(), report)

	var doc struct {
		Version string `json:"version"`
		Checks  []struct {
			Name     string `json:"name"`
			Status   string `json:"status"`
			ExitCode int    `json:"exit_code"`
		} `json:"checks"`
		Message  string `json:"message"`
		ExitCode int    `json:"exit_code"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "1.0", doc.Version)
	require.Len(t, doc.Checks, 3)
	assert.Equal(t, "lint", doc.Checks[0].Name)
	assert.Equal(t, "fail", doc.Checks[1].Status)
	assert.Equal(t, 1, doc.Checks[1].ExitCode)
	assert.Equal(t, "Everything failed, but you didn't!", doc.Message)
	assert.Equal(t, 3, doc.ExitCode)
}

func TestByName_SelectsRenderer(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &Terminal{}, ByName("terminal", MonoTheme()))
	assert.IsType(t, &JSON{}, ByName("json", MonoTheme()))
	assert.IsType(t, &Plain{}, ByName("plain", MonoTheme()))
	assert.IsType(t, &Plain{}, ByName("bogus", MonoTheme()))
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "orca", ThemeByName("orca").Name)
	assert.Equal(t, "mono", ThemeByName("mono").Name)
	assert.Equal(t, "default", ThemeByName("anything").Name)
}
