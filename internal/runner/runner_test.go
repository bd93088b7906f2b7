package runner

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessler/checkup/internal/gate"
)

type recordingObserver struct {
	started  []string
	finished []Result
}

func (o *recordingObserver) CheckStarted(_ int, check Check) {
	o.started = append(o.started, check.Name)
}

func (o *recordingObserver) CheckFinished(_ int, result Result) {
	o.finished = append(o.finished, result)
}

func sh(script string) []string {
	return []string{"sh", "-c", script}
}

func TestRun_AllChecksRunDespiteEarlyFailure(t *testing.T) {
	t.Parallel()

	checks := []Check{
		{Name: "lint", Label: "Linting code...", Command: sh("exit 1")},
		{Name: "types", Label: "Checking types...", Command: sh("exit 0")},
		{Name: "test", Label: "Running tests...", Command: sh("exit 2")},
	}

	obs := &recordingObserver{}
	results := New().Run(context.Background(), checks, obs)

	require.Len(t, results, 3)
	assert.Equal(t, []string{"lint", "types", "test"}, obs.started)
	assert.Equal(t, gate.StatusFail, results[0].Status)
	assert.Equal(t, gate.StatusPass, results[1].Status)
	assert.Equal(t, gate.StatusFail, results[2].Status)
}

func TestRunCheck_CapturesExitCode(t *testing.T) {
	t.Parallel()

	results := New().Run(context.Background(), []Check{
		{Name: "test", Command: sh("exit 7")},
	}, nil)

	require.Len(t, results, 1)
	assert.Equal(t, gate.StatusFail, results[0].Status)
	assert.Equal(t, 7, results[0].ExitCode)
	assert.NoError(t, results[0].Err)
}

func TestRunCheck_CapturesCombinedOutput(t *testing.T) {
	t.Parallel()

	results := New().Run(context.Background(), []Check{
		{Name: "lint", Command: sh("echo out; echo err >&2")},
	}, nil)

	require.Len(t, results, 1)
	assert.Equal(t, gate.StatusPass, results[0].Status)
	assert.Equal(t, []string{"out", "err"}, results[0].Output)
}

func TestRunCheck_MissingExecutableCollapsesToFail(t *testing.T) {
	t.Parallel()

	results := New().Run(context.Background(), []Check{
		{Name: "lint", Command: []string{"definitely-not-a-real-tool-42"}},
	}, nil)

	require.Len(t, results, 1)
	assert.Equal(t, gate.StatusFail, results[0].Status)
	assert.Equal(t, 127, results[0].ExitCode)
	assert.True(t, IsCommandNotFound(results[0]))
}

func TestRunCheck_EmptyCommandFails(t *testing.T) {
	t.Parallel()

	results := New().Run(context.Background(), []Check{{Name: "lint"}}, nil)

	require.Len(t, results, 1)
	assert.Equal(t, gate.StatusFail, results[0].Status)
	assert.Error(t, results[0].Err)
}

func TestRun_ObserverSeesResultsInOrder(t *testing.T) {
	t.Parallel()

	checks := []Check{
		{Name: "lint", Command: sh("exit 0")},
		{Name: "types", Command: sh("exit 1")},
	}

	obs := &recordingObserver{}
	New().Run(context.Background(), checks, obs)

	require.Len(t, obs.finished, 2)
	assert.Equal(t, "lint", obs.finished[0].Check.Name)
	assert.Equal(t, "types", obs.finished[1].Check.Name)
	assert.Equal(t, gate.StatusPass, obs.finished[0].Status)
	assert.Equal(t, gate.StatusFail, obs.finished[1].Status)
}

func TestRun_CancelledContextFailsRemainingChecks(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := New().Run(ctx, []Check{
		{Name: "lint", Command: sh("exit 0")},
		{Name: "types", Command: sh("exit 0")},
	}, nil)

	require.Len(t, results, 2)
	for _, result := range results {
		assert.Equal(t, gate.StatusFail, result.Status)
	}
}

func TestNewInDir_RunsInGivenDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	results := NewInDir(dir).Run(context.Background(), []Check{
		{Name: "test", Command: []string{"pwd"}},
	}, nil)

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	require.Len(t, results, 1)
	require.NotEmpty(t, results[0].Output)
	assert.Equal(t, resolved, results[0].Output[0])
}
