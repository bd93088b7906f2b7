// Package runner executes the gate's checks strictly in sequence.
//
// Every check runs to natural completion regardless of earlier
// failures; only the final aggregation reacts to the accumulated
// statuses. A check's stdout and stderr are captured combined so the
// caller can decide whether to show them.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/tessler/checkup/internal/gate"
)

// killDelay is how long a cancelled check gets to exit after SIGTERM
// before it is killed outright.
const killDelay = 2 * time.Second

// exitCodeNotFound is reported when the check's executable is missing,
// matching the shell convention.
const exitCodeNotFound = 127

// Check is one external quality tool invocation.
type Check struct {
	Name    string   // short identifier: "lint", "types", "test"
	Label   string   // progress line printed before the check runs
	Command []string // argv, already expanded
}

// Result is the outcome of a single check.
type Result struct {
	Check    Check
	Status   gate.Status
	ExitCode int
	Duration time.Duration
	Output   []string // combined stdout+stderr
	Err      error    // spawn failure, nil for ordinary non-zero exits
}

// Observer receives run lifecycle events. CheckStarted fires before
// the tool is spawned, CheckFinished after it exits.
type Observer interface {
	CheckStarted(index int, check Check)
	CheckFinished(index int, result Result)
}

// NopObserver ignores all events.
type NopObserver struct{}

func (NopObserver) CheckStarted(int, Check)   {}
func (NopObserver) CheckFinished(int, Result) {}

// Runner executes checks in its configured working directory.
type Runner struct {
	dir string
}

// New returns a Runner that inherits the process working directory.
func New() *Runner {
	return &Runner{}
}

// NewInDir returns a Runner that executes checks in dir.
func NewInDir(dir string) *Runner {
	return &Runner{dir: dir}
}

// Run executes all checks in order and returns one result per check.
// A failing check never short-circuits the sequence. Cancellation of
// ctx terminates the currently running tool's process group; the
// interrupted check reports fail and the remaining checks still run
// (and fail fast against the dead context).
func (r *Runner) Run(ctx context.Context, checks []Check, obs Observer) []Result {
	if obs == nil {
		obs = NopObserver{}
	}

	results := make([]Result, 0, len(checks))
	for i, check := range checks {
		obs.CheckStarted(i, check)
		result := r.runCheck(ctx, check)
		obs.CheckFinished(i, result)
		results = append(results, result)
	}
	return results
}

func (r *Runner) runCheck(ctx context.Context, check Check) Result {
	start := time.Now()
	result := Result{Check: check, Status: gate.StatusFail}

	if len(check.Command) == 0 {
		result.Err = errors.New("empty command")
		result.ExitCode = 1
		return result
	}

	cmd := exec.CommandContext(ctx, check.Command[0], check.Command[1:]...)
	cmd.Dir = r.dir
	cmd.Env = os.Environ()

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	setProcessGroup(cmd)
	cmd.Cancel = func() error { return terminateProcessGroup(cmd) }
	cmd.WaitDelay = killDelay

	err := cmd.Run()
	result.Duration = time.Since(start)
	result.Output = splitLines(buf.Bytes())

	switch {
	case err == nil:
		result.Status = gate.StatusPass
		result.ExitCode = 0
	default:
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			result.ExitCode = exitErr.ExitCode()
		case errors.Is(err, exec.ErrNotFound):
			result.ExitCode = exitCodeNotFound
			result.Err = err
		default:
			result.ExitCode = 1
			result.Err = err
		}
	}
	return result
}

// IsCommandNotFound checks whether the result failed because the
// check's executable is missing.
func IsCommandNotFound(result Result) bool {
	return result.Err != nil && errors.Is(result.Err, exec.ErrNotFound)
}

func splitLines(output []byte) []string {
	trimmed := strings.TrimRight(string(output), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
