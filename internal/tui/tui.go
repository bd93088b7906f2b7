// Package tui provides the live terminal view of a gate run: the
// three checks listed with a spinner on the one currently running.
// Execution stays strictly sequential; the runner feeds events to the
// model over a channel.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tessler/checkup/internal/render"
	"github.com/tessler/checkup/internal/runner"
)

// event mirrors runner.Observer callbacks over a channel.
type event struct {
	index  int
	result *runner.Result // nil for check-started events
}

// chanObserver adapts the event channel to runner.Observer. The
// channel is buffered for the whole run so the runner never blocks on
// a torn-down model.
type chanObserver struct {
	ch chan<- event
}

func (o chanObserver) CheckStarted(index int, _ runner.Check) {
	o.ch <- event{index: index}
}

func (o chanObserver) CheckFinished(index int, result runner.Result) {
	o.ch <- event{index: index, result: &result}
}

// Run executes checks under a bubbletea program and returns the
// results. Ctrl+C cancels the run: the current tool's process group
// is terminated and the remaining checks fail against the dead
// context, so the aggregate table still gets three statuses.
func Run(ctx context.Context, r *runner.Runner, checks []runner.Check, theme render.Theme, out io.Writer) ([]runner.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan event, 2*len(checks))
	done := make(chan []runner.Result, 1)
	go func() {
		results := r.Run(ctx, checks, chanObserver{ch: events})
		close(events)
		done <- results
	}()

	program := tea.NewProgram(newModel(checks, theme, events, cancel), tea.WithOutput(out))
	if _, err := program.Run(); err != nil {
		// The runner owns the checks; collect whatever it produced so
		// the caller can still aggregate.
		cancel()
		return <-done, fmt.Errorf("running live view: %w", err)
	}
	return <-done, nil
}

type checkStatus int

const (
	checkPending checkStatus = iota
	checkRunning
	checkDone
)

type checkState struct {
	check     runner.Check
	status    checkStatus
	startedAt time.Time
	result    runner.Result
}

type model struct {
	states []checkState
	theme  render.Theme
	events <-chan event
	cancel context.CancelFunc
	spin   spinner.Model
	done   bool
}

func newModel(checks []runner.Check, theme render.Theme, events <-chan event, cancel context.CancelFunc) model {
	states := make([]checkState, len(checks))
	for i, check := range checks {
		states[i] = checkState{check: check}
	}
	spin := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(theme.Primary))
	return model{states: states, theme: theme, events: events, cancel: cancel, spin: spin}
}

type eventMsg event
type runDoneMsg struct{}

func (m model) listen() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return runDoneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.listen())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			// Cancel the run; quitting happens once the runner drains.
			m.cancel()
			return m, nil
		}
	case eventMsg:
		if msg.index < len(m.states) {
			state := &m.states[msg.index]
			if msg.result == nil {
				state.status = checkRunning
				state.startedAt = time.Now()
			} else {
				state.status = checkDone
				state.result = *msg.result
			}
		}
		return m, m.listen()
	case runDoneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	if m.done {
		// The final recap is printed by the caller after the program
		// exits; leave the alt line empty.
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n")
	for _, state := range m.states {
		switch state.status {
		case checkPending:
			sb.WriteString("  " + m.theme.Muted.Render(m.theme.Icons.Bullet) + " ")
			sb.WriteString(m.theme.Muted.Render(state.check.Label))
		case checkRunning:
			sb.WriteString("  " + m.spin.View() + " ")
			sb.WriteString(m.theme.Primary.Render(state.check.Label))
			sb.WriteString(m.theme.Muted.Render(fmt.Sprintf("  %s", formatDuration(time.Since(state.startedAt)))))
		case checkDone:
			icon := m.theme.Success.Render(m.theme.Icons.Pass)
			if !state.result.Status.Passed() {
				icon = m.theme.Error.Render(m.theme.Icons.Fail)
			}
			sb.WriteString("  " + icon + " ")
			sb.WriteString(state.check.Label)
			sb.WriteString(m.theme.Muted.Render(fmt.Sprintf("  %s", formatDuration(state.result.Duration))))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n" + m.theme.Muted.Render("ctrl+c to cancel") + "\n")
	return sb.String()
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Round(100*time.Millisecond).Seconds())
}
