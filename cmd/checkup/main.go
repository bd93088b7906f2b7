// checkup runs a project's linter, type checker, and test suite in
// sequence and folds the three exit statuses into one summary line
// and a process exit code.
//
// Usage:
//
//	checkup                  # run the gate with .checkup.yaml or defaults
//	checkup -format json     # machine-readable report
//	checkup -no-live         # plain progress lines even on a TTY
//
// Exit codes:
//
//	0  all three checks passed
//	1  exactly two checks passed
//	2  exactly one check passed (lint-only or test-only)
//	3  no check passed (or only the type check; see internal/gate)
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/tessler/checkup/internal/config"
	"github.com/tessler/checkup/internal/gate"
	"github.com/tessler/checkup/internal/render"
	"github.com/tessler/checkup/internal/runner"
	"github.com/tessler/checkup/internal/tui"
	"github.com/tessler/checkup/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("checkup", flag.ContinueOnError)
	fs.SetOutput(stderr)
	formatFlag := fs.String("format", "", "Output format: auto, terminal, plain, json")
	themeFlag := fs.String("theme", "", "Theme: default, orca, mono")
	configFlag := fs.String("config", "", "Path to .checkup.yaml (default: nearest)")
	dirFlag := fs.String("dir", "", "Directory to check (default: current)")
	showOutputFlag := fs.String("show-output", "", "Tool output: always, on-fail, never")
	noLive := fs.Bool("no-live", false, "Disable the live view on TTYs")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *versionFlag {
		fmt.Fprintf(stdout, "checkup %s (%s, %s)\n", version.Version, version.CommitHash, version.BuildDate)
		return 0
	}

	cfg := config.Load(*configFlag)
	cfg.ApplyEnv()
	if *themeFlag != "" {
		cfg.Theme = *themeFlag
	}
	if *formatFlag != "" {
		cfg.Format = *formatFlag
	}
	if *showOutputFlag != "" {
		cfg.ShowOutput = *showOutputFlag
	}

	format := resolveFormat(cfg.Format, stdout)
	switch format {
	case "terminal", "plain", "json":
	default:
		fmt.Fprintf(stderr, "checkup: unknown format %q (expected auto, terminal, plain, json)\n", cfg.Format)
		return 2
	}

	dir := *dirFlag
	if dir == "" {
		dir = "."
	}

	checks, err := buildChecks(cfg, dir)
	if err != nil {
		fmt.Fprintf(stderr, "checkup: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	theme := render.ThemeByName(cfg.Theme)
	results := execute(ctx, runner.NewInDir(dir), checks, cfg, format, theme, *noLive, stdout, stderr)

	report := gate.Aggregate(results[0].Status, results[1].Status, results[2].Status)
	fmt.Fprint(stdout, render.ByName(format, theme).Render(results, report))
	return report.Code
}

// buildChecks expands the configured commands into the fixed
// lint/types/test sequence.
func buildChecks(cfg *config.Config, dir string) ([]runner.Check, error) {
	files, err := config.SourceFiles(dir, cfg.FilePattern)
	if err != nil {
		return nil, fmt.Errorf("listing source files: %w", err)
	}

	return []runner.Check{
		{Name: "lint", Label: cfg.Checks.Lint.Label, Command: config.ExpandCommand(cfg.Checks.Lint.Command, files)},
		{Name: "types", Label: cfg.Checks.Types.Label, Command: config.ExpandCommand(cfg.Checks.Types.Command, files)},
		{Name: "test", Label: cfg.Checks.Test.Label, Command: config.ExpandCommand(cfg.Checks.Test.Command, files)},
	}, nil
}

// execute runs the checks in live, progress, or silent mode depending
// on format and terminal.
func execute(ctx context.Context, r *runner.Runner, checks []runner.Check, cfg *config.Config, format string, theme render.Theme, noLive bool, stdout, stderr io.Writer) []runner.Result {
	if format == "terminal" && !noLive && isTTYWriter(stdout) {
		results, err := tui.Run(ctx, r, checks, theme, stdout)
		if err != nil {
			// The run itself still completed (or was cancelled); only
			// the live view failed.
			fmt.Fprintf(stderr, "checkup: %v\n", err)
		}
		return results
	}

	var obs runner.Observer
	switch format {
	case "json":
		obs = runner.NopObserver{}
	default:
		progress := render.NewProgress(stdout, theme, format == "terminal")
		progress.ShowOutput = cfg.ShowOutput
		obs = progress
	}
	return r.Run(ctx, checks, obs)
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// resolveFormat maps "auto" (and empty) to terminal on TTYs and plain
// otherwise.
func resolveFormat(format string, w io.Writer) string {
	if format != "" && format != "auto" {
		return format
	}
	if isTTYWriter(w) {
		return "terminal"
	}
	return "plain"
}
