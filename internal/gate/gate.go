// Package gate folds the three quality-check statuses into a single
// summary message and process exit code.
//
// The mapping is a fixed priority table inherited from the shell gate
// this tool replaces. It is total: every combination of (lint, types,
// test) has exactly one row.
package gate

// Status is the binary outcome of a single check. Any non-zero exit
// from the underlying tool, including a missing executable, collapses
// to StatusFail.
type Status int

const (
	StatusPass Status = iota
	StatusFail
)

// Passed reports whether the status is StatusPass.
func (s Status) Passed() bool { return s == StatusPass }

func (s Status) String() string {
	if s == StatusPass {
		return "pass"
	}
	return "fail"
}

// Process exit codes for a gate run. These constants let CI scripts
// check codes symbolically.
const (
	// ExitAllPassed: lint, type check, and tests all passed.
	ExitAllPassed = 0

	// ExitOneFailed: exactly two of the three checks passed.
	ExitOneFailed = 1

	// ExitTwoFailed: exactly one check passed (lint-only or
	// test-only).
	ExitTwoFailed = 2

	// ExitAllFailed: no check passed, or the types-only-passed case
	// (see the table note below).
	ExitAllFailed = 3
)

// Report is the aggregated outcome: one message, one exit code.
type Report struct {
	Message string `json:"message"`
	Code    int    `json:"exit_code"`
}

// Bit positions for the status mask. A set bit means the check passed.
const (
	maskTest = 1 << iota
	maskTypes
	maskLint
)

// table maps the 3-bit pass mask to its report.
//
// The legacy gate encoded this as an if/elif ladder whose branch order
// never gave "only the type check passed" (mask 0b010) a distinct
// message; it fell through to the final else. That row is kept
// identical here for compatibility rather than corrected. See
// DESIGN.md for the open question on whether it was intentional.
var table = [8]Report{
	maskLint | maskTypes | maskTest: {"All checks passed!", ExitAllPassed},
	maskLint | maskTypes:            {"Linting and type checking passed, but tests failed.", ExitOneFailed},
	maskLint | maskTest:             {"Linting and tests passed, but type checking failed.", ExitOneFailed},
	maskTypes | maskTest:            {"Tests and type checking passed, but linting failed.", ExitOneFailed},
	maskLint:                        {"Linting passed, but tests and type checking failed.", ExitTwoFailed},
	maskTest:                        {"Tests passed, but linting and type checking failed.", ExitTwoFailed},
	maskTypes:                       {"Everything failed, but you didn't!", ExitAllFailed},
	0:                               {"Everything failed, but you didn't!", ExitAllFailed},
}

// Aggregate computes the report for one run. It is a pure function of
// its three inputs and cannot fail.
func Aggregate(lint, types, test Status) Report {
	mask := 0
	if lint.Passed() {
		mask |= maskLint
	}
	if types.Passed() {
		mask |= maskTypes
	}
	if test.Passed() {
		mask |= maskTest
	}
	return table[mask]
}
