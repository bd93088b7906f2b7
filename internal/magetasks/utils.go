package magetasks

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Run executes a command with stdout/stderr passed through, printing
// the label first.
func Run(label, command string, args ...string) error {
	fmt.Printf("%s...\n", label)
	cmd := exec.Command(command, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", strings.ToLower(label), err)
	}
	return nil
}

// IsCommandNotFound checks if the error indicates the command was not
// found. Handles exec.ErrNotFound and platform-specific string
// fallbacks.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	errStr := err.Error()
	if strings.Contains(errStr, "executable file not found") {
		return true
	}
	return strings.Contains(errStr, "no such file or directory")
}
