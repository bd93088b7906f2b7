//go:build !unix

package runner

import "os/exec"

// setProcessGroup is a no-op on platforms without process groups.
func setProcessGroup(_ *exec.Cmd) {}

// terminateProcessGroup kills the process directly.
func terminateProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
