//go:build windows

package runner

import "os/exec"

// setProcGroup is a no-op on Windows; process groups are managed differently.
func setProcGroup(_ *exec.Cmd) {}

func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
