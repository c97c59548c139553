//go:build !(linux || darwin || freebsd || openbsd || netbsd)

package runner

import "os/exec"

// setpgid is a no-op on platforms without process groups; Terminate/Kill
// fall back to signaling just the direct child.
func setpgid(cmd *exec.Cmd) {}

func terminateProcess(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}

func killProcess(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
