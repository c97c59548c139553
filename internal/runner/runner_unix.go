//go:build linux || darwin || freebsd || openbsd || netbsd

package runner

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// setpgid arranges for the child (and any grandchildren it spawns, eg. a
// compiler driver forking a linker) to share a process group, so
// Terminate/Kill can take down the whole tree instead of orphaning
// descendants — the concern the Python original's bare pr.kill() glosses
// over (see DESIGN.md).
func setpgid(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
}

func terminateProcess(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return signalGroup(cmd, unix.SIGTERM)
}

func killProcess(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return signalGroup(cmd, unix.SIGKILL)
}

func signalGroup(cmd *exec.Cmd, sig unix.Signal) error {
	pgid, err := unix.Getpgid(cmd.Process.Pid)
	if err != nil {
		// fall back to signaling just the child
		return cmd.Process.Signal(syscallSignal(sig))
	}
	return unix.Kill(-pgid, sig)
}

func syscallSignal(sig unix.Signal) syscall.Signal {
	return syscall.Signal(sig)
}
