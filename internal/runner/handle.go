package runner

import (
	"os/exec"
	"sync"
)

// Handle is the process-wide "current child" of spec.md §3/§5: at most
// one live child at a time, written by the runner at spawn and cleared
// at exit, read by Terminate/Kill/KillWait. Access is serialized by a
// mutex; operations on an absent child are no-ops.
//
// Unlike the Python original's module-level ProcessRunner singleton,
// this is an explicitly-owned object a Session injects into its stage
// primitives (spec.md §9's redesign note). There is no package-level
// instance: the keyboard-interrupt path (pipeline.RunCancellable)
// reaches the child through the Session's Runner.Handle.
type Handle struct {
	mu  sync.Mutex
	cmd *exec.Cmd
}

// NewHandle returns a new, empty Handle.
func NewHandle() *Handle {
	return &Handle{}
}

func (h *Handle) register(cmd *exec.Cmd) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cmd = cmd
}

func (h *Handle) unregister(cmd *exec.Cmd) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cmd == cmd {
		h.cmd = nil
	}
}

// hasProcess reports whether a child is currently registered.
func (h *Handle) hasProcess() (*exec.Cmd, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cmd, h.cmd != nil
}

// Terminate sends a graceful termination signal to the current child, if
// any. No-op if no child is current (spec.md §8 invariant 9).
func (h *Handle) Terminate() error {
	cmd, ok := h.hasProcess()
	if !ok {
		return nil
	}
	return terminateProcess(cmd)
}

// Kill sends a forceful kill signal to the current child, if any. No-op
// if no child is current.
func (h *Handle) Kill() error {
	cmd, ok := h.hasProcess()
	if !ok {
		return nil
	}
	return killProcess(cmd)
}
