// Package cpachecker implements a second, minimal backend that exposes
// none of the optional hooks — demonstrating the "absent hook = no
// contribution" half of the plugin contract (spec.md §4.4), which the
// KLEE backend alone cannot exercise.
package cpachecker

import (
	"strings"

	"github.com/IMULMUL/symbiotic/internal/backend"
)

// Backend is a minimal CPAchecker-shaped verification backend.
type Backend struct {
	exe string
}

func New(exe string) *Backend {
	if exe == "" {
		exe = "cpa.sh"
	}
	return &Backend{exe: exe}
}

func (b *Backend) Name() string        { return "cpachecker" }
func (b *Backend) Executable() string  { return b.exe }
func (b *Backend) LLVMVersion() string { return "3.9.1" }

func (b *Backend) Cmdline(exe string, params []string, inputs []string, propFile string, extraEnv []string) []string {
	cmd := []string{exe, "-config", "predicateAnalysis"}
	if propFile != "" {
		cmd = append(cmd, "-spec", propFile)
	}
	cmd = append(cmd, params...)
	cmd = append(cmd, inputs...)
	return cmd
}

func (b *Backend) DetermineResult(returnCode, signal int, lines []string, timedOut bool) string {
	if timedOut {
		return "timeout"
	}

	for _, line := range lines {
		switch {
		case strings.Contains(line, "Verification result: TRUE"):
			return "true"
		case strings.Contains(line, "Verification result: FALSE"):
			return "false(unreach-call)"
		}
	}

	if returnCode != 0 {
		return "ERROR (cpachecker exited with a non-zero status)"
	}
	return "unknown"
}

var _ backend.Backend = (*Backend)(nil)
