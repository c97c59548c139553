// Package klee implements the KLEE backend plugin referenced throughout
// spec.md's end-to-end scenarios (S1, S4, and the KLEE-specific checks
// of driver steps 15 and 18).
package klee

import (
	"fmt"
	"strings"

	"github.com/IMULMUL/symbiotic/internal/backend"
)

// Backend is the KLEE verification backend.
type Backend struct {
	exe string
}

// New returns a KLEE backend using exe as its executable path.
func New(exe string) *Backend {
	if exe == "" {
		exe = "klee"
	}
	return &Backend{exe: exe}
}

func (b *Backend) Name() string       { return "klee" }
func (b *Backend) Executable() string { return b.exe }
func (b *Backend) LLVMVersion() string { return "3.9.1" }

func (b *Backend) Cmdline(exe string, params []string, inputs []string, propFile string, extraEnv []string) []string {
	cmd := []string{exe, "-exit-on-error", "-only-output-states-covering-new"}
	cmd = append(cmd, params...)
	if propFile != "" {
		cmd = append(cmd, "-prp", propFile)
	}
	cmd = append(cmd, inputs...)
	return cmd
}

// resultPrefix is the convention KLEE's wrapper script prints its final
// verdict under, one line, eg. "VERIFICATION_RESULT: false(unreach-call)".
const resultPrefix = "VERIFICATION_RESULT:"

func (b *Backend) DetermineResult(returnCode, signal int, lines []string, timedOut bool) string {
	if timedOut {
		return "timeout"
	}

	for _, line := range lines {
		if rest, ok := strings.CutPrefix(line, resultPrefix); ok {
			return strings.TrimSpace(rest)
		}
	}

	if returnCode == 0 {
		return "true"
	}

	return fmt.Sprintf("ERROR (klee exited with code %d)", returnCode)
}

// InstrumentationOptions implements backend.InstrumentationOptioner:
// KLEE needs memory-safety instrumentation, keyed off of a JSON config
// file whose "definitions" field names the C source of the runtime
// helpers to compile/link in — the instrument stage reads that field
// out of config.json itself via backend.DefinitionsFromConfig.
func (b *Backend) InstrumentationOptions() (configFile string, shouldLink bool) {
	return "config.json", true
}

// SlicerOptions implements backend.SlicerOptioner.
func (b *Backend) SlicerOptions() (string, []string) {
	return "__assert_fail,__VERIFIER_error,klee_abort", nil
}

// PassesAfterCompilation implements backend.PostCompilationPasser.
func (b *Backend) PassesAfterCompilation() []string {
	return []string{"-delete-undefined", "-instcombine"}
}

// PassesAfterSlicing implements backend.PostSlicingPasser.
func (b *Backend) PassesAfterSlicing() []string {
	return []string{"-simplifycfg"}
}

var (
	_ backend.Backend                = (*Backend)(nil)
	_ backend.InstrumentationOptioner = (*Backend)(nil)
	_ backend.SlicerOptioner          = (*Backend)(nil)
	_ backend.PostCompilationPasser   = (*Backend)(nil)
	_ backend.PostSlicingPasser       = (*Backend)(nil)
)
