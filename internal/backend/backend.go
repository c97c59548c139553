// Package backend implements the backend plugin contract of spec.md
// §4.4: a verification tool described by required methods plus optional,
// capability-probed hooks.
package backend

import (
	"fmt"

	"github.com/buger/jsonparser"
)

// Backend is the required capability set of every verification backend.
type Backend interface {
	Name() string
	Executable() string
	// LLVMVersion returns the intermediate-language version string
	// "M.m.p" this backend expects its input bitcode in.
	LLVMVersion() string
	// Cmdline builds the verifier invocation's argv.
	Cmdline(exe string, params []string, inputs []string, propFile string, extraEnv []string) []string
	// DetermineResult maps a completed verifier run to a verdict
	// string (spec.md §4.5 "Verdict mapping").
	DetermineResult(returnCode, signal int, lines []string, timedOut bool) string
}

// CompilationOptioner is an optional hook: extra compiler flags to merge
// into every compile invocation.
type CompilationOptioner interface {
	CompilationOptions() []string
}

// InstrumentationOptioner is an optional hook describing how the
// instrument stage should configure itself.
type InstrumentationOptioner interface {
	// InstrumentationOptions returns the config file name and whether
	// the instrumenter should link its output (spec.md §4.3
	// "instrument"). An empty configFile means "no contribution to this
	// stage". The definitions file name is not returned here: the
	// instrument stage reads it out of configFile itself, via
	// DefinitionsFromConfig.
	InstrumentationOptions() (configFile string, shouldLink bool)
}

// DefinitionsFromConfig extracts the "definitions" field from an
// instrumentation config JSON blob without a full struct unmarshal,
// using a fast streaming parser the way the teacher favors for its own
// JSON message traffic (see DESIGN.md).
func DefinitionsFromConfig(configJSON []byte) (string, error) {
	v, err := jsonparser.GetString(configJSON, "definitions")
	if err != nil {
		return "", fmt.Errorf("could not read \"definitions\" from instrumentation config: %w", err)
	}
	return v, nil
}

// SlicerOptioner is an optional hook describing the slicing criterion
// and any extra slicer flags.
type SlicerOptioner interface {
	SlicerOptions() (criterion string, extraOpts []string)
}

// PostCompilationPasser is an optional hook contributing extra opt
// passes run right after compilation.
type PostCompilationPasser interface {
	PassesAfterCompilation() []string
}

// PostInstrumentationPasser is an optional hook contributing extra opt
// passes run right after instrumentation.
type PostInstrumentationPasser interface {
	PassesAfterInstrumentation() []string
}

// PostSlicingPasser is an optional hook contributing extra opt passes
// run right after slicing.
type PostSlicingPasser interface {
	PassesAfterSlicing() []string
}

// LLVMPostprocessor is an optional hook letting the backend run one more
// transform over the final artifact before verification.
type LLVMPostprocessor interface {
	// PostprocessLLVM returns the command to run and its output path.
	// A nil/empty cmd means "no contribution to this stage".
	PostprocessLLVM(artifact string) (cmd []string, output string)
}
