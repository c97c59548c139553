// Package stage implements the stage primitives of spec.md §4.3: small,
// Options/backend-parameterized functions each composing one external
// tool invocation and advancing the session's artifact pointer on
// success.
package stage

import (
	"context"

	"github.com/IMULMUL/symbiotic/internal/artifact"
	"github.com/IMULMUL/symbiotic/internal/session"
	"github.com/IMULMUL/symbiotic/internal/watch"
)

// External tool binary names, exactly as spec.md §6 specifies.
const (
	ToolClang    = "clang"
	ToolLLVMLink = "llvm-link"
	ToolOpt      = "opt"
	ToolLLVMNm   = "llvm-nm"
	ToolInstr    = "sbt-instr"
	ToolSlicer   = "sbt-slicer"
)

// requiredLifetimeMarkerVersion is the compiler-version threshold of
// spec.md §4.3 ("compiler-version >= 4.0.1") below which
// -force-lifetime-markers is not available.
const requiredLifetimeMarkerVersion = "4.0.1"

// CompileOptions bundles compile-source's parameters beyond the session
// (spec.md §4.3 "compile-source(src, output?, withDebug=true,
// extraOpts=[])").
type CompileOptions struct {
	Output     string // defaults to "<basename-stem>.bc" if empty
	WithDebug  bool
	ExtraOpts  []string
	ClangVer   string // "" if unknown/unchecked
}

// CompileSource compiles a single C source to LLVM bitcode and returns
// the output path.
func CompileSource(ctx context.Context, s *session.Session, src string, co CompileOptions) (string, error) {
	output := co.Output
	if output == "" {
		output = artifact.CompileOutput(src)
	}

	cmd := []string{ToolClang, "-c", "-emit-llvm", "-include", "symbiotic.h", "-D__inline="}
	cmd = append(cmd, co.ExtraOpts...)

	if co.WithDebug {
		cmd = append(cmd, "-g")
	}

	cmd = append(cmd, s.Opts.CFLAGS...)
	cmd = append(cmd, s.Opts.CPPFLAGS...)

	if s.Opts.Is32Bit {
		cmd = append(cmd, "-m32")
	}

	if s.Opts.Property.Memsafety() && co.ClangVer != "" && RequiredVersion(co.ClangVer, requiredLifetimeMarkerVersion) {
		cmd = append(cmd, "-Xclang", "-force-lifetime-markers")
	}

	cmd = append(cmd, "-o", output, src)

	w := watch.NewCompileWatcher()
	if err := s.Runner.Run(ctx, cmd, w, "Compiling source '"+src+"' failed"); err != nil {
		return "", err
	}

	return output, nil
}
