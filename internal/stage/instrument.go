package stage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/IMULMUL/symbiotic/internal/artifact"
	"github.com/IMULMUL/symbiotic/internal/backend"
	"github.com/IMULMUL/symbiotic/internal/logging"
	"github.com/IMULMUL/symbiotic/internal/session"
	"github.com/IMULMUL/symbiotic/internal/watch"
)

// propertySubdir selects the instrumentation config subdirectory for
// the active property (spec.md §4.3 "instrument"): memsafety ->
// "memsafety/", signedoverflow -> "int_overflows/", anything else is a
// programming error.
func propertySubdir(p backendProperty) (string, error) {
	switch {
	case p.Memsafety():
		return "memsafety/", nil
	case p.SignedOverflow():
		return "int_overflows/", nil
	default:
		return "", fmt.Errorf("instrument: unhandled property")
	}
}

// backendProperty is the subset of config.Property instrument needs,
// kept narrow to avoid an import of internal/config here.
type backendProperty interface {
	Memsafety() bool
	SignedOverflow() bool
}

// Instrument runs the sbt-instr instrumentation pass, a no-op if the
// backend does not implement InstrumentationOptioner or returns an
// empty config file (spec.md §4.3 "instrument").
func Instrument(ctx context.Context, s *session.Session, prop backendProperty) error {
	hook, ok := s.Backend.(backend.InstrumentationOptioner)
	if !ok {
		return nil
	}

	configFile, shouldLink := hook.InstrumentationOptions()
	if configFile == "" {
		return nil
	}

	subdir, err := propertySubdir(prop)
	if err != nil {
		return err
	}

	llvmDir := "llvm-" + s.Backend.LLVMVersion()
	libSub := "lib"
	if s.Opts.Is32Bit {
		libSub = "lib32"
	}
	libdir := filepath.Join(s.SymbioticDir, llvmDir, libSub)

	prefix := s.Opts.InstrumentationFilesPath

	config := prefix + subdir + configFile
	configJSON, err := os.ReadFile(config)
	if err != nil {
		return fmt.Errorf("instrument: missing config file %q: %w", config, err)
	}

	definitions, err := backend.DefinitionsFromConfig(configJSON)
	if err != nil {
		return fmt.Errorf("instrument: %w", err)
	}

	stem := strings.TrimSuffix(definitions, filepath.Ext(definitions))
	precompiledBC := filepath.Join(libdir, stem+".bc")

	var definitionsbc string
	if _, err := os.Stat(precompiledBC); err == nil {
		definitionsbc = precompiledBC
	} else {
		definitionsSrc := prefix + subdir + definitions
		if _, err := os.Stat(definitionsSrc); err != nil {
			return fmt.Errorf("instrument: missing definitions file %q: %w", definitionsSrc, err)
		}

		output, err := CompileSource(ctx, s, definitionsSrc, CompileOptions{
			Output:    stem + ".bc",
			WithDebug: false,
			ExtraOpts: []string{"-O2"},
		})
		if err != nil {
			return err
		}

		definitionsbc, err = filepath.Abs(output)
		if err != nil {
			return err
		}
	}

	PrintStats(ctx, s, "Before instrumentation ")
	logging.PrintStdout("", "Starting instrumentation\n", logging.StyleWhite)

	output := artifact.Next(s.Artifact, "inst")
	cmd := []string{ToolInstr, config, s.Artifact, definitionsbc, output}
	if !shouldLink {
		cmd = append(cmd, "--no-linking")
	}

	w := watch.NewInstrumentationWatcher()
	if err := s.Runner.Run(ctx, cmd, w, "Instrumenting the code failed"); err != nil {
		return err
	}

	s.Artifact = output
	PrintStats(ctx, s, "After instrumentation ")
	return nil
}
