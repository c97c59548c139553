package config

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// ParseFlags builds a pflag.FlagSet for the driver's CLI surface, loads
// it into a koanf.Koanf the same way core/config.go's addFlags/parseArgs
// does, and decodes the result into an Options record. The remaining
// positional arguments (the source files) are returned separately.
func ParseFlags(args []string) (*Options, []string, error) {
	f := pflag.NewFlagSet("symbiotic", pflag.ContinueOnError)
	f.SortFlags = false
	addFlags(f)

	if err := f.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("could not parse CLI flags: %w", err)
	}

	if ok, _ := f.GetBool("version"); ok {
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			fmt.Fprintf(os.Stderr, "symbiotic build info:\n%s", bi)
		}
		os.Exit(1)
	}

	k := koanf.New(".")

	// An options file, when given, is loaded first so its values become
	// the koanf defaults; posflag.Provider below only overrides a key
	// the file already set when the matching flag was actually passed on
	// the command line, the same base-then-overlay order core/config.go
	// uses for its own merged koanf instance.
	if path, _ := f.GetString("options-file"); path != "" {
		if err := loadFileInto(k, path); err != nil {
			return nil, nil, err
		}
	}

	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return nil, nil, fmt.Errorf("could not load CLI flags into config: %w", err)
	}

	return decodeOptions(k), f.Args(), nil
}

func addFlags(f *pflag.FlagSet) {
	f.BoolP("version", "v", false, "print detailed version info and quit")
	f.BoolP("explain", "n", false, "print the backend, sources and key options, and quit without running any stage")
	f.StringP("log", "l", "info", "log level (debug/info/warn/error/disabled)")
	f.String("backend", "klee", "verification backend name (klee/cpachecker)")
	f.String("backend-executable", "", "path to the backend's executable, if not on PATH")
	f.String("options-file", "", "YAML options file loaded before CLI flag overrides")

	f.StringSlice("cflags", nil, "flags appended to every compile invocation")
	f.StringSlice("cppflags", nil, "preprocessor flags appended to every compile invocation")
	f.Bool("32bit", false, "compile and link for a 32-bit target")
	f.Bool("add-libc", false, "link in the libc stub bitcode")
	f.StringSlice("link-files", nil, "extra files to link unconditionally")
	f.StringSlice("linkundef", nil, "kinds (directories under lib/) to search for undefined-symbol shims")
	f.Bool("undefined-are-pure", false, "pass -undefined-are-pure to the slicer")
	f.String("slicer-pta", "", `pointer-analysis mode for the slicer ("fi" or "fs")`)
	f.StringSlice("slicer-params", nil, "extra flags passed through to the slicer")
	f.Int("repeat-slicing", 1, "number of slicing repetitions")
	f.StringSlice("optlevel", nil, "pass-group tokens, with before-/after- prefixes")
	f.Bool("no-optimize", false, "skip the non-loading optimize stages")
	f.StringSlice("disabled-optimizations", nil, "passes filtered out of every optimize stage; the pipeline replaces this list with its LLVM-version-based one when a run starts")
	f.Bool("noslice", false, "skip the slicing stage")
	f.Bool("source-is-bc", false, "treat sources[0] as the initial bitcode artifact")
	f.Bool("stats", false, "run the instruction-count side-probe between stages")
	f.String("instrumentation-files-path", "", "root for instrumentation config and definitions")
	f.Bool("no-verification", false, "skip the final verifier run")
	f.StringSlice("tool-params", nil, "passed through to the backend's cmdline builder")
	f.String("final-output", "", "rename the final artifact to this path")
	f.String("symbiotic-dir", "", "symbiotic installation root")

	f.Bool("memsafety", false, "verify memory safety")
	f.Bool("signedoverflow", false, "verify absence of signed integer overflow")
	f.Bool("undefinedness", false, "verify absence of undefined behavior")
	f.String("prp", "", "path to a property file")
}
