// Command symbiotic drives the LLVM-bitcode verification pipeline: it
// compiles, instruments, slices, and verifies its input sources against
// a chosen backend, the way the teacher's bgpipe binary drives a
// configured stage pipeline over a BGP session.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/IMULMUL/symbiotic/internal/backend"
	"github.com/IMULMUL/symbiotic/internal/backend/cpachecker"
	"github.com/IMULMUL/symbiotic/internal/backend/klee"
	"github.com/IMULMUL/symbiotic/internal/config"
	"github.com/IMULMUL/symbiotic/internal/logging"
	"github.com/IMULMUL/symbiotic/internal/pipeline"
	"github.com/IMULMUL/symbiotic/internal/session"
	"github.com/IMULMUL/symbiotic/internal/symbioticerr"
)

// interruptedExitCode is the conventional 128+SIGINT status for a run
// abandoned via RunCancellable's keyboard-interrupt path.
const interruptedExitCode = 130

// backends is the registry of concrete verification backends, keyed
// the way the teacher keys its stages.Repo map[string]core.NewStage.
var backends = map[string]func(exe string) backend.Backend{
	"klee": func(exe string) backend.Backend { return klee.New(exe) },
	"cpachecker": func(exe string) backend.Backend {
		return cpachecker.New(exe)
	},
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, sources, err := config.ParseFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if err := logging.SetLevel(opts.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if len(sources) == 0 {
		fmt.Fprintln(os.Stderr, "symbiotic: no source files given")
		return 2
	}

	ctor, ok := backends[opts.BackendName]
	if !ok {
		fmt.Fprintf(os.Stderr, "symbiotic: unknown backend %q\n", opts.BackendName)
		return 2
	}

	be := ctor(opts.BackendExecutable)
	s := session.New(sources, be, opts)

	if opts.Explain {
		explain(s)
		return 0
	}

	verdict, err := pipeline.RunCancellable(context.Background(), s)

	if opts.Stats {
		s.Metrics.WritePrometheus(os.Stderr)
	}

	if errors.Is(err, symbioticerr.ErrCancelled) {
		return interruptedExitCode
	}

	if err != nil {
		logging.PrintStderr("", err.Error()+"\n", logging.StyleRed)
		return 1
	}

	if verdict == "" {
		return 0
	}

	pipeline.Report(verdict)
	if verdict == "true" {
		return 0
	}
	return 1
}

// explain prints the resolved session (sources, backend, key options)
// and quits without running anything, the supplemented --explain/dry-
// run flag of SPEC_FULL.md §10.
func explain(s *session.Session) {
	fmt.Printf("backend: %s (%s)\n", s.Backend.Name(), s.Backend.Executable())
	fmt.Printf("sources: %v\n", s.Sources)
	fmt.Printf("property: memsafety=%v signedoverflow=%v undefinedness=%v\n",
		s.Opts.Property.Memsafety(), s.Opts.Property.SignedOverflow(), s.Opts.Property.Undefinedness())
	fmt.Printf("optlevel: %v\n", s.Opts.Optlevel)
	fmt.Printf("repeat-slicing: %d\n", s.Opts.RepeatSlicing)
}
