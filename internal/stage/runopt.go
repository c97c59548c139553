package stage

import (
	"context"

	"github.com/IMULMUL/symbiotic/internal/artifact"
	"github.com/IMULMUL/symbiotic/internal/logging"
	"github.com/IMULMUL/symbiotic/internal/session"
	"github.com/IMULMUL/symbiotic/internal/watch"
)

// llvmSbtModule is the sbt LLVM pass plugin loaded by the
// module-loading opt invocations (spec.md §4.3 "run-opt-passes",
// "check-bitcode").
const llvmSbtModule = "LLVMsbt.so"

// RunOptPasses runs passes through the sbt pass-plugin-loaded opt
// invocation ("prepare" phase), a no-op when passes is empty
// (spec.md §4.3 "run-opt-passes(passes)").
func RunOptPasses(ctx context.Context, s *session.Session, passes []string) error {
	if len(passes) == 0 {
		return nil
	}

	output := artifact.Next(s.Artifact, "pr")

	cmd := []string{ToolOpt, "-load", llvmSbtModule, s.Artifact, "-o", output}
	cmd = append(cmd, passes...)

	w := watch.NewPrepareWatcher()
	if err := s.Runner.Run(ctx, cmd, w, "Prepare phase failed"); err != nil {
		return err
	}

	s.Artifact = output
	return nil
}

// PrintStats runs the instruction-count side-probe used by --stats
// (spec.md §6 "stats"). Failure is non-fatal: the probe is diagnostic
// only.
func PrintStats(ctx context.Context, s *session.Session, prefix string) {
	if !s.Opts.Stats {
		return
	}

	cmd := []string{ToolOpt, "-load", llvmSbtModule, "-count-instr", "-o", "/dev/null", s.Artifact}

	w := watch.NewPrintWatcher("INFO: "+prefix, logging.StyleWhite)
	_ = s.Runner.Run(ctx, cmd, w, "Failed running opt")
}
