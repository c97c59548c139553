package stage

import (
	"context"

	"github.com/IMULMUL/symbiotic/internal/artifact"
	"github.com/IMULMUL/symbiotic/internal/logging"
	"github.com/IMULMUL/symbiotic/internal/session"
	"github.com/IMULMUL/symbiotic/internal/watch"
)

// disabledSet builds a lookup set out of the statically disabled passes
// plus any additionally disabled for this call.
func disabledSet(disable []string, extra []string) map[string]struct{} {
	set := make(map[string]struct{}, len(disable)+len(extra))
	for _, p := range disable {
		set[p] = struct{}{}
	}
	for _, p := range extra {
		set[p] = struct{}{}
	}
	return set
}

// filterPasses removes every pass present in disabled, preserving order
// (spec.md §4.3 "optimize").
func filterPasses(passes []string, disabled map[string]struct{}) []string {
	out := make([]string, 0, len(passes))
	for _, p := range passes {
		if _, skip := disabled[p]; skip {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Optimize runs opt over passes, after removing any pass named in
// Options.DisabledOptimizations or the disable argument. A no-op when
// Options.NoOptimize is set or the filtered pass list is empty
// (spec.md §4.3 "optimize(passes, disable=[])").
func Optimize(ctx context.Context, s *session.Session, passes []string, disable []string) error {
	if s.Opts.NoOptimize {
		return nil
	}

	filtered := filterPasses(passes, disabledSet(s.Opts.DisabledOptimizations, disable))
	if len(filtered) == 0 {
		logging.Domain("all").Debug().Msg("No passes available for optimizations")
		return nil
	}

	output := artifact.Next(s.Artifact, "opt")

	cmd := []string{ToolOpt, "-o", output, s.Artifact}
	cmd = append(cmd, filtered...)

	w := watch.NewCompileWatcher()
	if err := s.Runner.Run(ctx, cmd, w, "Optimization of llvm file failed"); err != nil {
		return err
	}

	s.Artifact = output
	return nil
}
