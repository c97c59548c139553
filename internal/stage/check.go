package stage

import (
	"context"

	"github.com/IMULMUL/symbiotic/internal/session"
	"github.com/IMULMUL/symbiotic/internal/watch"
)

// CheckBitcode runs the sbt pass plugin's flag (eg.
// "-check-unsupported") over bc and reports whether the module is
// clean: a non-zero exit or any "call to ... is unsupported" line both
// count as failure (spec.md §4.3 "check-bitcode(flag)").
func CheckBitcode(ctx context.Context, s *session.Session, bc, flag string) bool {
	cmd := []string{ToolOpt, "-load", llvmSbtModule, flag, "-o", "/dev/null", bc}

	w := watch.NewUnsupportedCallWatcher()
	if err := s.Runner.Run(ctx, cmd, w, "Failed checking the code"); err != nil {
		return false
	}

	return w.Ok()
}
