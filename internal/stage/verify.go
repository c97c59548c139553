package stage

import (
	"context"

	"github.com/IMULMUL/symbiotic/internal/logging"
	"github.com/IMULMUL/symbiotic/internal/session"
	"github.com/IMULMUL/symbiotic/internal/watch"
)

// RunVerification invokes the backend's verifier over the current
// artifact and maps its output to a verdict string. A failed
// invocation is reported to stderr and treated as return code 1, never
// propagated as an error: the verifier's own verdict mapping has the
// final say (spec.md §4.3 "run-verification").
func RunVerification(ctx context.Context, s *session.Session) string {
	prpFile, _ := s.Opts.Property.PrpFile()
	cmd := s.Backend.Cmdline(s.Backend.Executable(), s.Opts.ToolParams, []string{s.Artifact}, prpFile, nil)

	returnCode := 0
	w := watch.NewToolWatcher()
	if err := s.Runner.Run(ctx, cmd, w, "Running the verifier failed"); err != nil {
		logging.PrintStderr("", err.Error()+"\n", logging.StyleRed)
		returnCode = 1
	}

	return s.Backend.DetermineResult(returnCode, 0, w.Lines(), false)
}
