package stage

import (
	"context"

	"github.com/IMULMUL/symbiotic/internal/backend"
	"github.com/IMULMUL/symbiotic/internal/session"
	"github.com/IMULMUL/symbiotic/internal/watch"
)

// PostprocessLLVM runs the backend's optional final bitcode transform,
// a no-op if it does not implement LLVMPostprocessor or returns an
// empty command (spec.md §4.3 "postprocess-llvm").
func PostprocessLLVM(ctx context.Context, s *session.Session) error {
	hook, ok := s.Backend.(backend.LLVMPostprocessor)
	if !ok {
		return nil
	}

	cmd, output := hook.PostprocessLLVM(s.Artifact)
	if len(cmd) == 0 {
		return nil
	}

	w := watch.NewDebugWatcher("compile")
	if err := s.Runner.Run(ctx, cmd, w, "Failed preprocessing the llvm code"); err != nil {
		return err
	}

	s.Artifact = output
	return nil
}

// KleeFunctions returns the undefined symbols in bc whose name is
// prefixed "klee_" (spec.md §4.3 "get-klee-functions").
func KleeFunctions(ctx context.Context, s *session.Session, bc string) ([]string, error) {
	undefs, err := ListUndefined(ctx, s, bc, nil)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, f := range undefs {
		if len(f) >= 5 && f[:5] == "klee_" {
			out = append(out, f)
		}
	}
	return out, nil
}
