package stage

import (
	"context"
	"path/filepath"

	"github.com/IMULMUL/symbiotic/internal/artifact"
	"github.com/IMULMUL/symbiotic/internal/session"
	"github.com/IMULMUL/symbiotic/internal/watch"
)

// Libraries returns the libraries the library provider contributes
// (spec.md §4.3 "library provider"): the libc stub bitcode path, iff
// Options.AddLibc is set.
func Libraries(s *session.Session) []string {
	if !s.Opts.AddLibc {
		return nil
	}

	dir := "lib"
	if s.Opts.Is32Bit {
		dir = "lib32"
	}

	return []string{filepath.Join(s.SymbioticDir, dir, "klee", "runtime", "klee-libc.bc")}
}

// Link links libs (defaulting to Libraries(s) when nil) into the
// current artifact. A no-op when the resulting library list is empty
// (spec.md §4.3 "link").
func Link(ctx context.Context, s *session.Session, output string, libs []string) error {
	if libs == nil {
		libs = Libraries(s)
	}
	if len(libs) == 0 {
		return nil
	}

	if output == "" {
		output = artifact.Next(s.Artifact, "ln")
	}

	cmd := []string{ToolLLVMLink, "-o", output}
	cmd = append(cmd, libs...)
	if s.Artifact != "" {
		cmd = append(cmd, s.Artifact)
	}

	w := watch.NewDebugWatcher("compile")
	if err := s.Runner.Run(ctx, cmd, w, "Failed linking llvm file with libraries"); err != nil {
		return err
	}

	s.Artifact = output
	return nil
}
