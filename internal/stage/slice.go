package stage

import (
	"context"

	"github.com/IMULMUL/symbiotic/internal/artifact"
	"github.com/IMULMUL/symbiotic/internal/backend"
	"github.com/IMULMUL/symbiotic/internal/session"
	"github.com/IMULMUL/symbiotic/internal/watch"
)

// defaultSliceCriterion is used when the backend does not implement
// SlicerOptioner (spec.md §4.3 "slice").
const defaultSliceCriterion = "__assert_fail,__VERIFIER_error"

// Slice runs sbt-slicer over the current artifact, advancing to its
// ".sliced" output (spec.md §4.3 "slice(extraParams=[])").
func Slice(ctx context.Context, s *session.Session, extraParams []string) error {
	criterion := defaultSliceCriterion
	var pluginOpts []string
	if hook, ok := s.Backend.(backend.SlicerOptioner); ok {
		criterion, pluginOpts = hook.SlicerOptions()
	}

	output := artifact.SliceOutput(s.Artifact)

	cmd := []string{ToolSlicer, "-c", criterion}
	cmd = append(cmd, pluginOpts...)

	if s.Opts.SlicerPTA == "fi" || s.Opts.SlicerPTA == "fs" {
		cmd = append(cmd, "-pta", s.Opts.SlicerPTA)
	}

	if s.Opts.UndefinedArePure {
		cmd = append(cmd, "-undefined-are-pure")
	}

	cmd = append(cmd, s.Opts.SlicerParams...)
	cmd = append(cmd, extraParams...)
	cmd = append(cmd, s.Artifact)

	w := watch.NewSlicerWatcher()
	if err := s.Runner.Run(ctx, cmd, w, "Slicing failed"); err != nil {
		return err
	}

	s.Artifact = output
	return nil
}
