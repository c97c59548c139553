package stage

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/IMULMUL/symbiotic/internal/session"
	"github.com/IMULMUL/symbiotic/internal/watch"
)

// ListUndefined runs llvm-nm over bc and returns its undefined symbol
// names, optionally restricted to onlyFuncs (spec.md §4.3
// "list-undefined(bc, onlyFuncs?)").
func ListUndefined(ctx context.Context, s *session.Session, bc string, onlyFuncs []string) ([]string, error) {
	w := watch.NewCaptureWatcher()
	if err := s.Runner.Run(ctx, []string{ToolLLVMNm, "-undefined-only", "-just-symbol-name", bc}, w, "Failed getting undefined symbols from bitcode"); err != nil {
		return nil, err
	}

	var want map[string]struct{}
	if len(onlyFuncs) > 0 {
		want = make(map[string]struct{}, len(onlyFuncs))
		for _, f := range onlyFuncs {
			want[f] = struct{}{}
		}
	}

	out := make([]string, 0, len(w.Lines()))
	for _, line := range w.Lines() {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		if want != nil {
			if _, ok := want[name]; !ok {
				continue
			}
		}
		out = append(out, name)
	}
	return out, nil
}

// shimPath resolves the shim source for an undefined symbol, trying
// the tool-specific library directory before the generic one
// (spec.md §4.3 "link-undefined-pool", python original's get_path
// nested helper).
func shimPath(symbioticDir, ty, toolName, undef string) (string, bool) {
	path := filepath.Join(symbioticDir, "lib", ty, toolName, undef+".c")
	if _, err := os.Stat(path); err == nil {
		return path, true
	}

	path = filepath.Join(symbioticDir, "lib", ty, undef+".c")
	if _, err := os.Stat(path); err == nil {
		return path, true
	}

	return "", false
}

// LinkUndefinedPool compiles and links in a shim for every symbol in
// undefs that has one under Options.LinkUndef's directories, recording
// each in the session's linked-functions report. It reports whether
// anything was linked (spec.md §4.3 "link-undefined-pool(undefs)").
func LinkUndefinedPool(ctx context.Context, s *session.Session, undefs []string) (bool, error) {
	toolName := ""
	if s.Backend != nil {
		toolName = s.Backend.Name()
	}

	var tolink []string
	for _, ty := range s.Opts.LinkUndef {
		for _, undef := range undefs {
			path, ok := shimPath(s.SymbioticDir, ty, toolName, undef)
			if !ok {
				continue
			}

			base := filepath.Base(path)
			output, err := filepath.Abs(strings.TrimSuffix(base, ".c") + ".bc")
			if err != nil {
				return false, err
			}

			if _, err := CompileSource(ctx, s, path, CompileOptions{Output: output, WithDebug: true}); err != nil {
				return false, err
			}

			tolink = append(tolink, output)
			s.LinkFunction(undef)
		}
	}

	if len(tolink) == 0 {
		return false, nil
	}

	if err := Link(ctx, s, "", tolink); err != nil {
		return false, err
	}
	return true, nil
}

// LinkUndefined iteratively resolves undefined symbols to a fixed
// point: after every successful pool-link pass, the bitcode may expose
// new undefined symbols pulled in by the shims just linked, so the
// pass repeats until a round links nothing new. A concurrent-safe set
// tracks symbols already attempted across rounds so the work queue
// below never re-probes one twice, matching the iterative-worklist
// redesign of spec.md §9 (replacing the python original's unbounded
// recursion). A no-op when Options.LinkUndef is empty
// (spec.md §4.3 "link-undefined(onlyFuncs?)").
func LinkUndefined(ctx context.Context, s *session.Session, onlyFuncs []string) error {
	if len(s.Opts.LinkUndef) == 0 {
		return nil
	}

	seen := xsync.NewMap[string, struct{}]()

	first := true
	for {
		filter := onlyFuncs
		if !first {
			filter = nil
		}

		undefs, err := ListUndefined(ctx, s, s.Artifact, filter)
		if err != nil {
			return err
		}

		var fresh []string
		for _, u := range undefs {
			if _, loaded := seen.LoadOrStore(u, struct{}{}); !loaded {
				fresh = append(fresh, u)
			}
		}

		if len(fresh) == 0 {
			return nil
		}

		linked, err := LinkUndefinedPool(ctx, s, fresh)
		if err != nil {
			return err
		}
		if !linked {
			return nil
		}

		if first && len(onlyFuncs) > 0 {
			// The original call was scoped to onlyFuncs; spec.md's
			// iterative follow-up only re-probes unscoped.
			return nil
		}

		first = false
	}
}
