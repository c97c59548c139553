package stage

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/IMULMUL/symbiotic/internal/runner"
	"github.com/IMULMUL/symbiotic/internal/watch"
)

var clangVersionRE = regexp.MustCompile(`clang version (\d+)\.(\d+)\.(\d+)`)

// ClangVersion runs "clang --version" and extracts its "M.m.p" version
// string, grounded on the Python original's get_clang_version() utility
// (spec.md §1 lists the compiler binary itself as an external
// collaborator; this just parses its self-reported version).
func ClangVersion(ctx context.Context, r *runner.Runner, compiler string) (string, error) {
	w := watch.NewCaptureWatcher()
	if err := r.Run(ctx, []string{compiler, "--version"}, w, "could not determine compiler version"); err != nil {
		return "", err
	}

	for _, line := range w.Lines() {
		if m := clangVersionRE.FindStringSubmatch(line); m != nil {
			return m[1] + "." + m[2] + "." + m[3], nil
		}
	}
	return "", nil
}

// RequiredVersion reports whether have >= required, comparing "M.m.p"
// version strings component-wise (spec.md §4.3 "required_version").
func RequiredVersion(have, required string) bool {
	hv := parseVersion(have)
	rv := parseVersion(required)
	for i := 0; i < 3; i++ {
		if hv[i] != rv[i] {
			return hv[i] > rv[i]
		}
	}
	return true
}

func parseVersion(v string) [3]int {
	var out [3]int
	parts := strings.SplitN(v, ".", 3)
	for i := 0; i < len(parts) && i < 3; i++ {
		n, _ := strconv.Atoi(parts[i])
		out[i] = n
	}
	return out
}
