// Package artifact implements the artifact manager of spec.md §4.2: the
// current in-flight bitcode path and per-stage output name derivation.
package artifact

import (
	"path/filepath"
	"strings"
)

// CompiledBitcode is the fixed name used for the concatenated compile
// output of multiple sources (spec.md §4.2).
const CompiledBitcode = "code.bc"

// Stem returns path minus its last extension, eg. "foo/bar.bc" ->
// "foo/bar".
func Stem(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[:i]
	}
	return path
}

// Next returns the successor artifact name for a stage tagged tag, eg.
// Next("foo.bc", "opt") -> "foo-opt.bc".
func Next(path, tag string) string {
	return Stem(path) + "-" + tag + ".bc"
}

// SliceOutput returns the slicer's output name, which has no .bc suffix
// (spec.md §4.3 "slice"): Next is not used here because the slicer's
// output convention differs from every other stage.
func SliceOutput(path string) string {
	return Stem(path) + ".sliced"
}

// CompileOutput returns the default compile output name for a source
// file in the current working directory: the basename's stem plus .bc.
func CompileOutput(source string) string {
	base := filepath.Base(source)
	return Stem(base) + ".bc"
}
