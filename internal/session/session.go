// Package session implements the Session entity of spec.md §3: the
// in-process unit of work that stage primitives mutate and the driver
// advances through the stage graph.
package session

import (
	"github.com/IMULMUL/symbiotic/internal/backend"
	"github.com/IMULMUL/symbiotic/internal/config"
	"github.com/IMULMUL/symbiotic/internal/metrics"
	"github.com/IMULMUL/symbiotic/internal/runner"
)

// Session is the in-process unit of work: sources, the current bitcode
// artifact, the backend plugin, the options snapshot, the
// linked-functions report, and the installation root.
//
// Created once by New; mutated only by the stage primitives operating on
// it (internal/stage); destroyed at the end of the driver's Run.
type Session struct {
	Sources []string
	Backend backend.Backend
	Opts    *config.Options

	// SymbioticDir is the installation root (spec.md §3 "symbiotic
	// installation root path").
	SymbioticDir string

	// Artifact is the current bitcode path. Invariant: after the first
	// successful compile (or a source_is_bc adoption) it is a
	// non-empty path; each producing stage replaces it atomically.
	Artifact string

	// LinkedFunctions is the append-only report of undefined symbols
	// that were resolved by linking in a shim (spec.md §3).
	LinkedFunctions []string

	Runner  *runner.Runner
	Metrics *metrics.Set
}

// New constructs a Session for the given sources, backend, and options.
func New(sources []string, be backend.Backend, opts *config.Options) *Session {
	return &Session{
		Sources:      sources,
		Backend:      be,
		Opts:         opts,
		SymbioticDir: opts.SymbioticDir,
		Runner:       runner.New(),
		Metrics:      metrics.New(),
	}
}

// LinkFunction records name as resolved-by-linking, for the end-of-run
// report (spec.md §4.5 step 17).
func (s *Session) LinkFunction(name string) {
	s.LinkedFunctions = append(s.LinkedFunctions, name)
}
