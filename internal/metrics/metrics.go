// Package metrics records per-stage wall-clock duration when
// Options.Stats is set (spec.md §6 "stats"), generalizing the Python
// original's hand-rolled restart_counting_time/print_elapsed_time pair
// into real counters dumped in Prometheus text exposition format.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/VictoriaMetrics/metrics"
)

// Set is a private metrics namespace, one per Session, so concurrent
// test runs (or multiple Sessions in one process) don't collide on a
// shared default registry.
type Set struct {
	set *metrics.Set
}

// New returns a fresh metrics Set.
func New() *Set {
	return &Set{set: metrics.NewSet()}
}

// StageTimer starts timing a stage and returns a func to call when the
// stage completes.
func (s *Set) StageTimer(stage string) func() {
	start := time.Now()
	return func() {
		h := s.set.GetOrCreateHistogram(fmt.Sprintf(`symbiotic_stage_duration_seconds{stage=%q}`, stage))
		h.Update(time.Since(start).Seconds())
		c := s.set.GetOrCreateCounter(fmt.Sprintf(`symbiotic_stage_runs_total{stage=%q}`, stage))
		c.Inc()
	}
}

// WritePrometheus dumps the accumulated metrics in Prometheus text
// exposition format, the way --stats' output is surfaced at the end of
// a run.
func (s *Set) WritePrometheus(w io.Writer) {
	s.set.WritePrometheus(w)
}
