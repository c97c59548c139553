package watch

import (
	"strings"

	"github.com/IMULMUL/symbiotic/internal/logging"
)

// InstrumentationWatcher classifies the output of the instrumentation
// tool (spec.md §4.1 "Instrumentation"). Its fallthrough case logs to
// the "slicer" domain rather than "instrumentation" — this mirrors
// original_source/symbiotic.py's InstrumentationWatch.parse exactly, not
// a copy error: see DESIGN.md.
type InstrumentationWatcher struct {
	ring *ring
}

func NewInstrumentationWatcher() *InstrumentationWatcher {
	return &InstrumentationWatcher{ring: newRing(defaultRingSize)}
}

func (w *InstrumentationWatcher) Parse(line string) {
	w.ring.push(line)

	switch {
	case strings.Contains(line, "Info"):
		logging.Domain("instrumentation").Debug().Msg(line)
	case strings.Contains(line, "ERROR"), strings.Contains(line, "error"):
		logging.PrintStderr("", line+"\n", logging.StyleNone)
	case strings.Contains(line, "Inserted"):
		logging.PrintStdout("", line+"\n", logging.StyleNone)
	default:
		logging.Domain("slicer").Debug().Msg(line)
	}
}

func (w *InstrumentationWatcher) Lines() []string { return w.ring.lines() }
