package watch

import "github.com/IMULMUL/symbiotic/internal/logging"

// PrintWatcher echoes every line to stdout with a fixed prefix and
// color (spec.md §4.1 "Print"). Used by the --stats side-probe.
type PrintWatcher struct {
	prefix string
	style  string
	ring   *ring
}

func NewPrintWatcher(prefix, style string) *PrintWatcher {
	return &PrintWatcher{prefix: prefix, style: style, ring: newRing(defaultRingSize)}
}

func (w *PrintWatcher) Parse(line string) {
	w.ring.push(line)
	logging.PrintStdout(w.prefix, line+"\n", w.style)
}

func (w *PrintWatcher) Lines() []string { return w.ring.lines() }
