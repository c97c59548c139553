package watch

import "github.com/IMULMUL/symbiotic/internal/logging"

// DebugWatcher logs every line to a named domain at debug level, with
// no further classification (spec.md §4.1 refers to this as the
// generic "debug" watcher, used by link and postprocess-llvm).
type DebugWatcher struct {
	domain string
	ring   *ring
}

func NewDebugWatcher(domain string) *DebugWatcher {
	return &DebugWatcher{domain: domain, ring: newRing(defaultRingSize)}
}

func (w *DebugWatcher) Parse(line string) {
	w.ring.push(line)
	logging.Domain(w.domain).Debug().Msg(line)
}

func (w *DebugWatcher) Lines() []string { return w.ring.lines() }
