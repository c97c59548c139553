package watch

import (
	"regexp"

	"github.com/IMULMUL/symbiotic/internal/logging"
)

var unsupportedCallRE = regexp.MustCompile(`.*call to .* is unsupported.*`)

// UnsupportedCallWatcher probes a module for calls the backend can't
// handle. ok is sticky: it becomes false on the first matching line and
// never recovers (spec.md §3 "Watcher").
type UnsupportedCallWatcher struct {
	ring *ring
	ok   bool
}

func NewUnsupportedCallWatcher() *UnsupportedCallWatcher {
	return &UnsupportedCallWatcher{ring: newRing(defaultRingSize), ok: true}
}

func (w *UnsupportedCallWatcher) Parse(line string) {
	w.ring.push(line)
	logging.Domain("prepare").Debug().Msg(line)

	if unsupportedCallRE.MatchString(line) {
		w.ok = false
	}
}

func (w *UnsupportedCallWatcher) Ok() bool { return w.ok }

func (w *UnsupportedCallWatcher) Lines() []string { return w.ring.lines() }
