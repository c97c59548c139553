package watch

import (
	"strings"

	"github.com/IMULMUL/symbiotic/internal/logging"
)

// PrepareWatcher classifies the output of a module-loading opt-pass
// invocation (spec.md §4.1 "Prepare").
type PrepareWatcher struct {
	ring *ring
}

func NewPrepareWatcher() *PrepareWatcher {
	return &PrepareWatcher{ring: newRing(defaultRingSize)}
}

func (w *PrepareWatcher) Parse(line string) {
	w.ring.push(line)

	if strings.Contains(line, "Removed") || strings.Contains(line, "Defining") {
		logging.PrintStdout("", line+"\n", logging.StyleNone)
	} else {
		logging.Domain("prepare").Debug().Msg(line)
	}
}

func (w *PrepareWatcher) Lines() []string { return w.ring.lines() }
