package watch

import (
	"strings"

	"github.com/IMULMUL/symbiotic/internal/logging"
)

// SlicerWatcher classifies the output of the slicing tool
// (spec.md §4.1 "Slicer").
type SlicerWatcher struct {
	ring *ring
}

func NewSlicerWatcher() *SlicerWatcher {
	return &SlicerWatcher{ring: newRing(defaultRingSize)}
}

func (w *SlicerWatcher) Parse(line string) {
	w.ring.push(line)

	switch {
	case strings.Contains(line, "INFO"):
		logging.Domain("slicer").Debug().Msg(line)
	case strings.Contains(line, "ERROR"), strings.Contains(line, "error"):
		logging.PrintStderr("", line+"\n", logging.StyleNone)
	default:
		logging.Domain("slicer").Debug().Msg(line)
	}
}

func (w *SlicerWatcher) Lines() []string { return w.ring.lines() }
