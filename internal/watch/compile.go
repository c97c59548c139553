package watch

import (
	"strings"

	"github.com/IMULMUL/symbiotic/internal/logging"
)

// CompileWatcher classifies the output of a compile invocation
// (spec.md §4.1 "Compile").
type CompileWatcher struct {
	ring *ring
}

func NewCompileWatcher() *CompileWatcher {
	return &CompileWatcher{ring: newRing(defaultRingSize)}
}

func (w *CompileWatcher) Parse(line string) {
	w.ring.push(line)

	if strings.Contains(line, "error:") {
		logging.PrintStderr("cc: ", line+"\n", logging.StyleBrown)
	} else {
		logging.Domain("compile").Debug().Msg(line)
	}
}

func (w *CompileWatcher) Lines() []string { return w.ring.lines() }
