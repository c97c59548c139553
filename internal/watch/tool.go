package watch

import (
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/IMULMUL/symbiotic/internal/logging"
)

// ToolWatcher classifies the raw output of a generic tool invocation
// (spec.md §4.1 "Tool"), and is also the watcher used for
// run-verification (spec.md §4.3).
//
// Raw passthrough to stderr is rate-limited so a chatty backend can't
// flood the terminal: this generalizes the teacher's --limit-rate /
// --limit-sample callback throttling (core/attach.go) from "messages per
// stage" to "raw lines per tool invocation".
type ToolWatcher struct {
	ring    *ring
	limiter *rate.Limiter
}

func NewToolWatcher() *ToolWatcher {
	return &ToolWatcher{
		ring:    newRing(defaultRingSize),
		limiter: rate.NewLimiter(rate.Every(10*time.Millisecond), 50),
	}
}

func (w *ToolWatcher) Parse(line string) {
	w.ring.push(line)

	if strings.Contains(line, "ERROR") || strings.Contains(line, "WARN") ||
		strings.Contains(line, "Assertion") || strings.Contains(line, "error") ||
		strings.Contains(line, "warn") {
		if w.limiter.Allow() {
			logging.PrintStderr("", line+"\n", logging.StyleNone)
		}
	} else {
		logging.Domain("all").Debug().Msg(line)
	}
}

func (w *ToolWatcher) Lines() []string { return w.ring.lines() }
