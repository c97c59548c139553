package watch

// CaptureWatcher appends every line to an unbounded buffer for later
// retrieval (spec.md §4.1 "Capture"), used by list-undefined and the
// compiler-version probe.
type CaptureWatcher struct {
	lines []string
}

func NewCaptureWatcher() *CaptureWatcher {
	return &CaptureWatcher{}
}

func (w *CaptureWatcher) Parse(line string) {
	w.lines = append(w.lines, line)
}

func (w *CaptureWatcher) Lines() []string { return w.lines }
