package watch

import (
	"bytes"
	"strings"
	"testing"

	"github.com/IMULMUL/symbiotic/internal/logging"
)

// captureStderr redirects logging.Stderr into a buffer for the rest of
// the test.
func captureStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := logging.Stderr
	logging.Stderr = &buf
	t.Cleanup(func() { logging.Stderr = old })
	return &buf
}

func TestCompileWatcherRoutesErrorLinesToStderr(t *testing.T) {
	stderr := captureStderr(t)
	w := NewCompileWatcher()
	w.Parse("foo.c:3:1: error: expected ';'")
	w.Parse("note: some debug chatter")
	lines := w.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected both lines retained, got %d", len(lines))
	}
	if !strings.Contains(stderr.String(), "foo.c:3:1: error: expected ';'") {
		t.Fatalf("expected the error line on stderr, got %q", stderr.String())
	}
	if strings.Contains(stderr.String(), "some debug chatter") {
		t.Fatalf("expected the non-error line kept off stderr, got %q", stderr.String())
	}
}

func TestInstrumentationWatcherRoutesErrorToStderr(t *testing.T) {
	stderr := captureStderr(t)
	w := NewInstrumentationWatcher()
	w.Parse("ERROR foo")
	if len(w.Lines()) != 1 {
		t.Fatalf("expected 1 retained line")
	}
	if stderr.String() != "ERROR foo\n" {
		t.Fatalf("stderr = %q, want %q", stderr.String(), "ERROR foo\n")
	}
}

func TestUnsupportedCallWatcherStickyOk(t *testing.T) {
	w := NewUnsupportedCallWatcher()
	if !w.Ok() {
		t.Fatalf("expected ok=true initially")
	}
	w.Parse("some normal line")
	if !w.Ok() {
		t.Fatalf("expected ok=true after a benign line")
	}
	w.Parse("note: call to pthread_create is unsupported here")
	if w.Ok() {
		t.Fatalf("expected ok=false after a matching line")
	}
	w.Parse("some other normal line")
	if w.Ok() {
		t.Fatalf("expected ok to stay false (sticky)")
	}
}

func TestCaptureWatcherUnbounded(t *testing.T) {
	w := NewCaptureWatcher()
	for i := 0; i < defaultRingSize+10; i++ {
		w.Parse("line")
	}
	if len(w.Lines()) != defaultRingSize+10 {
		t.Fatalf("capture watcher should retain every line, got %d", len(w.Lines()))
	}
}

func TestRingBoundedTail(t *testing.T) {
	r := newRing(3)
	r.push("a")
	r.push("b")
	r.push("c")
	r.push("d")
	got := r.lines()
	want := []string{"b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
