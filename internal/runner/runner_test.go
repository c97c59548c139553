package runner

import (
	"context"
	"testing"
	"time"

	"github.com/IMULMUL/symbiotic/internal/symbioticerr"
	"github.com/IMULMUL/symbiotic/internal/watch"
)

func TestRunFeedsLinesInOrder(t *testing.T) {
	r := New()
	w := watch.NewCaptureWatcher()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := r.Run(ctx, []string{"sh", "-c", "echo one; echo two; echo three"}, w, "echo failed")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := []string{"one", "two", "three"}
	got := w.Lines()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestRunNonZeroExitReportsSymbioticError(t *testing.T) {
	r := New()
	w := watch.NewCaptureWatcher()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := r.Run(ctx, []string{"sh", "-c", "exit 1"}, w, "command failed")
	if err == nil {
		t.Fatalf("expected an error for non-zero exit")
	}
	if !symbioticerr.Is(err) {
		t.Fatalf("expected a *symbioticerr.Error for non-zero exit, got %T: %v", err, err)
	}
}

func TestHandleNoopWhenNoChild(t *testing.T) {
	h := NewHandle()
	if err := h.Terminate(); err != nil {
		t.Fatalf("Terminate() on empty handle should be a no-op, got %v", err)
	}
	if err := h.Kill(); err != nil {
		t.Fatalf("Kill() on empty handle should be a no-op, got %v", err)
	}
}

func TestRunRegistersAndUnregistersChild(t *testing.T) {
	r := New()
	w := watch.NewCaptureWatcher()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.Run(ctx, []string{"sh", "-c", "true"}, w, "true failed"); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if _, ok := r.Handle.hasProcess(); ok {
		t.Fatalf("expected no current child after Run returns")
	}
}
