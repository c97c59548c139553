// Package runner implements the out-of-process stage execution engine
// of spec.md §4.1: spawn a child, stream its merged output line-by-line
// to a watcher, await completion, and expose cancellation.
package runner

import (
	"bufio"
	"context"
	"io"
	"os/exec"
	"time"

	"github.com/valyala/bytebufferpool"

	"github.com/IMULMUL/symbiotic/internal/symbioticerr"
	"github.com/IMULMUL/symbiotic/internal/watch"
)

// Runner owns the process-wide current-child Handle shared by every
// stage primitive invoked from one Session.
type Runner struct {
	Handle *Handle
}

// New returns a Runner with a fresh Handle.
func New() *Runner {
	return &Runner{Handle: NewHandle()}
}

// Run spawns argv[0] (resolved via PATH) with argv[1:] as arguments,
// merges stdout and stderr, feeds every newline-terminated line (the
// last partial line flushed at EOF) to w.Parse in arrival order, and
// waits for completion. A non-zero exit or spawn failure is reported as
// a *symbioticerr.Error wrapping the underlying exec error, whose
// message is failMsg followed by that error's text.
func (r *Runner) Run(ctx context.Context, argv []string, w watch.Watcher, failMsg string) error {
	if len(argv) == 0 {
		return symbioticerr.New(failMsg)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	setpgid(cmd)

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pw.Close()
		return symbioticerr.Wrap(failMsg, err)
	}

	r.Handle.register(cmd)
	defer r.Handle.unregister(cmd)

	scanDone := make(chan struct{})
	go func() {
		defer close(scanDone)
		buf := bytebufferpool.Get()
		defer bytebufferpool.Put(buf)

		sc := bufio.NewScanner(pr)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			buf.Reset()
			buf.Write(sc.Bytes())
			w.Parse(buf.String())
		}
	}()

	waitErr := cmd.Wait()
	pw.Close()
	<-scanDone

	if waitErr != nil {
		return symbioticerr.Wrap(failMsg, waitErr)
	}
	return nil
}

// KillWait repeatedly sends the forceful kill signal to the current
// child every 500ms until its exit status becomes available, or ctx is
// done (spec.md §4.1 "killWait").
func (r *Runner) KillWait(ctx context.Context, done <-chan struct{}) {
	if _, ok := r.Handle.hasProcess(); !ok {
		return
	}

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Handle.Kill()
		}
	}
}
