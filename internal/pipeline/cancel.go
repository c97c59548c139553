package pipeline

import (
	"context"
	"os"
	"os/signal"

	"github.com/IMULMUL/symbiotic/internal/logging"
	"github.com/IMULMUL/symbiotic/internal/session"
	"github.com/IMULMUL/symbiotic/internal/symbioticerr"
)

// RunCancellable wraps Run with the keyboard-interrupt handling of
// spec.md §5: on SIGINT, terminate the current child gracefully, then
// kill it forcefully, then wait for it to be reaped before returning
// (original_source's run/terminate/kill/kill_wait).
func RunCancellable(ctx context.Context, s *session.Session) (string, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	type result struct {
		verdict string
		err     error
	}
	done := make(chan result, 1)

	go func() {
		verdict, err := Run(ctx, s)
		done <- result{verdict, err}
	}()

	select {
	case r := <-done:
		return r.verdict, r.err
	case <-ctx.Done():
		_ = s.Runner.Handle.Terminate()
		_ = s.Runner.Handle.Kill()

		killDone := make(chan struct{})
		go func() {
			<-done
			close(killDone)
		}()
		s.Runner.KillWait(context.Background(), killDone)
		<-killDone

		logging.PrintStdout("", "Interrupted...\n", logging.StyleNone)
		return "", symbioticerr.ErrCancelled
	}
}
