package stage

import (
	"testing"

	"github.com/IMULMUL/symbiotic/internal/config"
	"github.com/IMULMUL/symbiotic/internal/session"
)

func newTestSession(opts *config.Options) *session.Session {
	return session.New([]string{"main.c"}, nil, opts)
}

func TestLibrariesEmptyWithoutAddLibc(t *testing.T) {
	s := newTestSession(config.Default())
	if libs := Libraries(s); len(libs) != 0 {
		t.Fatalf("Libraries() = %v, want empty", libs)
	}
}

func TestLibrariesReturnsKleeLibcPath(t *testing.T) {
	opts := config.Default()
	opts.AddLibc = true
	opts.SymbioticDir = "/opt/symbiotic"
	s := newTestSession(opts)

	got := Libraries(s)
	want := "/opt/symbiotic/lib/klee/runtime/klee-libc.bc"
	if len(got) != 1 || got[0] != want {
		t.Fatalf("Libraries() = %v, want [%q]", got, want)
	}
}

func TestLibraries32Bit(t *testing.T) {
	opts := config.Default()
	opts.AddLibc = true
	opts.Is32Bit = true
	opts.SymbioticDir = "/opt/symbiotic"
	s := newTestSession(opts)

	got := Libraries(s)
	want := "/opt/symbiotic/lib32/klee/runtime/klee-libc.bc"
	if len(got) != 1 || got[0] != want {
		t.Fatalf("Libraries() = %v, want [%q]", got, want)
	}
}
