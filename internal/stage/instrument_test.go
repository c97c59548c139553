package stage

import (
	"path/filepath"
	"testing"

	"github.com/IMULMUL/symbiotic/internal/config"
)

type fakeProperty struct {
	memsafety      bool
	signedoverflow bool
}

func (p fakeProperty) Memsafety() bool      { return p.memsafety }
func (p fakeProperty) SignedOverflow() bool { return p.signedoverflow }

func TestPropertySubdirMemsafety(t *testing.T) {
	got, err := propertySubdir(fakeProperty{memsafety: true})
	if err != nil {
		t.Fatalf("propertySubdir() error: %v", err)
	}
	if got != "memsafety/" {
		t.Fatalf("propertySubdir() = %q, want memsafety/", got)
	}
}

func TestPropertySubdirSignedOverflow(t *testing.T) {
	got, err := propertySubdir(fakeProperty{signedoverflow: true})
	if err != nil {
		t.Fatalf("propertySubdir() error: %v", err)
	}
	if got != "int_overflows/" {
		t.Fatalf("propertySubdir() = %q, want int_overflows/", got)
	}
}

func TestPropertySubdirUnhandled(t *testing.T) {
	if _, err := propertySubdir(fakeProperty{}); err == nil {
		t.Fatalf("expected an error for a property selecting neither memsafety nor signedoverflow")
	}
}

func TestInstrumentNoopWithoutInstrumentationOptioner(t *testing.T) {
	opts := config.Default()
	s := newTestSession(opts)
	s.Backend = nil

	if err := Instrument(nil, s, fakeProperty{memsafety: true}); err != nil {
		t.Fatalf("Instrument() on a backend without InstrumentationOptioner should be a no-op, got %v", err)
	}
}

func TestInstrumentMissingConfigFileErrors(t *testing.T) {
	dir := t.TempDir()
	opts := config.Default()
	opts.InstrumentationFilesPath = filepath.Join(dir, "nonexistent") + string(filepath.Separator)
	opts.SymbioticDir = dir
	s := newTestSession(opts)
	s.Backend = fakeInstrumentationBackend{configFile: "config.json", shouldLink: true}

	if err := Instrument(nil, s, fakeProperty{memsafety: true}); err == nil {
		t.Fatalf("expected an error when the instrumentation config file is missing")
	}
}

type fakeInstrumentationBackend struct {
	configFile string
	shouldLink bool
}

func (fakeInstrumentationBackend) Name() string        { return "fake" }
func (fakeInstrumentationBackend) Executable() string   { return "fake" }
func (fakeInstrumentationBackend) LLVMVersion() string  { return "3.9.1" }
func (fakeInstrumentationBackend) Cmdline(exe string, params, inputs []string, propFile string, extraEnv []string) []string {
	return nil
}
func (fakeInstrumentationBackend) DetermineResult(returnCode, signal int, lines []string, timedOut bool) string {
	return "unknown"
}
func (b fakeInstrumentationBackend) InstrumentationOptions() (string, bool) {
	return b.configFile, b.shouldLink
}
