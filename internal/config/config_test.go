package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlagsDefaults(t *testing.T) {
	o, _, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags(nil) error: %v", err)
	}
	if o.RepeatSlicing != 1 {
		t.Fatalf("RepeatSlicing = %d, want 1", o.RepeatSlicing)
	}
	if o.Property.Memsafety() || o.Property.SignedOverflow() || o.Property.Undefinedness() {
		t.Fatalf("expected no property selected by default")
	}
	if _, ok := o.Property.PrpFile(); ok {
		t.Fatalf("expected no prp file by default")
	}
}

func TestParseFlagsProperty(t *testing.T) {
	o, _, err := ParseFlags([]string{"--memsafety", "--prp=reach.prp", "--repeat-slicing=3"})
	if err != nil {
		t.Fatalf("ParseFlags error: %v", err)
	}
	if !o.Property.Memsafety() {
		t.Fatalf("expected memsafety property set")
	}
	if f, ok := o.Property.PrpFile(); !ok || f != "reach.prp" {
		t.Fatalf("PrpFile() = %q, %v, want reach.prp, true", f, ok)
	}
	if o.RepeatSlicing != 3 {
		t.Fatalf("RepeatSlicing = %d, want 3", o.RepeatSlicing)
	}
}

func TestFromFileDecodesOptionsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "options.yaml")
	yaml := "add-libc: true\nbackend: cpachecker\nrepeat-slicing: 4\nmemsafety: true\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	o, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() error: %v", err)
	}
	if !o.AddLibc {
		t.Fatalf("AddLibc = false, want true")
	}
	if o.BackendName != "cpachecker" {
		t.Fatalf("BackendName = %q, want cpachecker", o.BackendName)
	}
	if o.RepeatSlicing != 4 {
		t.Fatalf("RepeatSlicing = %d, want 4", o.RepeatSlicing)
	}
	if !o.Property.Memsafety() {
		t.Fatalf("expected memsafety property set")
	}
}

func TestParseFlagsOptionsFileWithCLIOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "options.yaml")
	yaml := "backend: cpachecker\nrepeat-slicing: 4\nadd-libc: true\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	o, _, err := ParseFlags([]string{"--options-file=" + path, "--backend=klee"})
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}

	if o.BackendName != "klee" {
		t.Fatalf("BackendName = %q, want klee (CLI should override file)", o.BackendName)
	}
	if o.RepeatSlicing != 4 {
		t.Fatalf("RepeatSlicing = %d, want 4 (from file)", o.RepeatSlicing)
	}
	if !o.AddLibc {
		t.Fatalf("AddLibc = false, want true (from file)")
	}
}
