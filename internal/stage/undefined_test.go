package stage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestShimPathPrefersToolSpecific(t *testing.T) {
	dir := t.TempDir()

	toolDir := filepath.Join(dir, "lib", "memsafety", "klee")
	if err := os.MkdirAll(toolDir, 0o755); err != nil {
		t.Fatal(err)
	}
	specific := filepath.Join(toolDir, "malloc.c")
	if err := os.WriteFile(specific, []byte("/* shim */\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	genericDir := filepath.Join(dir, "lib", "memsafety")
	generic := filepath.Join(genericDir, "malloc.c")
	if err := os.WriteFile(generic, []byte("/* generic shim */\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	path, ok := shimPath(dir, "memsafety", "klee", "malloc")
	if !ok {
		t.Fatalf("expected shimPath to find a match")
	}
	if path != specific {
		t.Fatalf("shimPath() = %q, want the tool-specific path %q", path, specific)
	}
}

func TestShimPathFallsBackToGeneric(t *testing.T) {
	dir := t.TempDir()

	genericDir := filepath.Join(dir, "lib", "memsafety")
	if err := os.MkdirAll(genericDir, 0o755); err != nil {
		t.Fatal(err)
	}
	generic := filepath.Join(genericDir, "free.c")
	if err := os.WriteFile(generic, []byte("/* generic shim */\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	path, ok := shimPath(dir, "memsafety", "klee", "free")
	if !ok {
		t.Fatalf("expected shimPath to find the generic fallback")
	}
	if path != generic {
		t.Fatalf("shimPath() = %q, want %q", path, generic)
	}
}

func TestShimPathNotFound(t *testing.T) {
	dir := t.TempDir()
	if _, ok := shimPath(dir, "memsafety", "klee", "nonexistent"); ok {
		t.Fatalf("expected shimPath to report no match")
	}
}
