package klee

import "testing"

func TestDetermineResultFalse(t *testing.T) {
	b := New("")
	lines := []string{"some noise", "VERIFICATION_RESULT: false(unreach-call)"}
	got := b.DetermineResult(1, 0, lines, false)
	if got != "false(unreach-call)" {
		t.Fatalf("DetermineResult() = %q, want false(unreach-call)", got)
	}
}

func TestDetermineResultTrueOnCleanExit(t *testing.T) {
	b := New("")
	got := b.DetermineResult(0, 0, nil, false)
	if got != "true" {
		t.Fatalf("DetermineResult() = %q, want true", got)
	}
}

func TestDetermineResultTimeout(t *testing.T) {
	b := New("")
	got := b.DetermineResult(0, 0, nil, true)
	if got != "timeout" {
		t.Fatalf("DetermineResult() = %q, want timeout", got)
	}
}

func TestInstrumentationOptions(t *testing.T) {
	b := New("")
	configFile, shouldLink := b.InstrumentationOptions()
	if configFile != "config.json" {
		t.Fatalf("configFile = %q, want config.json", configFile)
	}
	if !shouldLink {
		t.Fatalf("shouldLink = false, want true")
	}
}
