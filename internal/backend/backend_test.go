package backend

import "testing"

func TestDefinitionsFromConfig(t *testing.T) {
	cfg := []byte(`{"definitions": "memsafety-defs.c", "shouldlink": true}`)
	got, err := DefinitionsFromConfig(cfg)
	if err != nil {
		t.Fatalf("DefinitionsFromConfig() error: %v", err)
	}
	if got != "memsafety-defs.c" {
		t.Fatalf("got %q, want memsafety-defs.c", got)
	}
}

func TestDefinitionsFromConfigMissingField(t *testing.T) {
	cfg := []byte(`{"shouldlink": true}`)
	if _, err := DefinitionsFromConfig(cfg); err == nil {
		t.Fatalf("expected an error for a config blob missing \"definitions\"")
	}
}
