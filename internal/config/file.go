package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// FromFile loads an options file (YAML, using the same dash-separated
// keys as the CLI flags) through koanf's file provider and decodes it
// into a standalone Options record. ParseFlags uses loadFileInto instead,
// so that an options file's values land in the same koanf.Koanf instance
// CLI flags are later loaded into, rather than a throwaway one.
func FromFile(path string) (*Options, error) {
	k := koanf.New(".")
	if err := loadFileInto(k, path); err != nil {
		return nil, err
	}
	return decodeOptions(k), nil
}

// loadFileInto loads an options file's YAML contents into an existing
// koanf.Koanf, the shared step FromFile and ParseFlags's --options-file
// handling both build on.
func loadFileInto(k *koanf.Koanf, path string) error {
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("could not load options file %q: %w", path, err)
	}
	return nil
}
