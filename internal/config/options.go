// Package config implements the read-only Options snapshot and Property
// view of spec.md §3/§6. Options is populated once, at startup, by either
// ParseFlags (CLI) or FromFile (options file). The only field the
// pipeline writes afterwards is DisabledOptimizations, which
// pipeline.Run sets from the backend's LLVM version (and, under the
// signed-overflow property, to -instcombine alone).
package config

import "github.com/IMULMUL/symbiotic/internal/optcatalogue"

// Options is the recognized configuration surface of spec.md §6.
type Options struct {
	CFLAGS   []string
	CPPFLAGS []string

	Is32Bit bool
	AddLibc bool

	LinkFiles []string
	LinkUndef []string

	UndefinedArePure bool
	SlicerPTA        string // "fi" or "fs"
	SlicerParams     []string
	RepeatSlicing    int

	Optlevel   []string
	NoOptimize bool

	DisabledOptimizations []string

	NoSlice     bool
	SourceIsBC  bool
	Stats       bool

	InstrumentationFilesPath string

	NoVerification bool
	ToolParams     []string
	FinalOutput    string

	Property Property

	// ambient fields a real CLI needs, beyond the literal spec.md table
	SymbioticDir string
	LogLevel     string
	Explain      bool

	// BackendName/BackendExecutable select which backend plugin
	// cmd/symbiotic constructs; not part of spec.md's table since the
	// distilled spec treats the backend as already chosen.
	BackendName       string
	BackendExecutable string

	// Optimizations is the named-pass catalogue collaborator
	// (spec.md §1's "catalogue of named optimization-pass groups").
	Optimizations optcatalogue.Catalogue
}

// Default returns Options with the defaults a bare CLI invocation would
// produce (repeat_slicing=1, the built-in catalogue, etc).
func Default() *Options {
	return &Options{
		RepeatSlicing: 1,
		LogLevel:      "info",
		Optimizations: optcatalogue.Default,
	}
}

// Property is the capability view of spec.md §3: which verification
// property is under test, selecting stage-conditional branches.
type Property struct {
	memsafety      bool
	signedoverflow bool
	undefinedness  bool
	prpFile        string
}

// NewProperty constructs a Property view. Exactly one of the three
// booleans is expected to be true in practice, but the type itself does
// not enforce that — it is the driver's job to treat an unrecognized
// combination as a programming error (spec.md §4.3 "instrument").
func NewProperty(memsafety, signedoverflow, undefinedness bool, prpFile string) Property {
	return Property{
		memsafety:      memsafety,
		signedoverflow: signedoverflow,
		undefinedness:  undefinedness,
		prpFile:        prpFile,
	}
}

func (p Property) Memsafety() bool      { return p.memsafety }
func (p Property) SignedOverflow() bool { return p.signedoverflow }
func (p Property) Undefinedness() bool  { return p.undefinedness }

// PrpFile returns the configured property file path, and whether one was
// set at all.
func (p Property) PrpFile() (string, bool) {
	return p.prpFile, p.prpFile != ""
}
