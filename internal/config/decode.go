package config

import "github.com/knadh/koanf/v2"

// decodeOptions builds an Options record from a koanf.Koanf populated by
// any combination of providers (posflag, file) sharing the dash-separated
// key set of addFlags, the way core/config.go decodes its merged
// flag+file koanf instance through a single path.
func decodeOptions(k *koanf.Koanf) *Options {
	o := Default()
	o.CFLAGS = k.Strings("cflags")
	o.CPPFLAGS = k.Strings("cppflags")
	o.Is32Bit = k.Bool("32bit")
	o.AddLibc = k.Bool("add-libc")
	o.LinkFiles = k.Strings("link-files")
	o.LinkUndef = k.Strings("linkundef")
	o.UndefinedArePure = k.Bool("undefined-are-pure")
	o.SlicerPTA = k.String("slicer-pta")
	o.SlicerParams = k.Strings("slicer-params")
	if n := k.Int("repeat-slicing"); n > 0 {
		o.RepeatSlicing = n
	}
	o.Optlevel = k.Strings("optlevel")
	o.NoOptimize = k.Bool("no-optimize")
	o.DisabledOptimizations = k.Strings("disabled-optimizations")
	o.NoSlice = k.Bool("noslice")
	o.SourceIsBC = k.Bool("source-is-bc")
	o.Stats = k.Bool("stats")
	o.InstrumentationFilesPath = k.String("instrumentation-files-path")
	o.NoVerification = k.Bool("no-verification")
	o.ToolParams = k.Strings("tool-params")
	o.FinalOutput = k.String("final-output")
	o.SymbioticDir = k.String("symbiotic-dir")
	o.LogLevel = k.String("log")
	o.Explain = k.Bool("explain")
	o.BackendName = k.String("backend")
	o.BackendExecutable = k.String("backend-executable")

	o.Property = NewProperty(
		k.Bool("memsafety"),
		k.Bool("signedoverflow"),
		k.Bool("undefinedness"),
		k.String("prp"),
	)

	return o
}
