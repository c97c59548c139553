// Package optcatalogue implements the named optimization-pass catalogue
// lookup of spec.md §4.5: a mapping from a symbolic pass-group name (with
// optional "before-"/"after-" prefix) to a concrete ordered list of
// optimizer flags.
package optcatalogue

import "strings"

// Catalogue maps a pass-group name to its ordered list of opt flags.
// Injected by internal/config, the way spec.md §1 treats it as an
// external collaborator.
type Catalogue map[string][]string

// Default is a small, representative catalogue grounded on the kind of
// pass groupings the LLVM-based verification toolchain this driver wraps
// would realistically expose. Callers may supply their own via
// config.Options.Optimizations instead.
var Default = Catalogue{
	"O2": {"-instcombine", "-simplifycfg", "-gvn", "-sccp", "-dce"},
	"O3": {"-instcombine", "-simplifycfg", "-gvn", "-sccp", "-dce", "-inline", "-loop-unroll"},
	"cd": {"-correlated-propagation", "-jump-threading"},
}

// GetBefore returns the ordered pass list contributed by every
// "before-"-prefixed token in optlevel, per spec.md's
// get-optlist-before.
func (c Catalogue) GetBefore(optlevel []string) []string {
	return c.filter(optlevel, "before-")
}

// GetAfter returns the ordered pass list contributed by every
// "after-"-prefixed token in optlevel, per spec.md's get-optlist-after.
func (c Catalogue) GetAfter(optlevel []string) []string {
	return c.filter(optlevel, "after-")
}

func (c Catalogue) filter(optlevel []string, prefix string) []string {
	var out []string
	for _, opt := range optlevel {
		rest, ok := strings.CutPrefix(opt, prefix)
		if !ok {
			continue
		}

		if o, ok := strings.CutPrefix(rest, "opt-"); ok {
			out = append(out, "-"+o)
		} else if passes, ok := c[rest]; ok {
			out = append(out, passes...)
		}
	}
	return out
}
