package pipeline

import (
	"strings"

	"github.com/IMULMUL/symbiotic/internal/logging"
)

// Report prints the verdict as "RESULT: <verdict>" with a color and
// human-readable prefix, and returns the line it wrote (spec.md §4.5
// "Verdict mapping").
func Report(verdict string) string {
	prefix, style := "", logging.StyleNone
	switch {
	case strings.HasPrefix(verdict, "false"):
		prefix, style = "Error found.", logging.StyleRed
	case verdict == "true":
		prefix, style = "No error found.", logging.StyleGreen
	case strings.HasPrefix(verdict, "error"), strings.HasPrefix(verdict, "ERROR"):
		prefix, style = "Failure!", logging.StyleRed
	}

	line := "RESULT: " + verdict
	if prefix != "" {
		logging.PrintStdout("", prefix+"\n", style)
	}
	logging.PrintStdout("", line+"\n", logging.StyleNone)
	return line
}
