// Package logging holds the process-wide logger sink and the domain
// sub-loggers the watchers write to.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ANSI styles, matching the color vocabulary of the verdict mapping and
// watcher tags (spec.md §4.1, §4.5).
const (
	StyleNone    = ""
	StyleRed     = "\033[31m"
	StyleGreen   = "\033[32m"
	StyleBrown   = "\033[33m"
	StyleWhite   = "\033[37m"
	StyleBold    = "\033[1m"
	StyleReset   = "\033[0m"
)

// Colorize wraps s in the given ANSI style, or returns s unchanged if
// style is StyleNone.
func Colorize(s, style string) string {
	if style == StyleNone {
		return s
	}
	return style + s + StyleReset
}

// Logger is the root logger, built on zerolog the way the teacher builds
// its console writer.
var Logger = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.DateTime,
}).With().Timestamp().Logger()

// SetLevel parses and installs lvl as the global log level.
func SetLevel(lvl string) error {
	l, err := zerolog.ParseLevel(lvl)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(l)
	return nil
}

// Domain returns a sub-logger tagged with the given watcher domain, eg.
// "compile", "prepare", "slicer", "instrumentation", "all".
func Domain(domain string) zerolog.Logger {
	return Logger.With().Str("domain", domain).Logger()
}

// Stdout and Stderr are the raw streams watchers print to directly
// (bypassing structured logging) for the literal RESULT:/cc:/INFO:
// prefixed lines the spec requires verbatim.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// PrintStdout writes s to Stdout, optionally colorized and prefixed.
func PrintStdout(prefix, s, style string) {
	io.WriteString(Stdout, prefix+Colorize(s, style))
}

// PrintStderr writes s to Stderr, optionally colorized and prefixed.
func PrintStderr(prefix, s, style string) {
	io.WriteString(Stderr, prefix+Colorize(s, style))
}
