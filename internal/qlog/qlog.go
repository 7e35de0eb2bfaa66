// Package qlog provides the single process-wide structured logger used by
// the flow finders and verifier for diagnostic, non-control-flow output.
//
// Logging never influences correctness: every finder and verifier entry
// point remains a pure function of its input, and Log is consulted only to
// emit Debug-level progress and Warn-level advisories (see spec §5, §6).
package qlog

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-level logger, console-formatted for local development.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	With().Timestamp().Logger()

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	// Quiet by default; callers bump this via SetLevel for troubleshooting.
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}

// SetLevel adjusts the global verbosity, e.g. qlog.SetLevel(zerolog.DebugLevel)
// to trace finder rounds.
func SetLevel(lvl zerolog.Level) {
	zerolog.SetGlobalLevel(lvl)
}
