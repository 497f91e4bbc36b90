// Package logging wires up zerolog the way the teacher's cmd/agent did —
// a human-readable console writer on stderr — and adds a rotated
// JSON-lines sink (via lumberjack) for the high-volume CDP message trace,
// which is too noisy for the console but valuable for post-hoc debugging.
package logging

import (
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewConsole builds the interactive logger used by cmd/browsercli itself:
// colored, human-readable, written to stderr so stdout stays reserved for
// command output (snapshots, get results, etc).
func NewConsole(level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// NewCDPTrace builds a trace-level JSON-lines logger for CDP messages,
// rotated by lumberjack so a long-running watch session doesn't grow the
// log file unbounded. cmd/browsercli does not call it: internal/cdp.Session
// receives the console logger from NewConsole instead.
func NewCDPTrace(path string) zerolog.Logger {
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     14,
		Compress:   true,
	}
	return zerolog.New(rotator).Level(zerolog.TraceLevel).With().Timestamp().Logger()
}
