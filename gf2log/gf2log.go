// Package gf2log provides a configurable logger shared by the gf2 packages,
// modeled on gnark's logger package: a package-level zerolog.Logger with a
// console writer by default.
//
// The core arithmetic in package gf2 is pure and never logs on its hot path;
// this logger is used only by the optional parallel multiplication helper to
// report worker partitioning at debug level.
package gf2log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()
}

// SetOutput changes the output of the package logger.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set replaces the package logger entirely.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable silences the package logger.
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns the shared logger.
func Logger() zerolog.Logger {
	return logger
}
