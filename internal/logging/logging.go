// SPDX-License-Identifier: MPL-2.0

// Package logging configures the process-wide slog logger.
//
// Call sites use log/slog directly. The handler behind it is a charmbracelet/log
// logger, which renders leveled, colored output on a terminal and plain text
// elsewhere.
package logging

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// Prefix is printed in front of every log line.
const Prefix = "patterns"

// New returns a slog logger writing to w. Debug records are kept only when
// verbose is set; otherwise the threshold is Warn so normal runs stay quiet.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           level,
		ReportTimestamp: false,
	})
	return slog.New(handler)
}

// Setup installs New(w, verbose) as the slog default and returns it.
func Setup(w io.Writer, verbose bool) *slog.Logger {
	logger := New(w, verbose)
	slog.SetDefault(logger)
	return logger
}
