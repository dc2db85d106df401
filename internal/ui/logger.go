package ui

import (
	"io"

	"github.com/pterm/pterm"
)

// NewLogger returns the structured logger used across the CLI.
func NewLogger(debug bool, w io.Writer) *pterm.Logger {
	level := pterm.LogLevelInfo
	if debug {
		level = pterm.LogLevelDebug
	}
	return pterm.DefaultLogger.WithLevel(level).WithWriter(w)
}
