// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// newLogger returns a charmbracelet logger writing to w. It doubles as the
// slog handler installed by Execute.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "plugkit",
		Level:  log.InfoLevel,
	})
}

// setVerbose lowers the level to debug, or restores info.
func (a *App) setVerbose(verbose bool) {
	if verbose {
		a.logger.SetLevel(log.DebugLevel)
		return
	}
	a.logger.SetLevel(log.InfoLevel)
}

// slogger returns a slog front end for the app logger.
func (a *App) slogger() *slog.Logger {
	return slog.New(a.logger)
}
