// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Formats accepted by Setup.
const (
	FormatAuto    = "auto"
	FormatConsole = "console"
	FormatJSON    = "json"
)

var log = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Log returns the process logger.
func Log() *zerolog.Logger {
	return &log
}

// Setup points the logger at stderr with the given level and format. The
// auto format picks the console writer when stderr is a terminal.
func Setup(level, format string) error {
	return SetupWriter(os.Stderr, level, format)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(w io.Writer, level, format string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)

	switch strings.ToLower(format) {
	case "", FormatAuto:
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			w = consoleWriter(w)
		}
	case FormatConsole:
		w = consoleWriter(w)
	case FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	log = zerolog.New(w).With().Timestamp().Logger()
	return nil
}

func consoleWriter(w io.Writer) io.Writer {
	return zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.TimeFormat = "15:04:05.000"
	})
}
