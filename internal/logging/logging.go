package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Setup returns a human-readable logger on stderr. Stdout is reserved for the schedule.
func Setup(verbose bool) zerolog.Logger {
	return SetupWithWriter(os.Stderr, verbose)
}

// SetupWithWriter is Setup with a caller-supplied destination.
func SetupWithWriter(out io.Writer, verbose bool) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	consoleWriter := zerolog.ConsoleWriter{Out: out, NoColor: !isTerminal(out)}
	return zerolog.New(consoleWriter).With().Timestamp().Logger().Level(level)
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
