package logger

import (
	"io"

	"golang.org/x/term"
)

type fdWriter interface {
	Fd() uintptr
}

// AutoColor applies Plain when the console is not a terminal, so redirected
// output carries no escape sequences.
func AutoColor() Option {
	return func(l *Logger) error {
		if !isTerminal(l.console) {
			l.flags |= FlagsPlain
		}
		return nil
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
