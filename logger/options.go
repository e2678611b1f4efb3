package logger

import (
	"io"
	"time"
)

// Option configures a Logger. Options are applied in order by Configure;
// flag options OR bits into the mask and Reset clears it.
type Option func(*Logger) error

func setFlags(mask Flags) Option {
	return func(l *Logger) error {
		l.flags |= mask
		return nil
	}
}

// NoIndex hides the incrementing log index.
func NoIndex() Option { return setFlags(FlagNoIndex) }

// NoSymbol hides the severity symbol.
func NoSymbol() Option { return setFlags(FlagNoSymbol) }

// NoColor removes all colors.
func NoColor() Option { return setFlags(FlagNoColor) }

// NoBold removes bold emphasis.
func NoBold() Option { return setFlags(FlagNoBold) }

// Plain removes all formatting escape sequences. Same as NoColor plus NoBold.
func Plain() Option { return setFlags(FlagsPlain) }

// Basic reduces every entry to the bare message: no header, no escapes.
func Basic() Option { return setFlags(FlagsBasic) }

// FileOnly stops console output. Combine it with a file option, otherwise
// entries are dropped and a warning is printed once.
func FileOnly() Option { return setFlags(FlagFileOnly) }

// Reset restores default formatting by clearing every flag. An open log file
// and the timer origin are kept for a later FileAt/Timer call to replace.
func Reset() Option {
	return func(l *Logger) error {
		l.flags = 0
		return nil
	}
}

// FileDefault mirrors entries to DefaultFilePath in the working directory.
// An existing file is truncated.
func FileDefault() Option {
	return FilePath(DefaultFilePath)
}

// FilePath mirrors entries to the file at path, created or truncated now.
// The file is closed by Logger.Close.
func FilePath(path string) Option {
	return func(l *Logger) error {
		s, err := openSink(path)
		if err != nil {
			return err
		}
		return l.setSink(s)
	}
}

// FileAt mirrors entries to w. An *os.File is duplicated, so the caller keeps
// ownership of its own handle and the Logger closes only its copy. Other
// writers are used as-is and never closed.
func FileAt(w io.Writer) Option {
	return func(l *Logger) error {
		s, err := adoptSink(w)
		if err != nil {
			return err
		}
		return l.setSink(s)
	}
}

// Timer annotates each header with the time elapsed since now.
func Timer() Option {
	return func(l *Logger) error {
		l.origin = timeNow()
		l.flags |= FlagTimer
		return nil
	}
}

// TimerAt annotates each header with the time elapsed since origin.
func TimerAt(origin time.Time) Option {
	return func(l *Logger) error {
		l.origin = origin
		l.flags |= FlagTimer
		return nil
	}
}
