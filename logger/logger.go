package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Notices printed by the logger about itself.
const (
	overflowNotice = "Log index overflowed; log index may be inaccurate."
)

// Dependency injection points for testing outputs.
var (
	outStderr io.Writer = os.Stderr
	timeNow             = time.Now
)

// Logger prints indexed, severity-tagged lines to standard error and
// optionally mirrors plain copies to a log file.
//
// The zero value is not usable; create loggers with New. All methods are
// safe for concurrent use, and index order follows the order in which calls
// acquire the logger.
type Logger struct {
	mu sync.Mutex

	index   uint16
	flags   Flags
	console io.Writer
	sink    *sink
	origin  time.Time

	// sinkWarned latches the missing log file warning.
	sinkWarned bool
}

// New returns a logger with index 0 and default formatting.
func New() *Logger {
	return &Logger{console: outStderr}
}

// Configure applies opts in order and returns l for chaining. It stops at the
// first option that fails; options applied before it stay in effect.
func (l *Logger) Configure(opts ...Option) (*Logger, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return l, err
		}
	}
	return l, nil
}

// Close flushes and closes a log file owned by the logger. Calling it again,
// or on a logger without a file, is a no-op.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.sink == nil {
		return nil
	}
	err := l.sink.close()
	l.sink = nil
	return err
}

// Index returns the index the next entry will carry.
func (l *Logger) Index() uint16 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index
}

// Flags returns the current option mask.
func (l *Logger) Flags() Flags {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.flags
}

// setSink replaces the log file and turns file output on. Must be called with
// l.mu held.
func (l *Logger) setSink(s *sink) error {
	var err error
	if l.sink != nil {
		err = l.sink.close()
	}
	l.sink = s
	l.sinkWarned = false
	l.flags |= FlagFile
	return err
}

// Log writes msg at the given level. The returned error is non-nil only when
// the log file could not be written; console output is best effort.
func (l *Logger) Log(level Level, msg string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.emit(level, msg)
}

// emit writes one entry, advances the index and prints any notices the entry
// caused. Must be called with l.mu held.
func (l *Logger) emit(level Level, msg string) error {
	missing, err := l.write(level, msg, !l.flags.Has(FlagFileOnly))
	l.index++

	errs := []error{err}
	if l.index == 0 {
		errs = append(errs, l.notice(overflowNotice, !l.flags.Has(FlagFileOnly)))
	}
	if missing && !l.sinkWarned {
		l.sinkWarned = true
		errs = append(errs, l.notice(ErrNoSink.Error()+"; entries are dropped", true))
	}
	return errors.Join(errs...)
}

// notice prints a warning about the logger itself. Notices take an index
// like any entry but never trigger further overflow notices.
func (l *Logger) notice(msg string, console bool) error {
	_, err := l.write(WarnLevel, msg, console)
	l.index++
	return err
}

// write renders the entry for the console and, when file output is on, a
// plain copy for the log file. It reports whether file output was requested
// with no file configured.
func (l *Logger) write(level Level, msg string, console bool) (bool, error) {
	var elapsed time.Duration
	if l.flags.Has(FlagTimer) {
		if l.origin.IsZero() {
			l.origin = timeNow()
		}
		elapsed = timeNow().Sub(l.origin)
	}

	if console {
		line := formatLine(level, l.index, l.flags, elapsed, msg)
		_, _ = io.WriteString(l.console, line)
	}

	if l.flags&(FlagFile|FlagFileOnly) == 0 {
		return false, nil
	}
	if l.sink == nil {
		return true, nil
	}
	return false, l.sink.write(formatLine(level, l.index, l.flags|FlagsPlain, elapsed, msg))
}

// --- Leveled logging methods ---

// Debug logs a debug message.
func (l *Logger) Debug(msg string) error {
	return l.Log(DebugLevel, msg)
}

// Info logs an informational message.
//
//	l := logger.New()
//	l.Info("info") // [0000:*] info
func (l *Logger) Info(msg string) error {
	return l.Log(InfoLevel, msg)
}

// Warn logs a warning.
func (l *Logger) Warn(msg string) error {
	return l.Log(WarnLevel, msg)
}

// Error logs an error message with a bold body.
func (l *Logger) Error(msg string) error {
	return l.Log(ErrorLevel, msg)
}

// Success logs a success message with a bold body.
func (l *Logger) Success(msg string) error {
	return l.Log(SuccessLevel, msg)
}

// Critical logs a critical message with a bold body.
func (l *Logger) Critical(msg string) error {
	return l.Log(CriticalLevel, msg)
}

// --- Formatted logging methods (fmt.Sprintf style) ---

// Debugf logs a debug message formatted with fmt.Sprintf.
func (l *Logger) Debugf(format string, v ...any) error {
	return l.Log(DebugLevel, fmt.Sprintf(format, v...))
}

// Infof logs an informational message formatted with fmt.Sprintf.
func (l *Logger) Infof(format string, v ...any) error {
	return l.Log(InfoLevel, fmt.Sprintf(format, v...))
}

// Warnf logs a warning formatted with fmt.Sprintf.
func (l *Logger) Warnf(format string, v ...any) error {
	return l.Log(WarnLevel, fmt.Sprintf(format, v...))
}

// Errorf logs an error message formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, v ...any) error {
	return l.Log(ErrorLevel, fmt.Sprintf(format, v...))
}

// Successf logs a success message formatted with fmt.Sprintf.
func (l *Logger) Successf(format string, v ...any) error {
	return l.Log(SuccessLevel, fmt.Sprintf(format, v...))
}

// Criticalf logs a critical message formatted with fmt.Sprintf.
func (l *Logger) Criticalf(format string, v ...any) error {
	return l.Log(CriticalLevel, fmt.Sprintf(format, v...))
}
