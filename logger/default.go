package logger

import (
	"fmt"
	"sync"
)

// global state
var (
	stdMu sync.Mutex
	std   = New()
)

// Default returns the package-level logger used by the functions below.
func Default() *Logger {
	stdMu.Lock()
	defer stdMu.Unlock()
	return std
}

// SetDefault replaces the package-level logger and returns the previous one.
// The previous logger is not closed.
func SetDefault(l *Logger) *Logger {
	stdMu.Lock()
	defer stdMu.Unlock()
	prev := std
	std = l
	return prev
}

// Configure applies opts to the package-level logger.
func Configure(opts ...Option) error {
	_, err := Default().Configure(opts...)
	return err
}

// Close closes the package-level logger's log file, if any.
// Call this function when your application shuts down to ensure logs are flushed.
func Close() error {
	return Default().Close()
}

// Debug logs a debug message on the package-level logger.
func Debug(msg string) error { return Default().Log(DebugLevel, msg) }

// Info logs an informational message on the package-level logger.
func Info(msg string) error { return Default().Log(InfoLevel, msg) }

// Warn logs a warning on the package-level logger.
func Warn(msg string) error { return Default().Log(WarnLevel, msg) }

// Error logs an error message on the package-level logger.
func Error(msg string) error { return Default().Log(ErrorLevel, msg) }

// Success logs a success message on the package-level logger.
func Success(msg string) error { return Default().Log(SuccessLevel, msg) }

// Critical logs a critical message on the package-level logger.
func Critical(msg string) error { return Default().Log(CriticalLevel, msg) }

// Debugf logs a formatted debug message on the package-level logger.
func Debugf(format string, v ...any) error {
	return Default().Log(DebugLevel, fmt.Sprintf(format, v...))
}

// Infof logs a formatted informational message on the package-level logger.
func Infof(format string, v ...any) error {
	return Default().Log(InfoLevel, fmt.Sprintf(format, v...))
}

// Warnf logs a formatted warning on the package-level logger.
func Warnf(format string, v ...any) error {
	return Default().Log(WarnLevel, fmt.Sprintf(format, v...))
}

// Errorf logs a formatted error message on the package-level logger.
func Errorf(format string, v ...any) error {
	return Default().Log(ErrorLevel, fmt.Sprintf(format, v...))
}

// Successf logs a formatted success message on the package-level logger.
func Successf(format string, v ...any) error {
	return Default().Log(SuccessLevel, fmt.Sprintf(format, v...))
}

// Criticalf logs a formatted critical message on the package-level logger.
func Criticalf(format string, v ...any) error {
	return Default().Log(CriticalLevel, fmt.Sprintf(format, v...))
}
