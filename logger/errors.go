package logger

import (
	"errors"
	"fmt"
)

// Sentinel errors that can be used with errors.Is.
var (
	// ErrNoSink describes file output being enabled with no log file
	// configured. It is reported as a warning entry, never returned.
	ErrNoSink = errors.New("file output enabled but no log file is configured")

	// ErrNilWriter is returned by FileAt when given a nil writer.
	ErrNilWriter = errors.New("log file writer is nil")

	// ErrClosed is returned by an AsyncLogger after Close.
	ErrClosed = errors.New("logger is closed")
)

// SinkError reports a failure to open, write or close the log file.
type SinkError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *SinkError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("log file %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("log file %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *SinkError) Unwrap() error {
	return e.Err
}

func newSinkError(op, path string, err error) *SinkError {
	return &SinkError{Op: op, Path: path, Err: err}
}
