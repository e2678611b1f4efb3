package logger

import (
	"errors"
	"io"
	"os"
)

// DefaultFilePath is the log file opened by FileDefault, relative to the
// working directory.
const DefaultFilePath = "forestry.log"

// sink is the destination of plain-text copies of log entries. Files the
// logger opened or duplicated are owned and closed by it; other writers are
// only written to.
type sink struct {
	w    io.Writer
	file *os.File
	name string
}

// openSink creates or truncates the file at path.
func openSink(path string) (*sink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, newSinkError("open", path, err)
	}
	return &sink{w: f, file: f, name: path}, nil
}

// adoptSink takes over w as the log destination. An *os.File is duplicated so
// the caller may close its own handle independently.
func adoptSink(w io.Writer) (*sink, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	f, ok := w.(*os.File)
	if !ok {
		return &sink{w: w}, nil
	}
	if f == nil {
		return nil, ErrNilWriter
	}
	dup, err := dupFile(f)
	if errors.Is(err, errors.ErrUnsupported) {
		return &sink{w: f, name: f.Name()}, nil
	}
	if err != nil {
		return nil, newSinkError("dup", f.Name(), err)
	}
	return &sink{w: dup, file: dup, name: f.Name()}, nil
}

func (s *sink) write(line string) error {
	if _, err := io.WriteString(s.w, line); err != nil {
		return newSinkError("write", s.name, err)
	}
	return nil
}

// close flushes and releases an owned file. Adopted writers are left open.
func (s *sink) close() error {
	if s.file == nil {
		return nil
	}
	// Sync fails with EINVAL on pipes and terminals.
	_ = s.file.Sync()
	if err := s.file.Close(); err != nil {
		return newSinkError("close", s.name, err)
	}
	return nil
}
