//go:build unix

package logger

import (
	"os"

	"golang.org/x/sys/unix"
)

// dupFile returns an independent descriptor for the file behind f.
func dupFile(f *os.File) (*os.File, error) {
	fd, err := unix.Dup(int(f.Fd()))
	if err != nil {
		return nil, err
	}
	unix.CloseOnExec(fd)
	return os.NewFile(uintptr(fd), f.Name()), nil
}
