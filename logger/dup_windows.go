//go:build windows

package logger

import (
	"os"

	"golang.org/x/sys/windows"
)

// dupFile returns an independent handle for the file behind f.
func dupFile(f *os.File) (*os.File, error) {
	proc := windows.CurrentProcess()
	var h windows.Handle
	err := windows.DuplicateHandle(proc, windows.Handle(f.Fd()), proc, &h, 0, false, windows.DUPLICATE_SAME_ACCESS)
	if err != nil {
		return nil, err
	}
	return os.NewFile(uintptr(h), f.Name()), nil
}
