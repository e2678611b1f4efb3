//go:build !unix && !windows

package logger

import (
	"errors"
	"os"
)

func dupFile(*os.File) (*os.File, error) {
	return nil, errors.ErrUnsupported
}
