//go:build !(darwin || dragonfly || freebsd || netbsd || openbsd || linux || solaris || windows)

package cli

import (
	"errors"
	"os"
)

var errNoRawMode = errors.New("raw terminal mode not supported on this platform")

func setupTerminal(in, out *os.File) (func() error, error) {
	return nil, errNoRawMode
}
