//go:build darwin || dragonfly || freebsd || netbsd || openbsd || linux || solaris

package cli

import (
	"os"

	"src.hostline.sh/pkg/sys/eunix"
)

func setupTerminal(in, _ *os.File) (func() error, error) {
	return eunix.MakeRaw(int(in.Fd()))
}
