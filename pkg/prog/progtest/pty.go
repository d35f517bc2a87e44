//go:build unix

package progtest

import (
	"os"

	"github.com/creack/pty"
	"src.hostline.sh/pkg/testutil"
)

// Pty opens a pseudo terminal pair. The tty end can be used as the stdin of an
// interactive program, and the pty end as the keyboard and screen the test
// drives. Both ends are closed when the test finishes.
func Pty(c testutil.Cleanuper) (ptyFile, ttyFile *os.File) {
	ptyFile, ttyFile, err := pty.Open()
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() {
		ttyFile.Close()
		ptyFile.Close()
	})
	return ptyFile, ttyFile
}
