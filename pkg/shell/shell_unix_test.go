//go:build darwin || dragonfly || freebsd || netbsd || openbsd || linux || solaris

package shell

import (
	"io"
	"os"
	"testing"

	"src.hostline.sh/pkg/cli"
	"src.hostline.sh/pkg/must"
	"src.hostline.sh/pkg/prog"
	"src.hostline.sh/pkg/prog/progtest"
)

func TestShell_Interactive(t *testing.T) {
	flags := setupDirs(t)
	wd := must.OK1(os.Getwd())
	must.OK(os.Mkdir("sub", 0700))
	must.Chdir("sub")

	ptyFile, ttyFile := progtest.Pty(t)
	// Put the terminal in raw mode before typing, so that the line discipline
	// doesn't act on the control characters before Interact sets it up.
	restore := must.OK1(cli.SetupTerminal(ttyFile, ttyFile))
	defer restore()
	go io.Copy(io.Discard, ptyFile)
	r, w := must.OK2(os.Pipe())
	defer r.Close()

	// Alt-Ctrl-C copies the line, Ctrl-C interrupts it, Ctrl-V pastes it back;
	// the chord for go-up-directory then commits " cd ..", and Ctrl-D on the
	// empty line ends the session.
	ptyFile.WriteString("echo hi\x1b\x03\x03\x16\r\x1bO5\x04")

	exit := prog.Run([3]*os.File{ttyFile, w, ttyFile},
		append([]string{"hostline"}, flags...), &Program{})
	w.Close()
	if exit != 0 {
		t.Errorf("got exit %v, want 0", exit)
	}
	if out := string(must.OK1(io.ReadAll(r))); out != "echo hi\n" {
		t.Errorf("got stdout %q, want \"echo hi\\n\"", out)
	}
	if got := must.OK1(os.Getwd()); got != wd {
		t.Errorf("got working directory %q, want %q", got, wd)
	}
}
