//go:build darwin || dragonfly || freebsd || netbsd || openbsd || linux || solaris

package eunix

import (
	"testing"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
)

func TestMakeRaw(t *testing.T) {
	ptyFile, ttyFile, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptyFile.Close()
	defer ttyFile.Close()
	fd := int(ttyFile.Fd())

	restore, err := MakeRaw(fd)
	if err != nil {
		t.Fatalf("MakeRaw: %v", err)
	}
	raw, err := unix.IoctlGetTermios(fd, getAttrIOCTL)
	if err != nil {
		t.Fatalf("get termios: %v", err)
	}
	if raw.Lflag&(unix.ECHO|unix.ICANON|unix.ISIG) != 0 {
		t.Errorf("echo, canonical mode or signals still on after MakeRaw")
	}

	if err := restore(); err != nil {
		t.Fatalf("restore: %v", err)
	}
	cooked, err := unix.IoctlGetTermios(fd, getAttrIOCTL)
	if err != nil {
		t.Fatalf("get termios: %v", err)
	}
	if cooked.Lflag&unix.ICANON == 0 {
		t.Errorf("canonical mode not restored")
	}
}

func TestMakeRaw_NotATerminal(t *testing.T) {
	r, w, err := pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer unix.Close(r)
	defer unix.Close(w)
	if _, err := MakeRaw(r); err == nil {
		t.Errorf("MakeRaw(pipe) returns nil error")
	}
}

func pipe() (r, w int, err error) {
	var fds [2]int
	err = unix.Pipe(fds[:])
	return fds[0], fds[1], err
}
