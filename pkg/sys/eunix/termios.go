//go:build darwin || dragonfly || freebsd || netbsd || openbsd || linux || solaris

// Package eunix provides terminal utilities for UNIX.
package eunix

import "golang.org/x/sys/unix"

// MakeRaw puts the terminal referred to by fd into a mode where each keystroke
// is delivered as soon as it is typed, without echo and without the terminal
// turning ^C and ^Z into signals. Output processing is left on, so that "\n"
// still moves to the start of the next line.
//
// It returns a function that restores the previous mode.
func MakeRaw(fd int) (restore func() error, err error) {
	old, err := unix.IoctlGetTermios(fd, getAttrIOCTL)
	if err != nil {
		return nil, err
	}
	raw := *old
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	err = unix.IoctlSetTermios(fd, setAttrNowIOCTL, &raw)
	if err != nil {
		return nil, err
	}
	return func() error {
		return unix.IoctlSetTermios(fd, setAttrNowIOCTL, old)
	}, nil
}
