package cli

import "os"

// SetupTerminal puts the terminal into the mode App expects: keystrokes are
// delivered one by one without echo, and Ctrl-C and Ctrl-Z arrive as bytes
// instead of signals. It returns a function that restores the previous mode.
func SetupTerminal(in, out *os.File) (restore func() error, err error) {
	return setupTerminal(in, out)
}
