package shell

import (
	"fmt"
	"io"
	"os"
	"strings"

	"src.hostline.sh/pkg/cli"
	"src.hostline.sh/pkg/errutil"
	"src.hostline.sh/pkg/fsutil"
	"src.hostline.sh/pkg/sys"
)

// Interact runs an interactive session, reading lines until the input ends or
// the exit command is entered. The editor is drawn on fds[2]; committed lines
// are echoed to fds[1].
func Interact(fds [3]*os.File, rt *Runtime) (err error) {
	var ed editor
	if sys.IsATTY(fds[0]) {
		restore, setupErr := cli.SetupTerminal(fds[0], fds[2])
		if setupErr != nil {
			fmt.Fprintln(fds[2], "Warning: cannot set up terminal:", setupErr)
			fmt.Fprintln(fds[2], "Falling back to basic line editor")
			ed = newMinEditor(fds[0], fds[2])
		} else {
			defer func() { err = errutil.Multi(err, restore()) }()
			ed = cli.NewApp(cli.AppSpec{In: fds[0], Out: fds[2], Backend: rt.Backend})
		}
	} else {
		ed = newMinEditor(fds[0], fds[2])
	}

	for {
		line, err := ed.ReadLine()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("editor error: %w", err)
		}
		logger.Printf("committed %q", line)
		if exit := runLine(fds, line); exit {
			return nil
		}
	}
}

// Runs a committed line. The builtin commands are cd and exit; any other line
// is echoed.
func runLine(fds [3]*os.File, line string) (exit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "exit":
		return true
	case "cd":
		var dir string
		switch len(fields) {
		case 1:
			home, err := fsutil.GetHome("")
			if err != nil {
				fmt.Fprintln(fds[2], "cd:", err)
				return false
			}
			dir = home
		case 2:
			dir = fields[1]
		default:
			fmt.Fprintln(fds[2], "cd: too many arguments")
			return false
		}
		err := os.Chdir(dir)
		if err != nil {
			fmt.Fprintln(fds[2], "cd:", err)
		}
	default:
		fmt.Fprintln(fds[1], line)
	}
	return false
}
