// Package shell is the entry point for the terminal interface of hostline.
package shell

import (
	"fmt"
	"os"

	"src.hostline.sh/pkg/logutil"
	"src.hostline.sh/pkg/prog"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the interactive subprogram.
type Program struct {
	paths     *prog.Paths
	clipboard *string
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	p.paths = fs.Paths()
	p.clipboard = fs.Clipboard()
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("arguments are not supported")
	}
	rt, err := InitRuntime(fds[2], *p.paths, *p.clipboard)
	if err != nil {
		return err
	}
	defer func() {
		err := rt.Close()
		if err != nil {
			fmt.Fprintln(fds[2], "warning: failed to close database:", err)
		}
	}()
	return Interact(fds, rt)
}
