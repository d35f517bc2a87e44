// Hostline is a line editor front-end for shells. It adds clipboard
// interchange, interrupting the line, directory shortcuts and expansion of
// environment variables under the cursor, either in an interactive terminal
// session or, with -rpc, as a JSON-RPC service for another editor.
package main

import (
	"os"

	"src.hostline.sh/pkg/buildinfo"
	"src.hostline.sh/pkg/prog"
	"src.hostline.sh/pkg/rpc"
	"src.hostline.sh/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&buildinfo.Program{}, &rpc.Program{}, &shell.Program{})))
}
