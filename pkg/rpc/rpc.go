// Package rpc exposes the editing actions over JSON-RPC 2.0, for front-ends
// that run in another process.
//
// Messages are framed with Content-Length headers, the same as the language
// server protocol.
package rpc

import (
	"context"
	"fmt"
	"os"

	"github.com/sourcegraph/jsonrpc2"
	"src.hostline.sh/pkg/logutil"
	"src.hostline.sh/pkg/prog"
	"src.hostline.sh/pkg/shell"
)

var logger = logutil.GetLogger("[rpc] ")

// Program is the RPC subprogram.
type Program struct {
	run       bool
	paths     *prog.Paths
	clipboard *string
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.run, "rpc", false, "serve JSON-RPC on stdin and stdout instead of editing interactively")
	p.paths = fs.Paths()
	p.clipboard = fs.Clipboard()
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	if !p.run {
		return prog.NextProgram()
	}
	rt, err := shell.InitRuntime(fds[2], *p.paths, *p.clipboard)
	if err != nil {
		return err
	}
	defer func() {
		err := rt.Close()
		if err != nil {
			fmt.Fprintln(fds[2], "warning: failed to close database:", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := newServer(rt)
	conn := jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(transport{fds[0], fds[1]}, jsonrpc2.VSCodeObjectCodec{}),
		handler(s))
	<-conn.DisconnectNotify()
	logger.Println("client disconnected")
	return nil
}

type transport struct{ in, out *os.File }

func (c transport) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c transport) Write(p []byte) (int, error) { return c.out.Write(p) }

func (c transport) Close() error {
	if err := c.in.Close(); err != nil {
		c.out.Close()
		return err
	}
	return c.out.Close()
}
