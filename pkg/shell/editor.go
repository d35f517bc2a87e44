package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"src.hostline.sh/pkg/fsutil"
	"src.hostline.sh/pkg/strutil"
)

// This type is the interface that the line editor has to satisfy. It is needed
// so that the interaction loop works both with and without a terminal.
type editor interface {
	ReadLine() (string, error)
}

// An editor for input that is not a terminal. Each line of input is taken
// as-is.
type minEditor struct {
	in  *bufio.Reader
	out io.Writer
}

func newMinEditor(in, out *os.File) *minEditor {
	return &minEditor{bufio.NewReader(in), out}
}

func (ed *minEditor) ReadLine() (string, error) {
	fmt.Fprintf(ed.out, "%s> ", fsutil.Prompt())
	line, err := ed.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strutil.ChopLineEnding(line), err
}
