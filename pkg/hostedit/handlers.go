package hostedit

import (
	"io"

	"src.hostline.sh/pkg/fsutil"
)

// Capacities for the working directory and for expanded words. Results that
// would not fit are refused rather than truncated.
const (
	cwdBufferSize    = 270
	expandBufferSize = 1024
)

const interruptNotice = "\n^C\n"

func (b *Backend) paste(buf inserter) {
	text, err := b.Clipboard.Text()
	if err != nil {
		logger.Println("paste:", err)
		return
	}
	text = StripCRLFString(text, b.PasteCRLF())
	if text == "" {
		return
	}
	buf.Insert(text)
}

func interrupt(result *Result, ctx Context) {
	buf := ctx.Buffer
	withUndoGroup(buf, func() { buf.Remove(0, len(buf.Text())) })
	if ctx.Terminal != nil {
		io.WriteString(ctx.Terminal, interruptNotice)
	}
	result.Redraw()
}

func (b *Backend) copyLine(buf lineReader) {
	if err := b.Clipboard.SetText(buf.Text()); err != nil {
		logger.Println("copy line:", err)
	}
}

func (b *Backend) copyCwd() {
	wd, err := b.Getwd()
	if err != nil {
		logger.Println("copy cwd:", err)
		return
	}
	if len(wd) >= cwdBufferSize {
		logger.Printf("copy cwd: %d bytes is too long", len(wd))
		return
	}
	if err := b.Clipboard.SetText(fsutil.CleanDir(wd)); err != nil {
		logger.Println("copy cwd:", err)
	}
}

func upDirectory(result *Result, buf LineBuffer) {
	replaceLine(buf, " cd ..")
	result.Done()
}

func (b *Backend) expandEnvVar(buf LineBuffer) {
	text := buf.Text()
	span := WordBounds(text, buf.Cursor())
	word := text[span.Left:span.Right]
	if len(word) >= expandBufferSize {
		return
	}

	expanded, err := b.ExpandEnv(word)
	if err != nil {
		logger.Printf("expand %q: %v", word, err)
		return
	}
	if expanded == "" || len(expanded) >= expandBufferSize {
		return
	}
	replaceRange(buf, span.Left, span.Right, expanded)
}

func insertParentRef(buf inserter) {
	if cursor := buf.Cursor(); cursor > 0 {
		last := buf.Text()[cursor-1]
		if last != ' ' && !fsutil.IsSeparator(last) {
			buf.Insert(`\`)
		}
	}
	buf.Insert(`..\`)
}
