package hostedit

import (
	"errors"
	"strings"

	"src.hostline.sh/pkg/linebuf"
)

// A LineBuffer that counts undo groups.
type recordingBuffer struct {
	*linebuf.Buffer
	begins, ends int
}

func newBuffer(text string, cursor int) *recordingBuffer {
	return &recordingBuffer{Buffer: linebuf.New(text, cursor)}
}

func (b *recordingBuffer) BeginUndoGroup() {
	b.begins++
	b.Buffer.BeginUndoGroup()
}

func (b *recordingBuffer) EndUndoGroup() {
	b.ends++
	b.Buffer.EndUndoGroup()
}

var errClipboard = errors.New("clipboard unavailable")

type fakeClipboard struct {
	text string
	err  error
	sets []string
}

func (c *fakeClipboard) Text() (string, error) { return c.text, c.err }

func (c *fakeClipboard) SetText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.sets = append(c.sets, s)
	c.text = s
	return nil
}

// A Backend whose collaborators are all fakes.
type fixture struct {
	backend   *Backend
	clipboard *fakeClipboard
	policy    PasteCRLF
	wd        string
	wdErr     error
	env       map[string]string
	expandErr error
	terminal  strings.Builder
}

func setup() *fixture {
	f := &fixture{
		clipboard: &fakeClipboard{},
		policy:    DefaultPasteCRLF,
		env:       map[string]string{},
	}
	f.backend = NewBackend(BackendSpec{
		Clipboard: f.clipboard,
		PasteCRLF: func() PasteCRLF { return f.policy },
		Getwd:     func() (string, error) { return f.wd, f.wdErr },
		ExpandEnv: f.expand,
	})
	return f
}

func (f *fixture) expand(s string) (string, error) {
	if f.expandErr != nil {
		return "", f.expandErr
	}
	for name, value := range f.env {
		s = strings.ReplaceAll(s, "%"+name+"%", value)
	}
	return s, nil
}

func (f *fixture) invoke(id ActionID, buf *recordingBuffer) Signal {
	var result Result
	err := f.backend.OnInput(id, &result, Context{Buffer: buf, Terminal: &f.terminal})
	if err != nil {
		panic(err)
	}
	return result.Signal()
}
