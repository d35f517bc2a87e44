// Package cli implements an interactive line editor on top of a raw terminal.
//
// The editor handles plain typing, cursor movement and undo itself, and hands
// every chord bound through hostedit.Backend.BindInput to the Backend.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"src.hostline.sh/pkg/fsutil"
	"src.hostline.sh/pkg/hostedit"
	"src.hostline.sh/pkg/linebuf"
	"src.hostline.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[cli] ")

// AppSpec specifies the configuration of an App.
type AppSpec struct {
	// Input from the terminal, which should be in raw mode.
	In io.Reader
	// Output to the terminal. Defaults to io.Discard.
	Out io.Writer
	// Handles bound chords. Defaults to a Backend with default collaborators.
	Backend *hostedit.Backend
	// Returns the prompt; called at the start of every line. Defaults to the
	// tilde-abbreviated working directory followed by "> ".
	Prompt func() string
}

// App reads lines from a terminal.
type App struct {
	AppSpec
	rd     *bufio.Reader
	keymap *Keymap
	buf    *linebuf.Buffer
}

// NewApp creates a new App from the given spec, and registers the bindings of
// its Backend.
func NewApp(spec AppSpec) *App {
	if spec.Out == nil {
		spec.Out = io.Discard
	}
	if spec.Backend == nil {
		spec.Backend = hostedit.NewBackend(hostedit.BackendSpec{})
	}
	if spec.Prompt == nil {
		spec.Prompt = func() string { return fsutil.Prompt() + "> " }
	}
	keymap := NewKeymap()
	spec.Backend.BindInput(keymap)
	return &App{spec, bufio.NewReader(spec.In), keymap, linebuf.New("", 0)}
}

// Keymap returns the keymap of the App.
func (a *App) Keymap() *Keymap { return a.keymap }

// Key sequences handled by the App itself rather than the Backend.
type editKey int

const (
	keyLeft editKey = iota
	keyRight
	keyHome
	keyEnd
)

var editKeys = map[string]editKey{
	"\x1b[D": keyLeft, "\x1b[C": keyRight,
	"\x1b[H": keyHome, "\x1b[F": keyEnd,
	"\x1bOD": keyLeft, "\x1bOC": keyRight,
	"\x1bOH": keyHome, "\x1bOF": keyEnd,
}

// Control bytes with built-in meanings.
const (
	ctrlD     = 0x04
	backspace = 0x08
	ctrlZ     = 0x1a
	del       = 0x7f
)

type eventKind int

const (
	eventNone eventKind = iota
	eventRune
	eventAction
	eventEdit
)

type event struct {
	kind   eventKind
	r      rune
	action hostedit.ActionID
	edit   editKey
}

// ReadLine reads one line. It returns the line when Enter is pressed or an
// action signals that the line is done, and io.EOF when Ctrl-D is pressed on
// an empty line or the input is exhausted.
func (a *App) ReadLine() (string, error) {
	a.buf.Reset()
	prompt := a.Prompt()
	ctx := hostedit.Context{Buffer: a.buf, Terminal: a.Out}
	a.Backend.BeginLine(prompt, ctx)
	defer a.Backend.EndLine()

	for {
		a.redraw(prompt)
		ev, err := a.readEvent()
		if err != nil {
			io.WriteString(a.Out, "\n")
			return "", err
		}
		switch ev.kind {
		case eventAction:
			var result hostedit.Result
			err := a.Backend.OnInput(ev.action, &result, ctx)
			if err != nil {
				logger.Println(err)
			} else if result.Signal() == hostedit.SignalDone {
				return a.commit(prompt), nil
			}
		case eventEdit:
			a.move(ev.edit)
		case eventRune:
			switch ev.r {
			case '\r', '\n':
				return a.commit(prompt), nil
			case backspace, del:
				a.buf.DeleteBackward()
			case ctrlZ:
				a.buf.Undo()
			case ctrlD:
				if a.buf.Text() == "" {
					io.WriteString(a.Out, "\n")
					return "", io.EOF
				}
			default:
				if unicode.IsPrint(ev.r) {
					a.buf.Insert(string(ev.r))
				}
			}
		}
	}
}

func (a *App) commit(prompt string) string {
	a.redraw(prompt)
	io.WriteString(a.Out, "\n")
	return a.buf.Text()
}

func (a *App) move(k editKey) {
	text, dot := a.buf.Text(), a.buf.Cursor()
	switch k {
	case keyLeft:
		_, size := utf8.DecodeLastRuneInString(text[:dot])
		a.buf.SetCursor(dot - size)
	case keyRight:
		_, size := utf8.DecodeRuneInString(text[dot:])
		a.buf.SetCursor(dot + size)
	case keyHome:
		a.buf.SetCursor(0)
	case keyEnd:
		a.buf.SetCursor(len(text))
	}
}

// Rewrites the current terminal line with the prompt and the buffer, and
// places the terminal cursor at the buffer's cursor.
func (a *App) redraw(prompt string) {
	text := a.buf.Text()
	col := uniseg.StringWidth(prompt + text[:a.buf.Cursor()])
	fmt.Fprintf(a.Out, "\r\033[K%s%s\r", prompt, text)
	if col > 0 {
		fmt.Fprintf(a.Out, "\033[%dC", col)
	}
}

// Reads a rune or a bound key sequence. When a sequence is bound and also a
// prefix of a longer one, the longer one wins if the following byte continues
// it.
func (a *App) readEvent() (event, error) {
	r, _, err := a.rd.ReadRune()
	if err != nil {
		return event{}, err
	}
	if r >= utf8.RuneSelf || !a.continues(string(r), false) {
		return event{kind: eventRune, r: r}, nil
	}
	seq := string(r)
	for {
		ev, matched := a.lookup(seq)
		if matched && !a.continues(seq, true) {
			return ev, nil
		}
		b, err := a.rd.ReadByte()
		if err != nil {
			return event{}, err
		}
		next := seq + string([]byte{b})
		if !a.continues(next, false) {
			if matched {
				a.rd.UnreadByte()
				return ev, nil
			}
			logger.Printf("unbound key sequence %q", next)
			return event{kind: eventNone}, nil
		}
		seq = next
	}
}

func (a *App) lookup(seq string) (event, bool) {
	if id, ok := a.keymap.Lookup(seq); ok {
		return event{kind: eventAction, action: id}, true
	}
	if k, ok := editKeys[seq]; ok {
		return event{kind: eventEdit, edit: k}, true
	}
	return event{}, false
}

// Reports whether some known sequence starts with prefix. If strict is true,
// the sequence must also be longer than prefix.
func (a *App) continues(prefix string, strict bool) bool {
	check := func(seq string) bool {
		return strings.HasPrefix(seq, prefix) && (!strict || len(seq) > len(prefix))
	}
	for seq := range a.keymap.groups[DefaultGroup] {
		if check(seq) {
			return true
		}
	}
	for seq := range editKeys {
		if check(seq) {
			return true
		}
	}
	return false
}
