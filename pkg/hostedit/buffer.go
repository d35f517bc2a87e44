package hostedit

import "io"

// LineBuffer is the line being edited. Positions are byte offsets into Text.
type LineBuffer interface {
	lineReader
	// Remove removes the text in the half-open range [from, to).
	Remove(from, to int)
	SetCursor(pos int)
	// Insert inserts text at the cursor and moves the cursor past it.
	Insert(text string)
	undoGrouper
}

type lineReader interface {
	Text() string
	Cursor() int
}

type inserter interface {
	lineReader
	Insert(text string)
}

// Undo groups must not nest; each BeginUndoGroup is followed by exactly one
// EndUndoGroup.
type undoGrouper interface {
	BeginUndoGroup()
	EndUndoGroup()
}

// Context carries what a handler may act on during one invocation.
type Context struct {
	Buffer LineBuffer
	// Where literal notices are written. May be nil.
	Terminal io.Writer
}

// Signal is what the host should do after an action has been handled.
type Signal uint8

// Possible values of Signal.
const (
	NoSignal Signal = iota
	// The line should be redrawn.
	SignalRedraw
	// The line should be treated as submitted.
	SignalDone
)

func (s Signal) String() string {
	switch s {
	case SignalRedraw:
		return "redraw"
	case SignalDone:
		return "done"
	default:
		return ""
	}
}

// Result receives the signal of one action invocation. The zero value carries
// NoSignal.
type Result struct {
	signal Signal
}

// Redraw requests the line to be redrawn.
func (r *Result) Redraw() { r.signal = SignalRedraw }

// Done marks the line as submitted.
func (r *Result) Done() { r.signal = SignalDone }

// Signal returns the signal set by the handler.
func (r *Result) Signal() Signal { return r.signal }

// Clipboard is a text clipboard. Failures are reported as errors and absorbed
// by the handlers.
type Clipboard interface {
	Text() (string, error)
	SetText(text string) error
}

// Binder registers key chords for actions.
type Binder interface {
	// DefaultGroup returns the group bindings are registered in.
	DefaultGroup() int
	Bind(group int, chord string, id ActionID)
}
