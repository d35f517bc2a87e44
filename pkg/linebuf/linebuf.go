// Package linebuf implements the buffer of the line being edited, with
// grouped undo.
package linebuf

import "unicode/utf8"

// Buffer holds the content of a line and the position of the cursor, as a byte
// index into the content. It records enough history to undo edits; edits made
// between BeginUndoGroup and EndUndoGroup are undone together.
//
// The zero value is an empty buffer ready to use.
type Buffer struct {
	content string
	dot     int

	history []state
	// Whether an undo group is open, and whether the state before the group
	// has been recorded.
	inGroup      bool
	groupSnapped bool
}

type state struct {
	content string
	dot     int
}

// New creates a Buffer with the given content and cursor position. The
// position is clamped to the content.
func New(content string, dot int) *Buffer {
	return &Buffer{content: content, dot: clamp(dot, len(content))}
}

// Text returns the content.
func (b *Buffer) Text() string { return b.content }

// Cursor returns the position of the cursor.
func (b *Buffer) Cursor() int { return b.dot }

// SetCursor moves the cursor, clamping it to the content.
func (b *Buffer) SetCursor(pos int) {
	b.dot = clamp(pos, len(b.content))
}

// Insert inserts text at the cursor and moves the cursor past it.
func (b *Buffer) Insert(text string) {
	if text == "" {
		return
	}
	b.snapshot()
	b.content = b.content[:b.dot] + text + b.content[b.dot:]
	b.dot += len(text)
}

// Remove removes the content in [from, to). Both ends are clamped to the
// content. A cursor inside the removed range moves to its start; a cursor
// after it moves with the text.
func (b *Buffer) Remove(from, to int) {
	from, to = clamp(from, len(b.content)), clamp(to, len(b.content))
	if from >= to {
		return
	}
	b.snapshot()
	b.content = b.content[:from] + b.content[to:]
	switch {
	case b.dot >= to:
		b.dot -= to - from
	case b.dot > from:
		b.dot = from
	}
}

// DeleteBackward removes the codepoint before the cursor.
func (b *Buffer) DeleteBackward() {
	if b.dot == 0 {
		return
	}
	_, w := utf8.DecodeLastRuneInString(b.content[:b.dot])
	b.Remove(b.dot-w, b.dot)
}

// BeginUndoGroup starts a group of edits that are undone together. It panics
// if a group is already open.
func (b *Buffer) BeginUndoGroup() {
	if b.inGroup {
		panic("linebuf: undo group already open")
	}
	b.inGroup = true
	b.groupSnapped = false
}

// EndUndoGroup ends the group started by BeginUndoGroup. It panics if no group
// is open.
func (b *Buffer) EndUndoGroup() {
	if !b.inGroup {
		panic("linebuf: no undo group open")
	}
	b.inGroup = false
}

// Undo reverts the last edit or group of edits, and reports whether there was
// anything to undo.
func (b *Buffer) Undo() bool {
	if b.inGroup || len(b.history) == 0 {
		return false
	}
	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.content, b.dot = last.content, last.dot
	return true
}

// Reset empties the buffer and forgets its history.
func (b *Buffer) Reset() {
	*b = Buffer{}
}

func (b *Buffer) snapshot() {
	if b.inGroup {
		if b.groupSnapped {
			return
		}
		b.groupSnapped = true
	}
	b.history = append(b.history, state{b.content, b.dot})
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
