package hostedit

// Calls f between BeginUndoGroup and EndUndoGroup, so that the mutations f
// makes are undone as one step. The group is closed even if f panics.
func withUndoGroup(buf undoGrouper, f func()) {
	buf.BeginUndoGroup()
	defer buf.EndUndoGroup()
	f()
}

// Replaces [from, to) with text as one undoable edit, leaving the cursor after
// the inserted text.
func replaceRange(buf LineBuffer, from, to int, text string) {
	withUndoGroup(buf, func() {
		buf.Remove(from, to)
		buf.SetCursor(from)
		buf.Insert(text)
	})
}

// Replaces the whole line with text as one undoable edit.
func replaceLine(buf LineBuffer, text string) {
	withUndoGroup(buf, func() {
		buf.Remove(0, len(buf.Text()))
		buf.Insert(text)
	})
}
