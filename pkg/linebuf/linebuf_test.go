package linebuf_test

import (
	"testing"

	"src.hostline.sh/pkg/hostedit"
	. "src.hostline.sh/pkg/linebuf"
)

var _ hostedit.LineBuffer = (*Buffer)(nil)

func testBuffer(t *testing.T, b *Buffer, wantText string, wantDot int) {
	t.Helper()
	if b.Text() != wantText || b.Cursor() != wantDot {
		t.Errorf("buffer is (%q, %d), want (%q, %d)", b.Text(), b.Cursor(), wantText, wantDot)
	}
}

func TestNew_ClampsDot(t *testing.T) {
	testBuffer(t, New("abc", 10), "abc", 3)
	testBuffer(t, New("abc", -1), "abc", 0)
}

func TestInsert(t *testing.T) {
	b := New("ac", 1)
	b.Insert("b")
	testBuffer(t, b, "abc", 2)
	b.Insert("")
	testBuffer(t, b, "abc", 2)
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name     string
		dot      int
		from, to int
		wantText string
		wantDot  int
	}{
		{"dot after range", 5, 1, 3, "ade", 3},
		{"dot inside range", 2, 1, 4, "ae", 1},
		{"dot before range", 0, 1, 3, "ade", 0},
		{"range clamped", 5, 3, 100, "abc", 3},
		{"whole line", 2, 0, 5, "", 0},
		{"empty range", 2, 3, 3, "abcde", 2},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := New("abcde", test.dot)
			b.Remove(test.from, test.to)
			testBuffer(t, b, test.wantText, test.wantDot)
		})
	}
}

func TestDeleteBackward(t *testing.T) {
	b := New("a精", 4)
	b.DeleteBackward()
	testBuffer(t, b, "a", 1)
	b.SetCursor(0)
	b.DeleteBackward()
	testBuffer(t, b, "a", 0)
}

func TestUndo_SingleEdits(t *testing.T) {
	b := New("", 0)
	b.Insert("a")
	b.Insert("b")
	b.Undo()
	testBuffer(t, b, "a", 1)
	b.Undo()
	testBuffer(t, b, "", 0)
	if b.Undo() {
		t.Errorf("Undo() -> true with empty history")
	}
}

func TestUndo_Group(t *testing.T) {
	b := New("echo %X%", 7)
	b.BeginUndoGroup()
	b.Remove(5, 8)
	b.SetCursor(5)
	b.Insert("value")
	b.EndUndoGroup()
	testBuffer(t, b, "echo value", 10)

	if !b.Undo() {
		t.Fatalf("Undo() -> false after group")
	}
	testBuffer(t, b, "echo %X%", 7)
	if b.Undo() {
		t.Errorf("group was recorded as more than one undo step")
	}
}

func TestUndo_EmptyGroupRecordsNothing(t *testing.T) {
	b := New("x", 1)
	b.BeginUndoGroup()
	b.EndUndoGroup()
	if b.Undo() {
		t.Errorf("Undo() -> true after an empty group")
	}
}

func TestUndoGroup_MisuseCausesPanic(t *testing.T) {
	mustPanic(t, "nested begin", func() {
		var b Buffer
		b.BeginUndoGroup()
		b.BeginUndoGroup()
	})
	mustPanic(t, "unmatched end", func() {
		var b Buffer
		b.EndUndoGroup()
	})
}

func TestReset(t *testing.T) {
	b := New("abc", 1)
	b.Insert("x")
	b.Reset()
	testBuffer(t, b, "", 0)
	if b.Undo() {
		t.Errorf("Undo() -> true after Reset")
	}
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: did not panic", name)
		}
	}()
	f()
}
