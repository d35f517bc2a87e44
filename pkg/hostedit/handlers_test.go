package hostedit

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

type bufferTest struct {
	name       string
	text       string
	cursor     int
	wantText   string
	wantCursor int
	wantSignal Signal
	wantGroups int
}

func (test bufferTest) run(t *testing.T, f *fixture, id ActionID) {
	t.Helper()
	buf := newBuffer(test.text, test.cursor)
	signal := f.invoke(id, buf)
	if buf.Text() != test.wantText || buf.Cursor() != test.wantCursor {
		t.Errorf("buffer is (%q, %d), want (%q, %d)",
			buf.Text(), buf.Cursor(), test.wantText, test.wantCursor)
	}
	if signal != test.wantSignal {
		t.Errorf("signal is %v, want %v", signal, test.wantSignal)
	}
	if buf.begins != test.wantGroups || buf.ends != test.wantGroups {
		t.Errorf("undo groups begun %d times and ended %d times, want %d",
			buf.begins, buf.ends, test.wantGroups)
	}
}

func TestPaste(t *testing.T) {
	tests := []struct {
		bufferTest
		clip   string
		err    error
		policy PasteCRLF
	}{
		{bufferTest: bufferTest{text: "echo ", cursor: 5, wantText: "echo ab", wantCursor: 7},
			clip: "a\r\nb", policy: PasteCRLFDelete},
		{bufferTest: bufferTest{text: "echo ", cursor: 5, wantText: "echo a b", wantCursor: 8},
			clip: "a\r\nb", policy: PasteCRLFSpace},
		{bufferTest: bufferTest{text: "echo ", cursor: 5, wantText: "echo a\r\nb", wantCursor: 9},
			clip: "a\r\nb", policy: PasteCRLFUnchanged},
		{bufferTest: bufferTest{text: "xy", cursor: 1, wantText: "xaby", wantCursor: 3},
			clip: "ab", policy: PasteCRLFDelete},
		{bufferTest: bufferTest{text: "xy", cursor: 1, wantText: "xy", wantCursor: 1},
			err: errClipboard},
		{bufferTest: bufferTest{text: "xy", cursor: 1, wantText: "xy", wantCursor: 1},
			clip: "\r\n", policy: PasteCRLFDelete},
	}
	for _, test := range tests {
		f := setup()
		f.clipboard.text, f.clipboard.err = test.clip, test.err
		f.policy = test.policy
		test.run(t, f, ActionPaste)
	}
}

func TestPaste_ReadsPolicyOnEachCall(t *testing.T) {
	f := setup()
	f.clipboard.text = "a\nb"
	buf := newBuffer("", 0)

	f.invoke(ActionPaste, buf)
	f.policy = PasteCRLFSpace
	f.invoke(ActionPaste, buf)

	if want := "aba b"; buf.Text() != want {
		t.Errorf("buffer is %q, want %q", buf.Text(), want)
	}
}

func TestInterrupt(t *testing.T) {
	f := setup()
	bufferTest{text: "some command", cursor: 4,
		wantText: "", wantCursor: 0, wantSignal: SignalRedraw, wantGroups: 1,
	}.run(t, f, ActionInterrupt)
	if got := f.terminal.String(); got != "\n^C\n" {
		t.Errorf("terminal got %q, want %q", got, "\n^C\n")
	}
}

func TestInterrupt_NilTerminal(t *testing.T) {
	f := setup()
	buf := newBuffer("x", 1)
	var result Result
	f.backend.OnInput(ActionInterrupt, &result, Context{Buffer: buf})
	if buf.Text() != "" || result.Signal() != SignalRedraw {
		t.Errorf("got (%q, %v), want empty buffer and redraw", buf.Text(), result.Signal())
	}
}

func TestCopyLine(t *testing.T) {
	f := setup()
	bufferTest{text: "a\tb c", cursor: 2, wantText: "a\tb c", wantCursor: 2}.
		run(t, f, ActionCopyLine)
	if len(f.clipboard.sets) != 1 || f.clipboard.text != "a\tb c" {
		t.Errorf("clipboard set to %q, want exactly [%q]", f.clipboard.sets, "a\tb c")
	}
}

func TestCopyLine_ClipboardFailureIsSilent(t *testing.T) {
	f := setup()
	f.clipboard.err = errClipboard
	bufferTest{text: "abc", cursor: 0, wantText: "abc", wantCursor: 0}.
		run(t, f, ActionCopyLine)
}

func TestCopyCwd(t *testing.T) {
	f := setup()
	f.wd = filepath.FromSlash("/home/user//src/.")
	bufferTest{text: "ls", cursor: 2, wantText: "ls", wantCursor: 2}.
		run(t, f, ActionCopyCwd)
	if want := filepath.FromSlash("/home/user/src/"); f.clipboard.text != want {
		t.Errorf("clipboard is %q, want %q", f.clipboard.text, want)
	}
}

func TestCopyCwd_NoOps(t *testing.T) {
	tests := []struct {
		name  string
		wd    string
		wdErr error
	}{
		{"getwd fails", "", errors.New("no cwd")},
		{"path too long", "/" + strings.Repeat("d", cwdBufferSize), nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := setup()
			f.wd, f.wdErr = test.wd, test.wdErr
			f.invoke(ActionCopyCwd, newBuffer("", 0))
			if len(f.clipboard.sets) != 0 {
				t.Errorf("clipboard set to %q, want untouched", f.clipboard.sets)
			}
		})
	}
}

func TestUpDirectory(t *testing.T) {
	for _, text := range []string{"", "anything", " cd .."} {
		f := setup()
		bufferTest{text: text, cursor: len(text) / 2,
			wantText: " cd ..", wantCursor: 6, wantSignal: SignalDone, wantGroups: 1,
		}.run(t, f, ActionUpDirectory)
	}
}

func TestUpDirectory_UndoneAsOneStep(t *testing.T) {
	f := setup()
	buf := newBuffer("git status", 3)
	f.invoke(ActionUpDirectory, buf)
	buf.Undo()
	if buf.Text() != "git status" || buf.Cursor() != 3 {
		t.Errorf("after undo buffer is (%q, %d)", buf.Text(), buf.Cursor())
	}
}

func TestExpandEnvVar(t *testing.T) {
	tests := []bufferTest{
		{name: "unquoted word", text: "echo %PATH% rest", cursor: 7,
			wantText: `echo C:\bin rest`, wantCursor: 11, wantGroups: 1},
		{name: "quoted word with spaces", text: `cd "%HOME%\my dir"`, cursor: 6,
			wantText: `cd "C:\Users\me\my dir"`, wantCursor: 22, wantGroups: 1},
		{name: "cursor at start", text: "%PATH%", cursor: 0,
			wantText: `C:\bin`, wantCursor: 6, wantGroups: 1},
		{name: "nothing to expand", text: "echo plain", cursor: 7,
			wantText: "echo plain", wantCursor: 10, wantGroups: 1},
		{name: "empty word", text: "a  b", cursor: 2,
			wantText: "a  b", wantCursor: 2, wantGroups: 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := setup()
			f.env = map[string]string{"PATH": `C:\bin`, "HOME": `C:\Users\me`}
			test.run(t, f, ActionExpandEnvVar)
		})
	}
}

func TestExpandEnvVar_FailureLeavesBufferUntouched(t *testing.T) {
	f := setup()
	f.expandErr = errors.New("expansion failed")
	bufferTest{text: "echo %PATH% rest", cursor: 7,
		wantText: "echo %PATH% rest", wantCursor: 7, wantGroups: 0,
	}.run(t, f, ActionExpandEnvVar)
}

func TestExpandEnvVar_OverflowIsRefused(t *testing.T) {
	f := setup()
	f.env = map[string]string{"BIG": strings.Repeat("x", expandBufferSize)}
	bufferTest{text: "echo %BIG%", cursor: 6,
		wantText: "echo %BIG%", wantCursor: 6, wantGroups: 0,
	}.run(t, f, ActionExpandEnvVar)
}

func TestExpandEnvVar_UndoneAsOneStep(t *testing.T) {
	f := setup()
	f.env = map[string]string{"PATH": `C:\bin`}
	buf := newBuffer("echo %PATH% rest", 7)
	f.invoke(ActionExpandEnvVar, buf)
	buf.Undo()
	if buf.Text() != "echo %PATH% rest" || buf.Cursor() != 7 {
		t.Errorf("after undo buffer is (%q, %d)", buf.Text(), buf.Cursor())
	}
}

func TestInsertParentRef(t *testing.T) {
	tests := []bufferTest{
		{name: "at start", text: "", cursor: 0,
			wantText: `..\`, wantCursor: 3},
		{name: "at start of non-empty line", text: "x", cursor: 0,
			wantText: `..\x`, wantCursor: 3},
		{name: "after space", text: "cd ", cursor: 3,
			wantText: `cd ..\`, wantCursor: 6},
		{name: "after word", text: "cd foo", cursor: 6,
			wantText: `cd foo\..\`, wantCursor: 10},
		{name: "after backslash", text: `cd foo\`, cursor: 7,
			wantText: `cd foo\..\`, wantCursor: 10},
		{name: "after slash", text: "cd foo/", cursor: 7,
			wantText: `cd foo/..\`, wantCursor: 10},
		{name: "in the middle", text: "cd a b", cursor: 4,
			wantText: `cd a\..\ b`, wantCursor: 8},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.run(t, setup(), ActionInsertParentRef)
		})
	}
}
