package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"src.hostline.sh/pkg/clipboard"
	"src.hostline.sh/pkg/hostedit"
)

type appFixture struct {
	app *App
	out *bytes.Buffer
	cb  *clipboard.Memory
}

func setup(input string) *appFixture {
	out := &bytes.Buffer{}
	cb := &clipboard.Memory{}
	backend := hostedit.NewBackend(hostedit.BackendSpec{
		Clipboard: cb,
		Getwd:     func() (string, error) { return "/home/user", nil },
	})
	app := NewApp(AppSpec{
		In: strings.NewReader(input), Out: out, Backend: backend,
		Prompt: func() string { return "> " },
	})
	return &appFixture{app, out, cb}
}

func (f *appFixture) readLines(t *testing.T) []string {
	t.Helper()
	var lines []string
	for {
		line, err := f.app.ReadLine()
		if err == io.EOF {
			return lines
		}
		if err != nil {
			t.Fatalf("ReadLine: %v", err)
		}
		lines = append(lines, line)
	}
}

var readLineTests = []struct {
	name  string
	input string
	want  []string
}{
	{"plain typing", "echo hi\r", []string{"echo hi"}},
	{"newline also commits", "a\nb\n", []string{"a", "b"}},
	{"backspace", "abd\x7fc\r", []string{"abc"}},
	{"ctrl-h is backspace", "abd\x08c\r", []string{"abc"}},
	{"unicode input", "héllo 世界\r", []string{"héllo 世界"}},
	{"undo last insertion", "ab\x1a\r", []string{"a"}},
	{"cursor movement", "ac\x1b[Db\x1b[Hx\x1b[Fy\r", []string{"xabcy"}},
	{"application mode cursor keys", "ac\x1bODb\r", []string{"abc"}},
	{"interrupt empties the line", "junk\x03ok\r", []string{"ok"}},
	{"go-up-directory commits", "ls\x1bO5", []string{" cd .."}},
	{"insert-parent-ref after space", "cd \x1ba\r", []string{`cd ..\`}},
	{"insert-parent-ref after word", "cd x\x1ba\r", []string{`cd x\..\`}},
	{"unbound escape sequence is dropped", "a\x1bxb\r", []string{"ab"}},
	{"ctrl-d on non-empty line is ignored", "a\x04\r", []string{"a"}},
	{"ctrl-d on empty line ends input", "a\r\x04b\r", []string{"a"}},
	{"end of input", "a\rb", []string{"a"}},
}

func TestReadLine(t *testing.T) {
	for _, test := range readLineTests {
		t.Run(test.name, func(t *testing.T) {
			f := setup(test.input)
			got := f.readLines(t)
			if strings.Join(got, "\n") != strings.Join(test.want, "\n") {
				t.Errorf("got lines %q, want %q", got, test.want)
			}
		})
	}
}

func TestReadLine_CopyAndPaste(t *testing.T) {
	f := setup("echo one\x1b\x03\x03\x16 two\r")
	got := f.readLines(t)
	if len(got) != 1 || got[0] != "echo one two" {
		t.Errorf("got %q, want [\"echo one two\"]", got)
	}
	if text, _ := f.cb.Text(); text != "echo one" {
		t.Errorf("clipboard has %q, want \"echo one\"", text)
	}
}

func TestReadLine_PasteStripsCRLF(t *testing.T) {
	f := setup("\x16\r")
	f.cb.SetText("a\r\nb")
	got := f.readLines(t)
	if len(got) != 1 || got[0] != "ab" {
		t.Errorf("got %q, want [\"ab\"]", got)
	}
}

func TestReadLine_CopyCwd(t *testing.T) {
	f := setup("\x1bC\r")
	f.readLines(t)
	if text, _ := f.cb.Text(); text != "/home/user/" {
		t.Errorf("clipboard has %q, want \"/home/user/\"", text)
	}
}

func TestReadLine_InterruptWritesMarker(t *testing.T) {
	f := setup("x\x03\r")
	f.readLines(t)
	if !strings.Contains(f.out.String(), "\n^C\n") {
		t.Errorf("output %q has no ^C marker", f.out.String())
	}
}

func TestReadLine_UndoInterrupt(t *testing.T) {
	f := setup("abc\x03\x1a\r")
	got := f.readLines(t)
	if len(got) != 1 || got[0] != "abc" {
		t.Errorf("got %q, want [\"abc\"]", got)
	}
}

func TestRedraw_PlacesCursorByDisplayWidth(t *testing.T) {
	f := setup("世界\x1b[D\r")
	f.readLines(t)
	// After moving left over 界, the cursor is after "> 世", which is 4
	// columns wide.
	if !strings.Contains(f.out.String(), "\r\033[K> 世界\r\033[4C") {
		t.Errorf("output %q does not place cursor at column 4", f.out.String())
	}
}
