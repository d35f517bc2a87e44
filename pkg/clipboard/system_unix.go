//go:build unix

package clipboard

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Commands for accessing the clipboard, in order of preference. The first
// one found in PATH is used.
var (
	pasteCommands = [][]string{
		{"wl-paste", "--no-newline"},
		{"xclip", "-selection", "clipboard", "-out"},
		{"xsel", "--clipboard", "--output"},
		{"pbpaste"},
	}
	copyCommands = [][]string{
		{"wl-copy"},
		{"xclip", "-selection", "clipboard", "-in"},
		{"xsel", "--clipboard", "--input"},
		{"pbcopy"},
	}
)

var lookPath = exec.LookPath

func findCommand(candidates [][]string) (*exec.Cmd, error) {
	for _, argv := range candidates {
		if path, err := lookPath(argv[0]); err == nil {
			return exec.Command(path, argv[1:]...), nil
		}
	}
	return nil, ErrUnavailable
}

func systemText() (string, error) {
	cmd, err := findCommand(pasteCommands)
	if err != nil {
		return "", err
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w: %s", cmd.Path, err, strings.TrimSpace(stderr.String()))
	}
	if len(out) == 0 {
		return "", ErrEmpty
	}
	return string(out), nil
}

func setSystemText(text string) error {
	cmd, err := findCommand(copyCommands)
	if err != nil {
		return err
	}
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", cmd.Path, err, bytes.TrimSpace(out))
	}
	return nil
}
