// Package clipboard provides text clipboards: the one of the OS, one kept in
// memory, and one persisted in the store.
package clipboard

import (
	"errors"

	"src.hostline.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[clipboard] ")

// Errors returned by clipboards.
var (
	ErrEmpty       = errors.New("clipboard is empty")
	ErrUnavailable = errors.New("clipboard is unavailable")
)

// Clipboard holds text.
type Clipboard interface {
	Text() (string, error)
	SetText(text string) error
}

// Memory is a Clipboard that keeps its text in memory. The zero value is an
// empty clipboard ready to use.
type Memory struct {
	text string
	set  bool
}

// Text returns the text most recently set, or ErrEmpty.
func (m *Memory) Text() (string, error) {
	if !m.set {
		return "", ErrEmpty
	}
	return m.text, nil
}

// SetText sets the text of the clipboard.
func (m *Memory) SetText(text string) error {
	m.text, m.set = text, true
	return nil
}

// Fallback returns a Clipboard that uses primary, and secondary when primary
// fails.
func Fallback(primary, secondary Clipboard) Clipboard {
	return fallback{primary, secondary}
}

type fallback struct{ primary, secondary Clipboard }

func (f fallback) Text() (string, error) {
	text, err := f.primary.Text()
	if err == nil {
		return text, nil
	}
	logger.Println("primary clipboard:", err)
	return f.secondary.Text()
}

func (f fallback) SetText(text string) error {
	err := f.primary.SetText(text)
	if err == nil {
		return nil
	}
	logger.Println("primary clipboard:", err)
	return f.secondary.SetText(text)
}
