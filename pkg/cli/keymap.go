package cli

import (
	"errors"
	"fmt"
	"strings"

	"src.hostline.sh/pkg/hostedit"
)

// ErrBadChord is returned by ParseChord for chords that cannot be turned into
// a byte sequence.
var ErrBadChord = errors.New("bad chord")

// DefaultGroup is the binding group active while a line is edited.
const DefaultGroup = 0

// Keymap maps byte sequences read from the terminal to actions. It implements
// hostedit.Binder.
type Keymap struct {
	groups map[int]map[string]hostedit.ActionID
}

// NewKeymap creates an empty Keymap.
func NewKeymap() *Keymap {
	return &Keymap{groups: map[int]map[string]hostedit.ActionID{}}
}

// DefaultGroup returns DefaultGroup.
func (km *Keymap) DefaultGroup() int { return DefaultGroup }

// Bind binds chord to id in the given group. Chords that ParseChord rejects
// are logged and ignored; a later binding of the same chord replaces an
// earlier one.
func (km *Keymap) Bind(group int, chord string, id hostedit.ActionID) {
	seq, err := ParseChord(chord)
	if err != nil {
		logger.Printf("cannot bind %v: %v", id, err)
		return
	}
	m := km.groups[group]
	if m == nil {
		m = map[string]hostedit.ActionID{}
		km.groups[group] = m
	}
	m[seq] = id
}

// Lookup returns the action bound to seq in the default group.
func (km *Keymap) Lookup(seq string) (hostedit.ActionID, bool) {
	id, ok := km.groups[DefaultGroup][seq]
	return id, ok
}

// ParseChord converts a chord written in readline notation to the bytes a
// terminal sends for it:
//
//   - ^x and \C-x are Ctrl-x;
//   - \M-x is Alt-x, sent as ESC followed by x, and \M-C-x is Alt-Ctrl-x;
//   - \e is ESC;
//   - a backslash followed by any other byte stands for that byte, and so
//     does any byte not covered above.
func ParseChord(chord string) (string, error) {
	var sb strings.Builder
	afterMeta := false
	for i := 0; i < len(chord); {
		rest := chord[i:]
		switch {
		case strings.HasPrefix(rest, `\M-`):
			sb.WriteByte(0x1b)
			i += 3
			afterMeta = true
			continue
		case strings.HasPrefix(rest, `\C-`), afterMeta && strings.HasPrefix(rest, "C-") && len(rest) > 2:
			if rest[0] == '\\' {
				rest = rest[1:]
				i++
			}
			if len(rest) < 3 {
				return "", fmt.Errorf("%w: %q ends after Ctrl prefix", ErrBadChord, chord)
			}
			sb.WriteByte(ctrl(rest[2]))
			i += 3
		case rest[0] == '^':
			if len(rest) < 2 {
				return "", fmt.Errorf("%w: %q ends after ^", ErrBadChord, chord)
			}
			sb.WriteByte(ctrl(rest[1]))
			i += 2
		case rest[0] == '\\':
			if len(rest) < 2 {
				return "", fmt.Errorf("%w: %q ends after backslash", ErrBadChord, chord)
			}
			if rest[1] == 'e' {
				sb.WriteByte(0x1b)
			} else {
				sb.WriteByte(rest[1])
			}
			i += 2
		default:
			sb.WriteByte(rest[0])
			i++
		}
		afterMeta = false
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: empty", ErrBadChord)
	}
	return sb.String(), nil
}

// Returns the byte a terminal sends for Ctrl-b.
func ctrl(b byte) byte {
	if b == '?' {
		return 0x7f
	}
	if 'a' <= b && b <= 'z' {
		b -= 'a' - 'A'
	}
	return b & 0x1f
}
