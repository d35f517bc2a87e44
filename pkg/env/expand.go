package env

import (
	"errors"
	"os"
	"strings"
)

// ErrNotExpanded is returned when the OS fails to expand a string.
var ErrNotExpanded = errors.New("environment variables not expanded")

// Expand replaces references to environment variables in s with their
// values. References to undefined variables are kept as is.
//
// %NAME% references are recognized on every OS. On Unix, $NAME and ${NAME}
// are also recognized.
func Expand(s string) (string, error) { return expand(s) }

// Expands %NAME% references using lookup.
func expandPercent(s string, lookup func(string) (string, bool)) string {
	var sb strings.Builder
	for {
		i := strings.IndexByte(s, '%')
		if i == -1 {
			break
		}
		j := strings.IndexByte(s[i+1:], '%')
		if j == -1 {
			break
		}
		name := s[i+1 : i+1+j]
		if value, ok := lookup(name); ok && name != "" {
			sb.WriteString(s[:i])
			sb.WriteString(value)
			s = s[i+j+2:]
		} else {
			// The closing % may open the next reference.
			sb.WriteString(s[:i+1+j])
			s = s[i+1+j:]
		}
	}
	sb.WriteString(s)
	return sb.String()
}

// Expands $NAME and ${NAME} references using lookup.
func expandDollar(s string, lookup func(string) (string, bool)) string {
	var sb strings.Builder
	for {
		i := strings.IndexByte(s, '$')
		if i == -1 {
			break
		}
		sb.WriteString(s[:i])
		s = s[i:]
		name, n := dollarRef(s)
		if value, ok := lookup(name); ok && name != "" {
			sb.WriteString(value)
		} else {
			sb.WriteString(s[:n])
		}
		s = s[n:]
	}
	sb.WriteString(s)
	return sb.String()
}

// Parses the $NAME or ${NAME} reference at the start of s, and returns the
// name and the length of the reference. A $ that does not start a reference
// has an empty name and a length of 1.
func dollarRef(s string) (string, int) {
	if strings.HasPrefix(s, "${") {
		if j := strings.IndexByte(s, '}'); j != -1 {
			return s[2:j], j + 1
		}
		return "", 1
	}
	j := 1
	for j < len(s) && isNameByte(s[j]) {
		j++
	}
	return s[1:j], j
}

func isNameByte(b byte) bool {
	return b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func lookupEnv(name string) (string, bool) { return os.LookupEnv(name) }
