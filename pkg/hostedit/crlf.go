package hostedit

import (
	"fmt"
	"strconv"
)

// PasteCRLF is the policy for newline characters in pasted text.
type PasteCRLF int

// Possible values of PasteCRLF.
const (
	// Pasted text is inserted as is.
	PasteCRLFUnchanged PasteCRLF = iota
	// CR and LF characters are removed.
	PasteCRLFDelete
	// Each run of CR and LF characters becomes a single space.
	PasteCRLFSpace

	// DefaultPasteCRLF is the policy in effect when none is configured.
	DefaultPasteCRLF = PasteCRLFDelete
)

var pasteCRLFNames = []string{"unchanged", "delete", "space"}

// PasteCRLFNames returns the names of all policies, ordered by value.
func PasteCRLFNames() []string {
	return append([]string(nil), pasteCRLFNames...)
}

func (p PasteCRLF) String() string {
	if 0 <= p && int(p) < len(pasteCRLFNames) {
		return pasteCRLFNames[p]
	}
	return strconv.Itoa(int(p))
}

// ParsePasteCRLF parses a policy from either its name or its numeric value.
func ParsePasteCRLF(s string) (PasteCRLF, error) {
	for i, name := range pasteCRLFNames {
		if s == name {
			return PasteCRLF(i), nil
		}
	}
	if i, err := strconv.Atoi(s); err == nil && 0 <= i && i < len(pasteCRLFNames) {
		return PasteCRLF(i), nil
	}
	return 0, fmt.Errorf("bad paste_crlf value %q, must be one of %v", s, pasteCRLFNames)
}

// StripCRLF rewrites newline characters in b according to the policy, in
// place, and returns the rewritten prefix of b. The result is never longer
// than b. Policies other than PasteCRLFDelete and PasteCRLFSpace leave b
// unchanged.
func StripCRLF(b []byte, policy PasteCRLF) []byte {
	if policy != PasteCRLFDelete && policy != PasteCRLFSpace {
		return b
	}
	w := 0
	prevWasCRLF := false
	for _, c := range b {
		switch {
		case c != '\n' && c != '\r':
			prevWasCRLF = false
			b[w] = c
			w++
		case policy == PasteCRLFSpace && !prevWasCRLF:
			prevWasCRLF = true
			b[w] = ' '
			w++
		}
	}
	return b[:w]
}

// StripCRLFString is like StripCRLF, but works on strings.
func StripCRLFString(s string, policy PasteCRLF) string {
	if policy != PasteCRLFDelete && policy != PasteCRLFSpace {
		return s
	}
	return string(StripCRLF([]byte(s), policy))
}
