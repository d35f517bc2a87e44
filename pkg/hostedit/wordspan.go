package hostedit

import "strings"

// WordSpan is the half-open range [Left, Right) of a word in a line.
type WordSpan struct {
	Left, Right int
}

// WordBounds finds the word containing or adjacent to the cursor.
//
// If an odd number of double quotes precede the cursor, the cursor is inside a
// quoted string and the word extends to the enclosing quotes; otherwise words
// are delimited by spaces. Delimiters are not part of the word. Escaped and
// nested quotes are not recognized.
func WordBounds(text string, cursor int) WordSpan {
	if cursor < 0 {
		cursor = 0
	} else if cursor > len(text) {
		cursor = len(text)
	}

	delim := byte(' ')
	if strings.Count(text[:cursor], `"`)%2 == 1 {
		delim = '"'
	}

	left := strings.LastIndexByte(text[:cursor], delim) + 1
	right := len(text)
	if i := strings.IndexByte(text[cursor:], delim); i != -1 {
		right = cursor + i
	}
	return WordSpan{left, right}
}
