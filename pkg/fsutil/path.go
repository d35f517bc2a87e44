package fsutil

import (
	"os"
	"path/filepath"
)

// IsSeparator returns whether b separates path components. Both / and \ are
// accepted on every OS, since command lines may mix them.
func IsSeparator(b byte) bool {
	return b == '/' || b == '\\' || b == os.PathSeparator
}

// CleanDir returns the canonical form of a directory path, ending with a path
// separator.
func CleanDir(dir string) string {
	dir = filepath.Clean(dir)
	if dir != "" && !IsSeparator(dir[len(dir)-1]) {
		dir += string(filepath.Separator)
	}
	return dir
}
