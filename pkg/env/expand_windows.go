//go:build windows

package env

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func expand(s string) (string, error) {
	src, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return "", err
	}
	buf := make([]uint16, len(s)+1)
	for {
		n, err := windows.ExpandEnvironmentStrings(src, &buf[0], uint32(len(buf)))
		if err != nil || n == 0 {
			return "", fmt.Errorf("%w: %v", ErrNotExpanded, err)
		}
		if int(n) <= len(buf) {
			return windows.UTF16ToString(buf[:n]), nil
		}
		buf = make([]uint16, n)
	}
}
