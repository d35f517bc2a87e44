//go:build !unix && !windows

package clipboard

func systemText() (string, error) { return "", ErrUnavailable }
func setSystemText(text string) error { return ErrUnavailable }
