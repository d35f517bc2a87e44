package clipboard

// System returns the clipboard of the OS. Its methods return ErrUnavailable
// when the OS provides no usable clipboard.
func System() Clipboard { return systemClipboard{} }

type systemClipboard struct{}

func (systemClipboard) Text() (string, error) { return systemText() }
func (systemClipboard) SetText(text string) error { return setSystemText(text) }
