package clipboard

import (
	"errors"

	"src.hostline.sh/pkg/store/storedefs"
)

// FromStore returns a Clipboard backed by the clip history of a store. Setting
// the text adds a clip; reading returns the last clip.
func FromStore(st storedefs.Store) Clipboard {
	return storeClipboard{st}
}

type storeClipboard struct{ st storedefs.Store }

func (s storeClipboard) Text() (string, error) {
	clip, err := s.st.LastClip()
	if errors.Is(err, storedefs.ErrNoClip) {
		return "", ErrEmpty
	}
	return clip.Text, err
}

func (s storeClipboard) SetText(text string) error {
	_, err := s.st.AddClip(text)
	return err
}
