// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// do not need to depend on the concrete implementation.
package storedefs

import "errors"

// ErrNoClip is returned when a clip query completes with no result.
var ErrNoClip = errors.New("no matching clip")

// Store is an interface satisfied by the storage service.
type Store interface {
	NextClipSeq() (int, error)
	AddClip(text string) (int, error)
	DelClip(seq int) error
	Clip(seq int) (string, error)
	LastClip() (Clip, error)
	Clips(from, upto int) ([]Clip, error)
}

// Clip is an entry in the clip history.
type Clip struct {
	Text string
	Seq  int
}
