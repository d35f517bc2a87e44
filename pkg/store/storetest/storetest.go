// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.hostline.sh/pkg/store/storedefs"
)

var (
	clips     = []string{"echo foo", "C:\\Users\\me\\", "multi\nline"}
	startSeq  = 1
	endSeq    = startSeq + len(clips)
	emptyClip = storedefs.Clip{}
)

// TestClips tests the clip history functionality of a Store.
func TestClips(t *testing.T, st storedefs.Store) {
	t.Helper()

	if _, err := st.LastClip(); !errors.Is(err, storedefs.ErrNoClip) {
		t.Errorf("LastClip() on empty store -> %v, want ErrNoClip", err)
	}

	for i, text := range clips {
		wantSeq := startSeq + i
		seq, err := st.NextClipSeq()
		if seq != wantSeq || err != nil {
			t.Errorf("NextClipSeq() -> (%d, %v), want (%d, nil)", seq, err, wantSeq)
		}
		seq, err = st.AddClip(text)
		if seq != wantSeq || err != nil {
			t.Errorf("AddClip(%q) -> (%d, %v), want (%d, nil)", text, seq, err, wantSeq)
		}
	}

	for i, wantText := range clips {
		seq := startSeq + i
		text, err := st.Clip(seq)
		if text != wantText || err != nil {
			t.Errorf("Clip(%d) -> (%q, %v), want (%q, nil)", seq, text, err, wantText)
		}
	}

	last, err := st.LastClip()
	wantLast := storedefs.Clip{Text: clips[len(clips)-1], Seq: endSeq - 1}
	if last != wantLast || err != nil {
		t.Errorf("LastClip() -> (%v, %v), want (%v, nil)", last, err, wantLast)
	}

	all, err := st.Clips(startSeq, endSeq)
	var wantAll []storedefs.Clip
	for i, text := range clips {
		wantAll = append(wantAll, storedefs.Clip{Text: text, Seq: startSeq + i})
	}
	if diff := cmp.Diff(wantAll, all); diff != "" || err != nil {
		t.Errorf("Clips() error %v, diff (-want +got):\n%s", err, diff)
	}

	if err := st.DelClip(endSeq - 1); err != nil {
		t.Errorf("DelClip -> %v", err)
	}
	if _, err := st.Clip(endSeq - 1); !errors.Is(err, storedefs.ErrNoClip) {
		t.Errorf("Clip of deleted clip -> %v, want ErrNoClip", err)
	}
	last, _ = st.LastClip()
	if last == emptyClip || last.Seq != endSeq-2 {
		t.Errorf("LastClip() after deletion -> %v, want seq %d", last, endSeq-2)
	}
}
