package store

import (
	"encoding/binary"

	bolt "go.etcd.io/bbolt"
	. "src.hostline.sh/pkg/store/storedefs"
)

// MaxClips is the number of clips kept in the history. Older clips are
// deleted as new ones are added.
const MaxClips = 100

func init() {
	initDB["initialize clip history table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketClip))
		return err
	}
}

// NextClipSeq returns the next sequence number of the clip history.
func (s *dbStore) NextClipSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		seq = tx.Bucket([]byte(bucketClip)).Sequence() + 1
		return nil
	})
	return int(seq), err
}

// AddClip adds a new clip to the clip history, and drops the oldest clips if
// the history holds more than MaxClips.
func (s *dbStore) AddClip(text string) (int, error) {
	s.wg.Add(1)
	defer s.wg.Done()
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketClip))
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		if err := b.Put(marshalSeq(seq), []byte(text)); err != nil {
			return err
		}
		return trimClips(b)
	})
	return int(seq), err
}

func trimClips(b *bolt.Bucket) error {
	var keys [][]byte
	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		keys = append(keys, append([]byte(nil), k...))
	}
	for i := 0; i < len(keys)-MaxClips; i++ {
		if err := b.Delete(keys[i]); err != nil {
			return err
		}
	}
	return nil
}

// DelClip deletes a clip with the given sequence number.
func (s *dbStore) DelClip(seq int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketClip)).Delete(marshalSeq(uint64(seq)))
	})
}

// Clip queries the clip with the given sequence number.
func (s *dbStore) Clip(seq int) (string, error) {
	var text string
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketClip)).Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoClip
		}
		text = string(v)
		return nil
	})
	return text, err
}

// LastClip returns the most recently added clip.
func (s *dbStore) LastClip() (Clip, error) {
	var clip Clip
	err := s.db.View(func(tx *bolt.Tx) error {
		k, v := tx.Bucket([]byte(bucketClip)).Cursor().Last()
		if k == nil {
			return ErrNoClip
		}
		clip = Clip{Text: string(v), Seq: int(unmarshalSeq(k))}
		return nil
	})
	return clip, err
}

// Clips returns all clips within the specified range of sequence numbers.
func (s *dbStore) Clips(from, upto int) ([]Clip, error) {
	var clips []Clip
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketClip)).Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			clips = append(clips, Clip{Text: string(v), Seq: int(unmarshalSeq(k))})
		}
		return nil
	})
	return clips, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
