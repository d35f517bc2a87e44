package store

import (
	"path/filepath"

	"src.hostline.sh/pkg/must"
	"src.hostline.sh/pkg/testutil"
)

// MustTempStore returns a Store backed by a temporary file. The store is
// closed and the file removed when the test finishes.
func MustTempStore(c testutil.Cleanuper) DBStore {
	dir := testutil.TempDir(c)
	st := must.OK1(NewStore(filepath.Join(dir, "db")))
	c.Cleanup(func() { must.OK(st.Close()) })
	return st
}
