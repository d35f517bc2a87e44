package shell

import (
	"fmt"
	"os"
	"path/filepath"

	"src.hostline.sh/pkg/env"
	"src.hostline.sh/pkg/fsutil"
	"src.hostline.sh/pkg/prog"
	"src.hostline.sh/pkg/settings"
)

// ResolvePaths returns p with empty fields replaced by the default locations.
// The directory of the database is created if it doesn't exist.
func ResolvePaths(p prog.Paths) (prog.Paths, error) {
	if p.Settings == "" {
		path, err := settings.DefaultPath()
		if err != nil {
			return p, err
		}
		p.Settings = path
	}
	if p.DB == "" {
		path, err := dbPath()
		if err != nil {
			return p, err
		}
		p.DB = path
	}
	err := os.MkdirAll(filepath.Dir(p.DB), 0700)
	if err != nil {
		return p, err
	}
	return p, nil
}

// Returns $HOSTLINE_DB if set, otherwise db.bolt in the data directory of
// hostline.
func dbPath() (string, error) {
	if p := os.Getenv(env.HOSTLINE_DB); p != "" {
		return p, nil
	}
	dir, err := dataHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hostline", "db.bolt"), nil
}

func dataHome() (string, error) {
	if dir := os.Getenv(env.XDG_DATA_HOME); dir != "" {
		return dir, nil
	}
	return defaultDataHome()
}

func homeDataHome() (string, error) {
	home, err := fsutil.GetHome("")
	if err != nil {
		return "", fmt.Errorf("cannot find data directory: %w", err)
	}
	return filepath.Join(home, ".local", "share"), nil
}
