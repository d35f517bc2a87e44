package shell

import (
	"os"
	"path/filepath"
	"testing"

	"src.hostline.sh/pkg/env"
	"src.hostline.sh/pkg/prog"
	"src.hostline.sh/pkg/testutil"
)

func TestResolvePaths_Defaults(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.Unsetenv(t, env.HOSTLINE_DB)
	testutil.Unsetenv(t, env.HOSTLINE_CONFIG)
	testutil.Setenv(t, env.XDG_DATA_HOME, filepath.Join(dir, "data"))
	testutil.Setenv(t, env.XDG_CONFIG_HOME, filepath.Join(dir, "config"))

	p, err := ResolvePaths(prog.Paths{})
	if err != nil {
		t.Fatal(err)
	}
	want := prog.Paths{
		Settings: filepath.Join(dir, "config", "hostline", "settings.yaml"),
		DB:       filepath.Join(dir, "data", "hostline", "db.bolt"),
	}
	if p != want {
		t.Errorf("got %v, want %v", p, want)
	}
	stat, err := os.Stat(filepath.Dir(p.DB))
	if err != nil || !stat.IsDir() {
		t.Errorf("data dir not created: %v", err)
	}
}

func TestResolvePaths_EnvOverrides(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.Setenv(t, env.HOSTLINE_DB, filepath.Join(dir, "x", "my.db"))
	testutil.Setenv(t, env.HOSTLINE_CONFIG, filepath.Join(dir, "my.yaml"))

	p, err := ResolvePaths(prog.Paths{})
	if err != nil {
		t.Fatal(err)
	}
	want := prog.Paths{
		Settings: filepath.Join(dir, "my.yaml"),
		DB:       filepath.Join(dir, "x", "my.db"),
	}
	if p != want {
		t.Errorf("got %v, want %v", p, want)
	}
}

func TestResolvePaths_FlagsWin(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.Setenv(t, env.HOSTLINE_DB, filepath.Join(dir, "env.db"))
	given := prog.Paths{Settings: "s.yaml", DB: filepath.Join(dir, "flag.db")}

	p, err := ResolvePaths(given)
	if err != nil {
		t.Fatal(err)
	}
	if p != given {
		t.Errorf("got %v, want %v", p, given)
	}
}
