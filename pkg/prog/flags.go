package prog

import "flag"

// FlagSet wraps a [flag.FlagSet] and provides methods to register flags shared
// by multiple subprograms on demand.
type FlagSet struct {
	*flag.FlagSet
	paths     *Paths
	clipboard *string
	json      *bool
}

// Paths keeps the locations of the files hostline reads and writes. Empty
// values mean the default locations.
type Paths struct {
	Settings, DB string
}

// Paths returns a pointer to the paths set from the -settings and -db flags,
// registering the flags if they haven't been registered.
func (fs *FlagSet) Paths() *Paths {
	if fs.paths == nil {
		var p Paths
		fs.StringVar(&p.Settings, "settings", "",
			"Path to the settings file")
		fs.StringVar(&p.DB, "db", "",
			"Path to the database file keeping the clip history")
		fs.paths = &p
	}
	return fs.paths
}

// Clipboard returns a pointer to the value of the -clipboard flag, registering
// the flag if it hasn't been registered. An empty value means the clipboard
// named in the settings file.
func (fs *FlagSet) Clipboard() *string {
	if fs.clipboard == nil {
		var clipboard string
		fs.StringVar(&clipboard, "clipboard", "",
			"Clipboard to use, one of system, store and memory; overrides the settings file")
		fs.clipboard = &clipboard
	}
	return fs.clipboard
}

// JSON returns a pointer to the value of the -json flag, registering the flag
// if it hasn't been registered.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false,
			"Show the output from -buildinfo or -version in JSON")
		fs.json = &json
	}
	return fs.json
}
