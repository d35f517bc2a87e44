// Package env keeps names of environment variables with special significance
// to hostline, and expands environment variables in text.
package env

// Environment variables with special significance to hostline.
const (
	APPDATA         = "APPDATA"
	HOME            = "HOME"
	HOSTLINE_DB     = "HOSTLINE_DB"
	HOSTLINE_CONFIG = "HOSTLINE_CONFIG"
	PATH            = "PATH"
	USERPROFILE     = "USERPROFILE"
	XDG_CONFIG_HOME = "XDG_CONFIG_HOME"
	XDG_DATA_HOME   = "XDG_DATA_HOME"
)
