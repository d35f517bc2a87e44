// Package fsutil contains utilities for working with paths and the working
// directory.
package fsutil

import (
	"errors"
	"os"
	"os/user"
	"runtime"
	"strings"

	"src.hostline.sh/pkg/env"
)

// Getwd returns the path of the working directory.
func Getwd() (string, error) {
	return os.Getwd()
}

// Prompt returns the working directory in a format suitable as the prompt, or
// "?" if it cannot be determined.
func Prompt() string {
	pwd, err := Getwd()
	if err != nil {
		return "?"
	}
	return TildeAbbr(pwd)
}

// TildeAbbr abbreviates the user's home directory to ~.
func TildeAbbr(path string) string {
	home, err := GetHome("")
	if home == "" || home == "/" {
		// If home is "" or "/", do not abbreviate because (1) it is likely a
		// problem with the environment and (2) it will make the path actually
		// longer.
		return path
	}
	if err == nil {
		if path == home {
			return "~"
		} else if strings.HasPrefix(path, home+"/") || (runtime.GOOS == "windows" && strings.HasPrefix(path, home+"\\")) {
			return "~" + path[len(home):]
		}
	}
	return path
}

var errEmptyHome = errors.New("home directory is empty")

// GetHome finds the home directory of a specified user. When given an empty
// string, it finds the home directory of the current user.
func GetHome(uname string) (string, error) {
	if uname == "" {
		if home := os.Getenv(env.HOME); home != "" {
			return strings.TrimRight(home, "/"), nil
		}
		if runtime.GOOS == "windows" {
			if home := os.Getenv(env.USERPROFILE); home != "" {
				return home, nil
			}
		}
	}

	var u *user.User
	var err error
	if uname == "" {
		u, err = user.Current()
	} else {
		u, err = user.Lookup(uname)
	}
	if err != nil {
		return "", err
	}
	if u.HomeDir == "" {
		return "", errEmptyHome
	}
	return strings.TrimRight(u.HomeDir, "/"), nil
}
