package shell

import "golang.org/x/sys/windows"

var defaultDataHome = localAppData

func localAppData() (string, error) {
	return windows.KnownFolderPath(windows.FOLDERID_LocalAppData, windows.KF_FLAG_CREATE)
}
