//go:build !windows

package shell

var defaultDataHome = homeDataHome
