// internal/storage/dir.go
package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "NodeZero"

// DefaultDir is the per-user data directory for save files.
func DefaultDir() string {
	return defaultDir(runtime.GOOS, os.Getenv)
}

func defaultDir(goos string, getenv func(string) string) string {
	if goos == "windows" {
		if appData := getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appDirName)
		}
		return "."
	}
	home := getenv("HOME")
	if home == "" {
		if h, err := os.UserHomeDir(); err == nil {
			home = h
		}
	}
	if home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share", appDirName)
}
