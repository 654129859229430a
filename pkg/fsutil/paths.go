package fsutil

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the name of the application used in paths.
	AppName = "artfetch"
)

// GetCacheDir returns the platform-specific cache directory for the application.
// On Linux: ~/.cache/artfetch/
// On macOS: ~/Library/Caches/artfetch/
// On Windows: %LOCALAPPDATA%\artfetch\
func GetCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, AppName), nil
}

// GetArtifactCacheDir returns the directory for locally stored artifact copies.
// Format: <cache_dir>/artifacts/
func GetArtifactCacheDir() (string, error) {
	cacheDir, err := GetCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "artifacts"), nil
}
