package cache

import (
	"os"
	"path/filepath"

	"github.com/glorpus-work/artfetch/pkg/errors"
)

// Info describes the store's current disk usage.
type Info struct {
	Directory string
	TotalSize int64
	FileCount int
}

// GetInfo returns information about the store's disk usage.
func (s *Store) GetInfo() (*Info, error) {
	size, files, err := dirSizeAndFiles(s.directory)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to inspect cache")
	}
	return &Info{Directory: s.directory, TotalSize: size, FileCount: files}, nil
}

// Clean removes all stored artifact copies and returns the bytes freed.
func (s *Store) Clean() (int64, error) {
	size, _, err := dirSizeAndFiles(s.directory)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, errors.Wrap(errors.ErrCacheClean, err.Error())
	}

	entries, err := os.ReadDir(s.directory)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCacheClean, err.Error())
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(s.directory, entry.Name())); err != nil {
			return 0, errors.Wrap(errors.ErrCacheClean, err.Error())
		}
	}
	return size, nil
}

func dirSizeAndFiles(dir string) (int64, int, error) {
	var size int64
	var files int

	if _, err := os.Stat(dir); err != nil {
		return 0, 0, err
	}

	err := filepath.Walk(dir, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
			files++
		}
		return nil
	})
	return size, files, err
}
