// Package cache provides the local artifact store. Stored copies are grouped
// by artifact identity and keyed by their SHA-1 digest, so the resolver can
// offer them as cache candidates for checksum matching.
package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/glorpus-work/artfetch/pkg/errors"
	"github.com/glorpus-work/artfetch/pkg/fsutil"
	"github.com/glorpus-work/artfetch/pkg/model"
)

// Store is a file-backed artifact store rooted at one directory.
type Store struct {
	directory string
}

// NewStore creates a store rooted at directory.
func NewStore(directory string) (*Store, error) {
	if directory == "" {
		return nil, errors.ErrCacheDirectory
	}
	if err := fsutil.EnsureDir(directory); err != nil {
		return nil, errors.Wrap(err, "failed to create cache directory")
	}
	return &Store{directory: directory}, nil
}

// NewDefaultStore creates a store in the user's artifact cache directory.
func NewDefaultStore() (*Store, error) {
	dir, err := fsutil.GetArtifactCacheDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve artifact cache directory")
	}
	return NewStore(dir)
}

// Directory returns the store's root directory.
func (s *Store) Directory() string { return s.directory }

// Add copies the file at sourcePath into the store under the given artifact
// identity. When sha1sum is empty the digest is computed from the file
// content. Returns the stored candidate.
func (s *Store) Add(sourcePath string, id model.ArtifactID, sha1sum string) (model.Candidate, error) {
	if id.IsZero() {
		return model.Candidate{}, fmt.Errorf("artifact identity is required to store a copy")
	}

	if sha1sum == "" {
		var err error
		sha1sum, err = hashFile(sourcePath)
		if err != nil {
			return model.Candidate{}, err
		}
	}

	destDir := filepath.Join(s.directory, filepath.FromSlash(id.Path()), sha1sum)
	dest := filepath.Join(destDir, filepath.Base(sourcePath))
	if err := fsutil.EnsureDir(destDir); err != nil {
		return model.Candidate{}, errors.Wrap(err, "failed to create store directory")
	}
	if err := fsutil.Copy(sourcePath, dest); err != nil {
		return model.Candidate{}, errors.Wrap(err, "failed to store artifact copy")
	}

	info, err := os.Stat(dest)
	if err != nil {
		return model.Candidate{}, errors.Wrap(err, "failed to stat stored copy")
	}
	return model.Candidate{SHA1: sha1sum, Path: dest, Size: info.Size()}, nil
}

// Candidates returns the stored copies matching the artifact identity, with
// their recorded checksums. A missing identity or an empty store yields nil.
func (s *Store) Candidates(id model.ArtifactID) ([]model.Candidate, error) {
	if id.IsZero() {
		return nil, nil
	}

	artifactDir := filepath.Join(s.directory, filepath.FromSlash(id.Path()))
	checksums, err := os.ReadDir(artifactDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read store directory %s", artifactDir)
	}

	var candidates []model.Candidate
	for _, checksumEntry := range checksums {
		if !checksumEntry.IsDir() {
			continue
		}
		sum := checksumEntry.Name()
		files, err := os.ReadDir(filepath.Join(artifactDir, sum))
		if err != nil {
			continue
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			path := filepath.Join(artifactDir, sum, f.Name())
			info, err := f.Info()
			if err != nil {
				continue
			}
			candidates = append(candidates, model.Candidate{SHA1: sum, Path: path, Size: info.Size()})
		}
	}
	return candidates, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open %s for hashing", path)
	}
	defer func() { _ = f.Close() }()

	h := sha1.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrapf(err, "failed to hash %s", path)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
