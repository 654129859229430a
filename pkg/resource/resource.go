// Package resource resolves remote artifact URLs into a uniform resource
// abstraction. A lookup yields exactly one of three outcomes: the resource is
// missing on the server, a locally cached copy provably matches the remote
// content, or the remote content is available for streaming.
package resource

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/glorpus-work/artfetch/pkg/errors"
	"github.com/glorpus-work/artfetch/pkg/fsutil"
	"github.com/glorpus-work/artfetch/pkg/model"
)

// Resource is a handle over the outcome of a lookup. Create once, read many,
// then release via Close after the content has been streamed or the request
// abandoned.
type Resource interface {
	// URL returns the origin URL the resource was requested from.
	URL() string
	// Exists reports whether the resource is present, locally or remotely.
	Exists() bool
	// ContentLength returns the content length in bytes, TotalUnknown when
	// the server did not report one.
	ContentLength() int64
	// WriteTo materializes the content at dest, updating progress per chunk.
	WriteTo(dest string, progress *Progress) error
	// Close releases any underlying connection. Safe to call more than once.
	Close() error
}

// MissingResource is the outcome of an explicit remote 404.
type MissingResource struct {
	url string
}

// NewMissingResource creates the missing outcome for the given origin URL.
func NewMissingResource(url string) *MissingResource {
	return &MissingResource{url: url}
}

// URL returns the origin URL.
func (r *MissingResource) URL() string { return r.url }

// Exists returns false.
func (r *MissingResource) Exists() bool { return false }

// ContentLength returns zero; a missing resource has no content.
func (r *MissingResource) ContentLength() int64 { return 0 }

// WriteTo always fails: asking a missing resource to stream is caller misuse.
func (r *MissingResource) WriteTo(string, *Progress) error {
	return errors.Wrapf(errors.ErrResourceMissing, "%s", r.url)
}

// Close is a no-op.
func (r *MissingResource) Close() error { return nil }

// CachedResource is the outcome of a checksum match against a locally stored
// artifact copy. Writing it moves no bytes over the network.
type CachedResource struct {
	url       string
	candidate model.Candidate
}

// NewCachedResource creates a cache-backed resource for the given origin URL.
func NewCachedResource(url string, candidate model.Candidate) *CachedResource {
	return &CachedResource{url: url, candidate: candidate}
}

// URL returns the origin URL the cached copy stands in for.
func (r *CachedResource) URL() string { return r.url }

// Exists returns true.
func (r *CachedResource) Exists() bool { return true }

// ContentLength returns the stored copy's recorded size.
func (r *CachedResource) ContentLength() int64 { return r.candidate.Size }

// Candidate returns the matched cache candidate.
func (r *CachedResource) Candidate() model.Candidate { return r.candidate }

// WriteTo copies the stored bytes to dest.
func (r *CachedResource) WriteTo(dest string, progress *Progress) error {
	src, err := os.Open(r.candidate.Path)
	if err != nil {
		return errors.Wrapf(err, "failed to open cached copy %s", r.candidate.Path)
	}
	defer func() { _ = src.Close() }()
	return writeStream(src, dest, progress)
}

// Close is a no-op; cached resources hold no connection.
func (r *CachedResource) Close() error { return nil }

// RemoteResource is the outcome of a successful GET or HEAD. It owns the open
// HTTP response until written or closed.
type RemoteResource struct {
	url      string
	response *http.Response
	released bool
}

// NewRemoteResource wraps an open HTTP response for the given origin URL.
func NewRemoteResource(url string, response *http.Response) *RemoteResource {
	return &RemoteResource{url: url, response: response}
}

// URL returns the origin URL.
func (r *RemoteResource) URL() string { return r.url }

// Exists returns true.
func (r *RemoteResource) Exists() bool { return true }

// ContentLength returns the length reported by the server, TotalUnknown when
// absent.
func (r *RemoteResource) ContentLength() int64 {
	if r.response.ContentLength < 0 {
		return TotalUnknown
	}
	return r.response.ContentLength
}

// WriteTo streams the response body to dest. The underlying connection is
// released exactly once, even on a mid-stream failure.
func (r *RemoteResource) WriteTo(dest string, progress *Progress) error {
	defer func() { _ = r.Close() }()
	return writeStream(r.response.Body, dest, progress)
}

// Close releases the underlying connection.
func (r *RemoteResource) Close() error {
	if r.released {
		return nil
	}
	r.released = true
	return r.response.Body.Close()
}

// writeStream copies src to a temp file next to dest and moves it into place,
// so a failed transfer never leaves a truncated destination behind.
func writeStream(src io.Reader, dest string, progress *Progress) error {
	if err := fsutil.EnsureFileDir(dest); err != nil {
		return errors.Wrap(err, "could not create destination directory")
	}
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".artfetch-*.part")
	if err != nil {
		return errors.Wrap(err, "could not create temp file")
	}
	tmpPath := tmp.Name()

	_, err = io.Copy(tmp, io.TeeReader(src, &progressWriter{progress: progress}))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, "could not write %s", dest)
	}
	if err := fsutil.Move(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "could not finalize file")
	}
	return nil
}
