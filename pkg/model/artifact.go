// Package model provides data structures for representing artifacts, resource
// requests and cached artifact copies.
package model

import (
	"fmt"
	"path"
)

// ArtifactID identifies a named, versioned artifact within a repository.
// It correlates a resource request with locally cached copies.
type ArtifactID struct {
	Group      string `json:"group,omitempty"`
	Name       string `json:"name"`
	Version    string `json:"version"`
	Classifier string `json:"classifier,omitempty"`
	Extension  string `json:"extension,omitempty"`
}

// String returns a human-readable coordinate like "group:name:version".
func (id ArtifactID) String() string {
	s := id.Name + ":" + id.Version
	if id.Group != "" {
		s = id.Group + ":" + s
	}
	if id.Classifier != "" {
		s += ":" + id.Classifier
	}
	return s
}

// Path returns a stable relative filesystem path for the artifact, used by
// the cache store to group stored copies.
func (id ArtifactID) Path() string {
	group := id.Group
	if group == "" {
		group = "_"
	}
	p := path.Join(group, id.Name, id.Version)
	if id.Classifier != "" {
		p = path.Join(p, id.Classifier)
	}
	return p
}

// IsZero reports whether the identity is absent. Requests without an identity
// cannot be matched against the cache.
func (id ArtifactID) IsZero() bool {
	return id.Name == "" && id.Version == ""
}

// Request describes one resource lookup against a remote repository.
type Request struct {
	// SourceURL is the absolute URL of the artifact or metadata file.
	SourceURL string
	// Artifact correlates the request with cache candidates; the zero value
	// disables cache short-circuiting.
	Artifact ArtifactID
	// ForDownload selects GET semantics; false issues a HEAD existence check.
	ForDownload bool
}

// Candidate is a locally stored artifact copy with a known checksum, offered
// to the resolver to avoid a redundant download. Immutable for the duration
// of a lookup.
type Candidate struct {
	// SHA1 is the hex digest of the stored content.
	SHA1 string
	// Path points at the stored artifact bytes.
	Path string
	// Size is the stored content length in bytes.
	Size int64
}

// Validate checks that the candidate carries enough information to be matched.
func (c Candidate) Validate() error {
	if c.SHA1 == "" {
		return fmt.Errorf("candidate has no checksum")
	}
	if c.Path == "" {
		return fmt.Errorf("candidate has no stored path")
	}
	return nil
}
