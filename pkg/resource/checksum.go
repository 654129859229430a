package resource

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/glorpus-work/artfetch/internal/logger"
	"github.com/glorpus-work/artfetch/pkg/model"
	"github.com/glorpus-work/artfetch/pkg/transport"
)

// ChecksumExt is the conventional suffix of checksum side-files.
const ChecksumExt = ".sha1"

// checksumBodyLimit bounds how much of a checksum side-file is read; a hex
// digest plus a filename fits comfortably.
const checksumBodyLimit = 1024

// CleanChecksum canonicalizes the content of a checksum side-file to a bare
// hex digest. Leading/trailing whitespace is dropped, and anything after the
// leading hex run is stripped: some servers append the artifact filename
// ("abc123  b.jar").
func CleanChecksum(body string) string {
	s := strings.TrimSpace(body)
	for i, r := range s {
		if !isHexDigit(r) {
			return s[:i]
		}
	}
	return s
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}

// matchCached fetches the remote checksum side-file and compares it against
// the candidates in input order, returning a cache-backed resource for the
// first exact match. Every failure mode is a cache miss, never an error: the
// caller falls through to a full remote fetch.
func (a *Accessor) matchCached(ctx context.Context, source string, candidates []model.Candidate) *CachedResource {
	checksumURL := source + ChecksumExt

	sum := a.downloadChecksum(ctx, checksumURL)
	if sum == "" {
		logger.Info("Checksum unavailable", logger.Fields{"url": checksumURL})
		return nil
	}

	for _, candidate := range candidates {
		if candidate.SHA1 == sum {
			logger.Info("Checksum matched cached copy", logger.Fields{"url": checksumURL, "path": candidate.Path})
			return NewCachedResource(source, candidate)
		}
	}
	logger.Info("Checksum did not match any cached copy", logger.Fields{"url": checksumURL})
	return nil
}

// downloadChecksum retrieves and canonicalizes a checksum side-file,
// returning "" when it is unreachable or unusable. The connection is always
// released.
func (a *Accessor) downloadChecksum(ctx context.Context, checksumURL string) string {
	resp, err := a.transport.Do(ctx, transport.Request{Method: http.MethodGet, URL: checksumURL})
	if err != nil {
		logger.Warnf("Checksum missing at %s due to: %v", checksumURL, err)
		return ""
	}
	defer func() { _ = resp.Body.Close() }()

	if !wasSuccessful(resp.StatusCode) {
		if resp.StatusCode != http.StatusNotFound {
			logger.Infof("Request for checksum at %s failed: %s", checksumURL, resp.Status)
		}
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, checksumBodyLimit))
	if err != nil {
		logger.Warnf("Checksum unreadable at %s due to: %v", checksumURL, err)
		return ""
	}
	return a.cleanChecksum(string(body))
}
