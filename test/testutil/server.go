// Package testutil provides helpers shared by integration tests.
package testutil

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// RepoServer is an in-memory artifact repository for tests. It serves the
// configured files, answers .sha1 side-file requests with the computed
// digest, and records every request it receives.
type RepoServer struct {
	Server *httptest.Server
	URL    string

	mu       sync.Mutex
	files    map[string]string
	requests []string
}

// NewRepoServer starts a repository server for the given path-to-content
// map. The server is shut down when the test finishes.
func NewRepoServer(t *testing.T, files map[string]string) *RepoServer {
	t.Helper()

	rs := &RepoServer{files: files}
	if rs.files == nil {
		rs.files = map[string]string{}
	}

	rs.Server = httptest.NewServer(http.HandlerFunc(rs.handle))
	rs.URL = rs.Server.URL
	t.Cleanup(rs.Server.Close)

	return rs
}

func (rs *RepoServer) handle(w http.ResponseWriter, r *http.Request) {
	rs.mu.Lock()
	rs.requests = append(rs.requests, r.Method+" "+r.URL.Path)
	body, ok := rs.files[r.URL.Path]
	rs.mu.Unlock()

	if !ok {
		if content, found := rs.sourceFor(r.URL.Path); found {
			sum := sha1.Sum([]byte(content))
			_, _ = w.Write([]byte(hex.EncodeToString(sum[:])))
			return
		}
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(body)))
	if r.Method != http.MethodHead {
		_, _ = w.Write([]byte(body))
	}
}

// sourceFor resolves a .sha1 request to the content it digests.
func (rs *RepoServer) sourceFor(path string) (string, bool) {
	if !strings.HasSuffix(path, ".sha1") {
		return "", false
	}
	rs.mu.Lock()
	defer rs.mu.Unlock()
	content, ok := rs.files[strings.TrimSuffix(path, ".sha1")]
	return content, ok
}

// SetFile adds or replaces a served file.
func (rs *RepoServer) SetFile(path, content string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.files[path] = content
}

// Requests returns a copy of all recorded "METHOD /path" pairs.
func (rs *RepoServer) Requests() []string {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return append([]string(nil), rs.requests...)
}

// ResetRequests clears the recorded requests.
func (rs *RepoServer) ResetRequests() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.requests = rs.requests[:0]
}

// WriteConfig writes a minimal config file pointing the cache at a
// directory below tempDir and returns its path.
func WriteConfig(t *testing.T, tempDir string) string {
	t.Helper()

	configPath := filepath.Join(tempDir, "config.yaml")
	content := "settings:\n" +
		"  cache_dir: " + filepath.Join(tempDir, "cache") + "\n" +
		"  http_timeout: 5s\n" +
		"repositories: []\n"
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return configPath
}
