//go:build integration

package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/artfetch/test/testutil"
)

func TestGet_DownloadsAndCaches(t *testing.T) {
	tempDir := t.TempDir()
	cfgPath := testutil.WriteConfig(t, tempDir)

	server := testutil.NewRepoServer(t, map[string]string{
		"/org/tool/1.0/tool-1.0.jar": "artifact-bytes",
	})

	dest := filepath.Join(tempDir, "tool.jar")
	cmd := newRootCmd()
	cmd.SetArgs([]string{
		"--config", cfgPath,
		"get", server.URL + "/org/tool/1.0/tool-1.0.jar",
		"--output", dest,
		"--artifact", "org:tool:1.0",
	})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "artifact-bytes", string(data))

	// Second run must be served from the cache: only the checksum is fetched.
	server.ResetRequests()
	dest2 := filepath.Join(tempDir, "tool-again.jar")
	cmd2 := newRootCmd()
	cmd2.SetArgs([]string{
		"--config", cfgPath,
		"get", server.URL + "/org/tool/1.0/tool-1.0.jar",
		"--output", dest2,
		"--artifact", "org:tool:1.0",
	})
	require.NoError(t, cmd2.ExecuteContext(context.Background()))

	assert.Equal(t, []string{"GET /org/tool/1.0/tool-1.0.jar.sha1"}, server.Requests())

	data, err = os.ReadFile(dest2)
	require.NoError(t, err)
	assert.Equal(t, "artifact-bytes", string(data))
}

func TestGet_MissingResource(t *testing.T) {
	tempDir := t.TempDir()
	cfgPath := testutil.WriteConfig(t, tempDir)

	server := testutil.NewRepoServer(t, nil)

	cmd := newRootCmd()
	cmd.SetArgs([]string{
		"--config", cfgPath,
		"get", server.URL + "/nope.jar",
		"--output", filepath.Join(tempDir, "nope.jar"),
	})
	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestHead_ReportsExistence(t *testing.T) {
	tempDir := t.TempDir()
	cfgPath := testutil.WriteConfig(t, tempDir)

	server := testutil.NewRepoServer(t, map[string]string{
		"/a.jar": "content",
	})

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", cfgPath, "head", server.URL + "/a.jar"})
	err := cmd.ExecuteContext(context.Background())

	_ = w.Close()
	os.Stdout = oldStdout

	require.NoError(t, err)

	var buf strings.Builder
	_, _ = io.Copy(&buf, r)
	assert.Contains(t, buf.String(), "exists")
}

func TestPut_UploadsFile(t *testing.T) {
	tempDir := t.TempDir()
	cfgPath := testutil.WriteConfig(t, tempDir)

	server := testutil.NewRepoServer(t, nil)
	server.SetFile("/upload/tool.jar", "")

	sourcePath := filepath.Join(tempDir, "tool.jar")
	require.NoError(t, os.WriteFile(sourcePath, []byte("payload"), 0o644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", cfgPath, "put", sourcePath, server.URL + "/upload/tool.jar"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Contains(t, server.Requests(), "PUT /upload/tool.jar")
}

func TestCache_InfoAndDir(t *testing.T) {
	tempDir := t.TempDir()
	cfgPath := testutil.WriteConfig(t, tempDir)
	cacheDir := filepath.Join(tempDir, "cache")

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", cfgPath, "cache", "info"})
	err := cmd.ExecuteContext(context.Background())

	_ = w.Close()
	os.Stdout = oldStdout

	require.NoError(t, err)

	var buf strings.Builder
	_, _ = io.Copy(&buf, r)
	output := buf.String()
	assert.Contains(t, output, "Cache Directory:")
	assert.Contains(t, output, cacheDir)
	assert.Contains(t, output, "Total Size:")
}
