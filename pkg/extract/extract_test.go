package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndExtractAll(t *testing.T) {
	tmp := t.TempDir()
	srcDir := filepath.Join(tmp, "src")
	require.NoError(t, os.MkdirAll(filepath.Join(srcDir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "sub", "b.txt"), []byte("world"), 0o644))

	archivePath := filepath.Join(tmp, "artifact.tar.gz")
	require.NoError(t, Create(context.Background(), srcDir, archivePath))

	destDir := filepath.Join(tmp, "out")
	require.NoError(t, ExtractAll(context.Background(), archivePath, destDir))

	got, err := os.ReadFile(filepath.Join(destDir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))

	got, err = os.ReadFile(filepath.Join(destDir, "sub", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "world", string(got))
}

func TestExtractAllMissingArchive(t *testing.T) {
	err := ExtractAll(context.Background(), filepath.Join(t.TempDir(), "nope.tar.gz"), t.TempDir())
	assert.Error(t, err)
}

func TestExtractAllCreatesDestination(t *testing.T) {
	tmp := t.TempDir()
	srcDir := filepath.Join(tmp, "src")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "f"), []byte("x"), 0o644))

	archivePath := filepath.Join(tmp, "a.tar.gz")
	require.NoError(t, Create(context.Background(), srcDir, archivePath))

	destDir := filepath.Join(tmp, "deep", "nested", "out")
	require.NoError(t, ExtractAll(context.Background(), archivePath, destDir))
	assert.FileExists(t, filepath.Join(destDir, "f"))
}
