package fsutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCacheDir(t *testing.T) {
	dir, err := GetCacheDir()
	require.NoError(t, err)
	assert.Equal(t, AppName, filepath.Base(dir))
}

func TestGetArtifactCacheDir(t *testing.T) {
	dir, err := GetArtifactCacheDir()
	require.NoError(t, err)
	assert.Equal(t, "artifacts", filepath.Base(dir))
	assert.Equal(t, AppName, filepath.Base(filepath.Dir(dir)))
}
