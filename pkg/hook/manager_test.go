package hook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/artfetch/pkg/errors"
)

func TestAddAndExecuteHook(t *testing.T) {
	m := NewManager()

	require.NoError(t, m.AddHook(Hook{
		Event:   PreTransfer,
		Content: `out := direction + " " + url`,
	}))
	assert.True(t, m.HasHook(PreTransfer))
	assert.False(t, m.HasHook(PostTransfer))

	err := m.Execute(PreTransfer, Context{URL: "http://repo/a/b.jar", Direction: "GET"})
	assert.NoError(t, err)
}

func TestExecuteWithoutHookIsNoop(t *testing.T) {
	m := NewManager()
	assert.NoError(t, m.Execute(PostTransfer, Context{}))
}

func TestHookScriptError(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.AddHook(Hook{
		Event:   TransferError,
		Content: `err := "upload rejected: " + transferError`,
	}))

	err := m.Execute(TransferError, Context{URL: "http://repo/a/b.jar", Error: "status 500"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrHookScript)
	assert.Contains(t, err.Error(), "upload rejected: status 500")
}

func TestHookCompileError(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.AddHook(Hook{Event: PreTransfer, Content: `this is not tengo`}))

	err := m.Execute(PreTransfer, Context{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrHookExecution)
}

func TestAddHookRequiresEvent(t *testing.T) {
	m := NewManager()
	assert.ErrorIs(t, m.AddHook(Hook{Content: "x := 1"}), errors.ErrHookEventEmpty)
}

func TestRemoveHook(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.AddHook(Hook{Event: PreTransfer, Content: "x := 1"}))
	require.NoError(t, m.RemoveHook(PreTransfer))
	assert.False(t, m.HasHook(PreTransfer))

	assert.ErrorIs(t, m.RemoveHook(""), errors.ErrHookEventEmpty)
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pre-transfer.tengo"), []byte("x := url"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unknown-event.tengo"), []byte("x := 1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("docs"), 0o644))

	m := NewManager()
	require.NoError(t, m.LoadFromDir(dir))

	assert.True(t, m.HasHook(PreTransfer))
	assert.False(t, m.HasHook(Event("unknown-event")))
}

func TestLoadFromMissingDirIsNoop(t *testing.T) {
	m := NewManager()
	assert.NoError(t, m.LoadFromDir(filepath.Join(t.TempDir(), "nope")))
}

func TestHookContextVars(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.AddHook(Hook{
		Event:   PostTransfer,
		Content: `err := ""; if transferred != total { err = "short transfer" }`,
	}))

	assert.NoError(t, m.Execute(PostTransfer, Context{Transferred: 10, Total: 10}))

	err := m.Execute(PostTransfer, Context{Transferred: 5, Total: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "short transfer")
}
