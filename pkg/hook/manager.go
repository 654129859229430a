package hook

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/glorpus-work/artfetch/pkg/errors"
)

// DefaultManager is the default implementation of Manager.
type DefaultManager struct {
	executor *TengoExecutor
	mutex    sync.RWMutex
}

// NewManager creates a new hook manager.
func NewManager() *DefaultManager {
	return &DefaultManager{
		executor: NewTengoExecutor(),
	}
}

// Execute runs the script attached to the event with the given context.
func (m *DefaultManager) Execute(event Event, ctx Context) error {
	if !m.HasHook(event) {
		return nil
	}

	// Copy the context so scripts cannot mutate caller state.
	ctxCopy := ctx
	if ctxCopy.Vars == nil {
		ctxCopy.Vars = make(map[string]interface{})
	}

	return m.executor.Execute(event, ctxCopy)
}

// AddHook attaches a script to an event.
func (m *DefaultManager) AddHook(hook Hook) error {
	if hook.Event == "" {
		return errors.ErrHookEventEmpty
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.executor.AddScript(hook.Event, hook.Content)
	return nil
}

// RemoveHook detaches the script for an event.
func (m *DefaultManager) RemoveHook(event Event) error {
	if event == "" {
		return errors.ErrHookEventEmpty
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.executor.RemoveScript(event)
	return nil
}

// HasHook checks whether a script is attached to the event.
func (m *DefaultManager) HasHook(event Event) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.executor.HasScript(event)
}

// LoadFromDir loads hook scripts from a directory, one file per event named
// <event>.tengo. Unknown names and other extensions are skipped.
func (m *DefaultManager) LoadFromDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read hooks directory %s", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".tengo" {
			continue
		}

		event := Event(strings.TrimSuffix(entry.Name(), ".tengo"))
		switch event {
		case PreTransfer, PostTransfer, TransferError:
		default:
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return errors.Wrapf(err, "error reading hook file %s", entry.Name())
		}
		if err := m.AddHook(Hook{Event: event, Content: string(content)}); err != nil {
			return err
		}
	}
	return nil
}
