package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is a small string key-value store.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// Open creates the store for backend at path. An empty path selects the
// default location under the user config directory.
func Open(backend Backend, path string) (Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendSQLite:
		if path == "" {
			p, err := DefaultPath("settings.db")
			if err != nil {
				return nil, err
			}
			path = p
		}
		return OpenSQLite(path)
	case BackendFile, "":
		if path == "" {
			p, err := DefaultPath("settings.yaml")
			if err != nil {
				return nil, err
			}
			path = p
		}
		return NewFileStore(path)
	default:
		return nil, fmt.Errorf("settings: unknown backend %q", backend)
	}
}

// DefaultPath returns name inside the application's config directory.
func DefaultPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("settings: locate config dir: %w", err)
	}
	return filepath.Join(dir, "portfolio", name), nil
}

// MemoryStore keeps values for the life of the process.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
