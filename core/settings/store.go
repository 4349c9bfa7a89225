package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// StorageKey is the key the settings document is stored under.
const StorageKey = "json_alchemist_config"

// Store loads and saves Settings.
type Store interface {
	Load() (Settings, error)
	Save(Settings) error
	Reset() error
}

// FileStore keeps settings in a JSON key/value file. Other keys in the file
// are preserved.
type FileStore struct {
	path string
	mu   sync.Mutex
}

var _ Store = (*FileStore)(nil)

// NewFileStore returns a store backed by path. The file and its directory are
// created on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath is storage.json inside the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "jsonalchemist", "storage.json"), nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Load returns the stored settings, or Default when the file or key is
// missing. A document without a theme gets the default theme.
func (s *FileStore) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return Default(), err
	}
	raw, ok := entries[StorageKey]
	if !ok {
		return Default(), nil
	}

	var cfg Settings
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Default(), fmt.Errorf("decoding %s: %w", StorageKey, err)
	}
	return cfg.withDefaults(), nil
}

// Save writes cfg under StorageKey.
func (s *FileStore) Save(cfg Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	entries[StorageKey] = raw
	return s.write(entries)
}

// Reset removes the stored document so the next Load returns Default.
func (s *FileStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := entries[StorageKey]; !ok {
		return nil
	}
	delete(entries, StorageKey)
	return s.write(entries)
}

func (s *FileStore) read() (map[string]json.RawMessage, error) {
	entries := make(map[string]json.RawMessage)
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return entries, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	return entries, nil
}

func (s *FileStore) write(entries map[string]json.RawMessage) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding storage: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".storage-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}
