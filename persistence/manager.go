package persistence

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manager handles save/load of named TOML records under one directory
type Manager struct {
	basePath string
}

// NewManager creates a manager with the given base directory
func NewManager(basePath string) *Manager {
	return &Manager{basePath: basePath}
}

// FilePath returns the path for a named record
func (m *Manager) FilePath(name string) string {
	return filepath.Join(m.basePath, name+".toml")
}

// Exists checks if a record file exists
func (m *Manager) Exists(name string) bool {
	_, err := os.Stat(m.FilePath(name))
	return err == nil
}

// Save writes v to disk, replacing the previous record atomically
func (m *Manager) Save(name string, v any) error {
	if err := os.MkdirAll(m.basePath, 0755); err != nil {
		return fmt.Errorf("persistence mkdir: %w", err)
	}

	data, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("persistence encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(m.basePath, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("persistence temp %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("persistence write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("persistence write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), m.FilePath(name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("persistence rename %s: %w", name, err)
	}
	return nil
}

// ErrNotFound is returned by Load when the record does not exist
var ErrNotFound = errors.New("record not found")

// Load reads a record into v
func (m *Manager) Load(name string, v any) error {
	data, err := os.ReadFile(m.FilePath(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("persistence read %s: %w", name, err)
	}

	if err := toml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("persistence decode %s: %w", name, err)
	}
	return nil
}
