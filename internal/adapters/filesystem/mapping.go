package filesystem

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"vaultmigrate/internal/domain"
	"vaultmigrate/internal/ports"
)

// Ensure MappingFile implements MappingRepository
var _ ports.MappingRepository = (*MappingFile)(nil)

// MappingFile stores the mapping as a pretty-printed JSON object
type MappingFile struct {
	path string
}

// NewMappingFile creates a repository backed by the JSON file at path
func NewMappingFile(path string) *MappingFile {
	return &MappingFile{path: path}
}

func (f *MappingFile) Location() string {
	return f.path
}

// Load reads the mapping. A missing file yields an empty mapping;
// a corrupt or unreadable file is an error.
func (f *MappingFile) Load() (*domain.Mapping, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewMapping(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping %s: %w", f.path, err)
	}

	var table map[domain.StableID]domain.MappingEntry
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse mapping %s: %w", f.path, err)
	}
	return domain.NewMappingFrom(table), nil
}

// Save writes the whole mapping, replacing the file atomically
func (f *MappingFile) Save(mapping *domain.Mapping) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(mapping.Table()); err != nil {
		return fmt.Errorf("failed to encode mapping: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create mapping directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp mapping: %w", err)
	}
	tmpPath := tmp.Name()

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write mapping: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write mapping: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write mapping: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace mapping %s: %w", f.path, err)
	}
	return nil
}
