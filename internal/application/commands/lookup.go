package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"vaultmigrate/internal/application"
	"vaultmigrate/internal/domain"
	"vaultmigrate/internal/ports"
)

// LookupResult is a mapping entry resolved against the vault
type LookupResult struct {
	ID       domain.StableID
	Entry    domain.MappingEntry
	FilePath string // Absolute path of the migrated document
}

// LookupCommand finds a mapping entry by stable ID or by source path
type LookupCommand struct {
	mappings   ports.MappingRepository
	VaultPath  string
	ID         string
	SourcePath string
}

// NewLookupCommand looks up an entry by stable ID
func NewLookupCommand(mappings ports.MappingRepository, vaultPath, id string) *LookupCommand {
	return &LookupCommand{mappings: mappings, VaultPath: vaultPath, ID: id}
}

// NewLookupBySourceCommand looks up an entry by its source path
func NewLookupBySourceCommand(mappings ports.MappingRepository, vaultPath, sourcePath string) *LookupCommand {
	return &LookupCommand{mappings: mappings, VaultPath: vaultPath, SourcePath: sourcePath}
}

// Validate checks that exactly one of ID and SourcePath is set
func (c *LookupCommand) Validate() error {
	switch {
	case c.ID != "" && c.SourcePath != "":
		return &application.ValidationError{Field: "sid", Message: "use either a stable ID or a source path, not both"}
	case c.SourcePath != "":
		return nil
	default:
		return application.ValidateStableID("sid", c.ID)
	}
}

// Execute runs the lookup
func (c *LookupCommand) Execute(ctx context.Context) (*LookupResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	mapping, err := c.mappings.Load()
	if err != nil {
		return nil, err
	}

	var (
		id    domain.StableID
		entry domain.MappingEntry
		ok    bool
	)
	if c.SourcePath != "" {
		source := c.SourcePath
		if abs, err := filepath.Abs(source); err == nil {
			source = abs
		}
		id, entry, ok = mapping.FindBySource(source)
		if !ok {
			return nil, fmt.Errorf("no mapping for source %s: %w", source, application.ErrNotFound)
		}
	} else {
		id = domain.StableID(c.ID)
		entry, ok = mapping.Get(id)
		if !ok {
			return nil, fmt.Errorf("no mapping for %s: %w", id, application.ErrNotFound)
		}
	}

	return &LookupResult{
		ID:       id,
		Entry:    entry,
		FilePath: filepath.Join(c.VaultPath, filepath.FromSlash(entry.Dest)),
	}, nil
}
