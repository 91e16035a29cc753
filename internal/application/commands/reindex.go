package commands

import (
	"context"

	"vaultmigrate/internal/domain"
	"vaultmigrate/internal/ports"
)

// ReindexCommand rebuilds the mapping index from the mapping file
type ReindexCommand struct {
	mappings ports.MappingRepository
	index    ports.MappingIndex
}

// NewReindexCommand creates a new ReindexCommand
func NewReindexCommand(mappings ports.MappingRepository, index ports.MappingIndex) *ReindexCommand {
	return &ReindexCommand{mappings: mappings, index: index}
}

// Execute runs the reindex command
func (c *ReindexCommand) Execute(ctx context.Context) (*domain.IndexStats, error) {
	mapping, err := c.mappings.Load()
	if err != nil {
		return nil, err
	}
	return c.index.Sync(mapping)
}
