package commands

import (
	"context"

	"vaultmigrate/internal/domain"
	"vaultmigrate/internal/ports"
)

// ShowResult is a mapping entry together with its parsed document
type ShowResult struct {
	LookupResult
	Document *domain.Document
}

// ShowCommand reads back the migrated document for a stable ID
type ShowCommand struct {
	lookup *LookupCommand
	reader ports.DocumentReader
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(mappings ports.MappingRepository, reader ports.DocumentReader, vaultPath, id string) *ShowCommand {
	return &ShowCommand{
		lookup: NewLookupCommand(mappings, vaultPath, id),
		reader: reader,
	}
}

// Execute runs the show command
func (c *ShowCommand) Execute(ctx context.Context) (*ShowResult, error) {
	found, err := c.lookup.Execute(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := c.reader.Read(found.FilePath)
	if err != nil {
		return nil, err
	}
	return &ShowResult{LookupResult: *found, Document: doc}, nil
}
