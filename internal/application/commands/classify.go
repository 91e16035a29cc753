package commands

import (
	"context"

	"vaultmigrate/internal/application"
	"vaultmigrate/internal/domain"
)

// ClassifyResult previews where an item would be filed
type ClassifyResult struct {
	Category domain.Category
	Slug     string
	Dest     string
	ID       domain.StableID // Set when a source path was given
}

// ClassifyCommand runs the classifier without touching the vault
type ClassifyCommand struct {
	Title      string
	Content    string
	SourcePath string
}

// NewClassifyCommand creates a new ClassifyCommand
func NewClassifyCommand(title, content, sourcePath string) *ClassifyCommand {
	return &ClassifyCommand{Title: title, Content: content, SourcePath: sourcePath}
}

// Validate checks that a title was given
func (c *ClassifyCommand) Validate() error {
	return application.ValidateRequired("title", c.Title)
}

// Execute classifies the title and content
func (c *ClassifyCommand) Execute(ctx context.Context) (*ClassifyResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	category := domain.Classify(c.Title, c.Content)
	result := &ClassifyResult{
		Category: category,
		Slug:     domain.Slug(c.Title),
		Dest:     domain.DestinationPath(category, c.Title),
	}
	if c.SourcePath != "" {
		result.ID = domain.NewStableID(c.SourcePath)
	}
	return result, nil
}
