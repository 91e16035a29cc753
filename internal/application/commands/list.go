package commands

import (
	"context"

	"vaultmigrate/internal/application"
	"vaultmigrate/internal/domain"
	"vaultmigrate/internal/ports"
)

// ListCommand lists migrated documents, optionally within one category
type ListCommand struct {
	index    ports.MappingIndex
	Category string
}

// NewListCommand creates a new ListCommand
func NewListCommand(index ports.MappingIndex, category string) *ListCommand {
	return &ListCommand{index: index, Category: category}
}

// Validate checks that the category, if given, is a known label
func (c *ListCommand) Validate() error {
	if c.Category != "" && !domain.IsKnownCategory(domain.Category(c.Category)) {
		return &application.ValidationError{Field: "category", Message: "unknown category: " + c.Category}
	}
	return nil
}

// Execute returns the matching entries ordered by category and title
func (c *ListCommand) Execute(ctx context.Context) ([]ports.IndexedEntry, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.index.ListByCategory(domain.Category(c.Category))
}

// StatsResult holds per-category document counts
type StatsResult struct {
	Counts []ports.CategoryCount // Every category in taxonomy order, zeros included
	Total  int
}

// StatsCommand counts migrated documents per category
type StatsCommand struct {
	index ports.MappingIndex
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(index ports.MappingIndex) *StatsCommand {
	return &StatsCommand{index: index}
}

// Execute runs the stats command
func (c *StatsCommand) Execute(ctx context.Context) (*StatsResult, error) {
	counts, err := c.index.CountByCategory()
	if err != nil {
		return nil, err
	}

	byCategory := make(map[domain.Category]int, len(counts))
	for _, cc := range counts {
		byCategory[cc.Category] = cc.Count
	}

	result := &StatsResult{}
	for _, category := range domain.Categories() {
		n := byCategory[category]
		result.Counts = append(result.Counts, ports.CategoryCount{Category: category, Count: n})
		result.Total += n
	}
	return result, nil
}
