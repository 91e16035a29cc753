package ports

import "vaultmigrate/internal/domain"

// IndexedEntry is a mapping entry as stored in the index
type IndexedEntry struct {
	ID domain.StableID
	domain.MappingEntry
}

// CategoryCount is the number of indexed documents in a category
type CategoryCount struct {
	Category domain.Category
	Count    int
}

// MappingIndex provides queryable access to the mapping of a vault.
// It is rebuilt from the mapping; the mapping file stays authoritative.
type MappingIndex interface {
	// Lifecycle
	Open(vaultPath string) error
	Close() error

	// Sync replaces the index contents with the mapping
	Sync(mapping *domain.Mapping) (*domain.IndexStats, error)

	// Queries
	Search(query string) ([]IndexedEntry, error)
	ListByCategory(category domain.Category) ([]IndexedEntry, error)
	CountByCategory() ([]CategoryCount, error)
}
