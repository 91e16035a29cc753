package ports

import "vaultmigrate/internal/domain"

// MappingRepository persists the stable ID mapping between runs
type MappingRepository interface {
	// Load returns the stored mapping, or an empty one if nothing is stored yet
	Load() (*domain.Mapping, error)

	// Save replaces the stored mapping wholesale
	Save(mapping *domain.Mapping) error

	// Location describes where the mapping lives (for messages)
	Location() string
}
