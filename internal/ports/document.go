package ports

import "vaultmigrate/internal/domain"

// DocumentWriter stores rendered documents in the vault
type DocumentWriter interface {
	// Write creates missing directories and overwrites any file at path
	Write(path string, doc domain.Document) error
}

// DocumentReader loads a migrated document back from the vault
type DocumentReader interface {
	Read(path string) (*domain.Document, error)
}
