package application

import (
	"errors"
	"fmt"

	"vaultmigrate/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound       = errors.New("not found")
	ErrSourceNotFound = errors.New("source directory not found")
	ErrIDCollision    = errors.New("stable ID collision")
	ErrMappingSave    = errors.New("could not save mapping")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SourceError reports a missing or unusable source root
type SourceError struct {
	Field string
	Path  string
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s not found: %s", formatFieldName(e.Field), e.Path)
}

func (e *SourceError) Is(target error) bool {
	return target == ErrSourceNotFound
}

// CollisionError reports two source paths hashing to the same stable ID
type CollisionError struct {
	ID       domain.StableID
	Source   string
	Existing string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("stable ID %s of %s is already assigned to %s", e.ID, e.Source, e.Existing)
}

func (e *CollisionError) Is(target error) bool {
	return target == ErrIDCollision
}
