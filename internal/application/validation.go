package application

import (
	"fmt"
	"os"
	"strings"

	"vaultmigrate/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// ValidateSourceDir checks that a source root exists and is a directory
func ValidateSourceDir(fieldName, path string) error {
	if err := ValidateRequired(fieldName, path); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return &SourceError{Field: fieldName, Path: path}
	}
	return nil
}

// ValidateStableID checks that id looks like a stable ID
func ValidateStableID(fieldName, id string) error {
	if err := ValidateRequired(fieldName, id); err != nil {
		return err
	}
	if !domain.StableID(id).IsValid() {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected %d lowercase hex characters, got: %s", domain.StableIDLength, id),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "notionDir" -> "Notion export directory")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"notionDir":   "Notion export directory",
		"boxDir":      "Box directory",
		"vaultPath":   "vault path",
		"mappingPath": "mapping path",
		"sid":         "stable ID",
		"sourcePath":  "source path",
		"title":       "title",
		"query":       "query",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}
