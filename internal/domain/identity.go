package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// StableIDLength is the number of hex characters kept from the path hash.
// Widening it lowers the collision odds without changing any other contract.
const StableIDLength = 16

// StableID identifies a migrated source item (e.g., "3f2a9c0d1e4b5a67")
type StableID string

// NewStableID derives the stable ID of a source item from its absolute path.
// Identity is path-based: editing a file keeps its ID, moving it does not.
func NewStableID(path string) StableID {
	h := sha256.Sum256([]byte(path))
	return StableID(hex.EncodeToString(h[:])[:StableIDLength])
}

func (id StableID) String() string {
	return string(id)
}

// IsValid reports whether id has the expected length and hex alphabet
func (id StableID) IsValid() bool {
	if len(id) != StableIDLength {
		return false
	}
	for _, r := range id {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
