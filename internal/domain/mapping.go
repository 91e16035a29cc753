package domain

import (
	"slices"
	"time"
)

// TimestampLayout is the UTC ISO-8601 layout used for migrated_at
const TimestampLayout = time.RFC3339

// MappingEntry records where a source item was migrated to
type MappingEntry struct {
	Source      string     `json:"source"`
	Dest        string     `json:"dest"` // Vault-relative
	Type        SourceType `json:"type"`
	Title       string     `json:"title"`
	Category    Category   `json:"category"`
	OriginalExt string     `json:"original_ext,omitempty"`
	MigratedAt  string     `json:"migrated_at"`
}

// Decision is the outcome of checking an item against the mapping
type Decision int

const (
	DecisionMigrate   Decision = iota // Unknown ID
	DecisionSkip                      // Same ID, same destination
	DecisionRemigrate                 // Same ID, destination drifted
	DecisionCollision                 // ID already held by another source path
)

func (d Decision) String() string {
	switch d {
	case DecisionMigrate:
		return "Migrate"
	case DecisionSkip:
		return "Skip"
	case DecisionRemigrate:
		return "Remigrate"
	case DecisionCollision:
		return "Collision"
	default:
		return "Unknown"
	}
}

// Writes reports whether the decision leads to a document write
func (d Decision) Writes() bool {
	return d == DecisionMigrate || d == DecisionRemigrate
}

// Mapping is the in-memory table of migrated items keyed by stable ID.
// It is not safe for concurrent use.
type Mapping struct {
	entries map[StableID]MappingEntry
}

// NewMapping creates an empty mapping
func NewMapping() *Mapping {
	return &Mapping{entries: make(map[StableID]MappingEntry)}
}

// NewMappingFrom wraps an existing table
func NewMappingFrom(entries map[StableID]MappingEntry) *Mapping {
	if entries == nil {
		entries = make(map[StableID]MappingEntry)
	}
	return &Mapping{entries: entries}
}

// Len returns the number of entries
func (m *Mapping) Len() int {
	return len(m.entries)
}

// Get returns the entry for id
func (m *Mapping) Get(id StableID) (MappingEntry, bool) {
	e, ok := m.entries[id]
	return e, ok
}

// Upsert inserts or replaces the entry for id
func (m *Mapping) Upsert(id StableID, entry MappingEntry) {
	m.entries[id] = entry
}

// Decide determines what to do with an item whose ID, source and destination are known
func (m *Mapping) Decide(id StableID, source, dest string) Decision {
	existing, ok := m.entries[id]
	switch {
	case !ok:
		return DecisionMigrate
	case existing.Source != "" && existing.Source != source:
		return DecisionCollision
	case existing.Dest == dest:
		return DecisionSkip
	default:
		return DecisionRemigrate
	}
}

// FindBySource returns the entry whose source path equals source
func (m *Mapping) FindBySource(source string) (StableID, MappingEntry, bool) {
	for id, e := range m.entries {
		if e.Source == source {
			return id, e, true
		}
	}
	return "", MappingEntry{}, false
}

// IDs returns all stable IDs in ascending order
func (m *Mapping) IDs() []StableID {
	ids := make([]StableID, 0, len(m.entries))
	for id := range m.entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Table returns a copy of the underlying table
func (m *Mapping) Table() map[StableID]MappingEntry {
	out := make(map[StableID]MappingEntry, len(m.entries))
	for id, e := range m.entries {
		out[id] = e
	}
	return out
}

// MigrationStats holds statistics for one walker run
type MigrationStats struct {
	Migrated   int
	Skipped    int
	Unreadable int
	Collisions int
	Duration   time.Duration
}

// IndexStats holds statistics from an index sync
type IndexStats struct {
	EntriesIndexed int
	EntriesRemoved int
	Duration       time.Duration
}
