package sqlite

import (
	"strconv"
	"time"

	"vaultmigrate/internal/domain"
)

// Sync makes the index mirror the mapping: every entry is upserted and
// indexed IDs no longer in the mapping are removed, in one transaction.
func (idx *Index) Sync(mapping *domain.Mapping) (*domain.IndexStats, error) {
	start := time.Now()
	stats := &domain.IndexStats{}

	// Track existing IDs to detect removals
	existing := make(map[string]bool)
	rows, err := idx.db.Query(`SELECT sid FROM entries`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var sid string
		if err := rows.Scan(&sid); err != nil {
			rows.Close()
			return nil, err
		}
		existing[sid] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tx, err := idx.beginTx()
	if err != nil {
		return nil, err
	}

	for _, id := range mapping.IDs() {
		entry, _ := mapping.Get(id)
		if err := tx.upsertEntry(id, entry); err != nil {
			tx.rollback()
			return nil, err
		}
		delete(existing, string(id))
		stats.EntriesIndexed++
	}

	for sid := range existing {
		if err := tx.deleteEntry(sid); err != nil {
			tx.rollback()
			return nil, err
		}
		stats.EntriesRemoved++
	}

	if err := tx.setMeta("last_sync_time", strconv.FormatInt(time.Now().Unix(), 10)); err != nil {
		tx.rollback()
		return nil, err
	}

	if err := tx.commit(); err != nil {
		return nil, err
	}

	stats.Duration = time.Since(start)
	return stats, nil
}
