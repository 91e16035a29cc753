package sqlite

import (
	"database/sql"

	"vaultmigrate/internal/domain"
)

// indexTx groups the writes of one sync
type indexTx struct {
	tx *sql.Tx
}

// beginTx starts a new transaction
func (idx *Index) beginTx() (*indexTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	return &indexTx{tx: tx}, nil
}

// upsertEntry inserts or updates an entry
func (t *indexTx) upsertEntry(id domain.StableID, e domain.MappingEntry) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO entries (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, string(id), e.Source, e.Dest, string(e.Type), e.Title, string(e.Category), e.OriginalExt, e.MigratedAt)
	return err
}

// deleteEntry removes an entry by stable ID
func (t *indexTx) deleteEntry(id string) error {
	_, err := t.tx.Exec(`DELETE FROM entries WHERE sid = ?`, id)
	return err
}

// setMeta records a metadata value
func (t *indexTx) setMeta(key, value string) error {
	_, err := t.tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	return err
}

func (t *indexTx) commit() error {
	return t.tx.Commit()
}

func (t *indexTx) rollback() error {
	return t.tx.Rollback()
}
