package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"vaultmigrate/internal/config"
	"vaultmigrate/internal/domain"
	"vaultmigrate/internal/ports"
)

const schemaVersion = "1"

// Index implements ports.MappingIndex using SQLite
type Index struct {
	db        *sql.DB
	vaultPath string
	dbPath    string
}

// Ensure Index implements MappingIndex
var _ ports.MappingIndex = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index for the given vault path
func (idx *Index) Open(vaultPath string) error {
	vaultPath = config.ExpandHome(vaultPath)
	if abs, err := filepath.Abs(vaultPath); err == nil {
		vaultPath = abs
	}

	idx.vaultPath = vaultPath
	idx.dbPath = databasePath(vaultPath)

	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", idx.dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS entries (
			sid TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			dest TEXT NOT NULL,
			type TEXT NOT NULL,
			title TEXT NOT NULL,
			category TEXT NOT NULL,
			original_ext TEXT NOT NULL DEFAULT '',
			migrated_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_entries_category ON entries(category);
		CREATE INDEX IF NOT EXISTS idx_entries_source ON entries(source);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if err := idx.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// Path returns the database file backing the index
func (idx *Index) Path() string {
	return idx.dbPath
}

// databasePath returns the path for the SQLite database
func databasePath(vaultPath string) string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	// One database per vault, named after the vault's stable ID
	return filepath.Join(dataHome, "vaultmigrate", domain.NewStableID(vaultPath).String()+".db")
}

// updateMeta updates the schema version and vault path
func (idx *Index) updateMeta() error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('vault_path', ?);
	`, schemaVersion, idx.vaultPath)
	return err
}

const entryColumns = `sid, source, dest, type, title, category, original_ext, migrated_at`

// Search returns entries whose title, source or destination contains query
func (idx *Index) Search(query string) ([]ports.IndexedEntry, error) {
	pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(query))) + "%"
	return idx.queryEntries(`
		SELECT `+entryColumns+`
		FROM entries
		WHERE lower(title) LIKE ? ESCAPE '\'
		   OR lower(source) LIKE ? ESCAPE '\'
		   OR lower(dest) LIKE ? ESCAPE '\'
		ORDER BY category, title, sid
	`, pattern, pattern, pattern)
}

// ListByCategory returns all entries filed under category.
// An empty category lists everything.
func (idx *Index) ListByCategory(category domain.Category) ([]ports.IndexedEntry, error) {
	if category == "" {
		return idx.queryEntries(`SELECT ` + entryColumns + ` FROM entries ORDER BY category, title, sid`)
	}
	return idx.queryEntries(`
		SELECT `+entryColumns+`
		FROM entries WHERE category = ?
		ORDER BY title, sid
	`, string(category))
}

// CountByCategory returns document counts per category, largest first
func (idx *Index) CountByCategory() ([]ports.CategoryCount, error) {
	rows, err := idx.db.Query(`
		SELECT category, COUNT(*) FROM entries
		GROUP BY category
		ORDER BY COUNT(*) DESC, category
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []ports.CategoryCount
	for rows.Next() {
		var c ports.CategoryCount
		var category string
		if err := rows.Scan(&category, &c.Count); err != nil {
			return nil, err
		}
		c.Category = domain.Category(category)
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

func (idx *Index) queryEntries(query string, args ...any) ([]ports.IndexedEntry, error) {
	rows, err := idx.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ports.IndexedEntry
	for rows.Next() {
		var e ports.IndexedEntry
		var sid, sourceType, category string
		if err := rows.Scan(&sid, &e.Source, &e.Dest, &sourceType, &e.Title, &category, &e.OriginalExt, &e.MigratedAt); err != nil {
			return nil, err
		}
		e.ID = domain.StableID(sid)
		e.Type = domain.SourceType(sourceType)
		e.Category = domain.Category(category)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
