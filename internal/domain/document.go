package domain

import (
	"path"
	"strings"
)

// VaultSubdir is where migrated documents live, relative to the vault root
const VaultSubdir = "Knowledge/IntegrateWise"

// FrontmatterDelimiter opens and closes the metadata block
const FrontmatterDelimiter = "---"

// Metadata keys written into every migrated document
const (
	MetaSource       = "source"
	MetaSID          = "sid"
	MetaCategory     = "category"
	MetaOriginalExt  = "original_ext"
	MetaOriginalPath = "original_path"
	MetaMigratedAt   = "migrated_at"
)

// MetaField is one key/value line of the metadata block
type MetaField struct {
	Key   string
	Value string
}

// Document is the normalized form of a migrated item
type Document struct {
	Title    string
	Body     string
	Metadata []MetaField // Written in order
}

// Render produces the file contents for the document
func (d Document) Render() string {
	var sb strings.Builder
	sb.WriteString(FrontmatterDelimiter + "\n")
	for _, f := range d.Metadata {
		sb.WriteString(f.Key)
		sb.WriteString(`: "`)
		sb.WriteString(strings.ReplaceAll(f.Value, `"`, `\"`))
		sb.WriteString("\"\n")
	}
	sb.WriteString(FrontmatterDelimiter + "\n\n")
	sb.WriteString("# " + d.Title + "\n\n")
	sb.WriteString(d.Body)
	sb.WriteString("\n")
	return sb.String()
}

// Meta returns the value for key and whether it was present
func (d Document) Meta(key string) (string, bool) {
	for _, f := range d.Metadata {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// DestinationPath returns the vault-relative path for a title in a category
func DestinationPath(category Category, title string) string {
	return path.Join(VaultSubdir, string(category), Slug(title)+MarkdownExt)
}
