package filesystem

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/adrg/frontmatter"

	"vaultmigrate/internal/domain"
	"vaultmigrate/internal/ports"
)

// Ensure DocumentStore implements the document ports
var (
	_ ports.DocumentWriter = (*DocumentStore)(nil)
	_ ports.DocumentReader = (*DocumentStore)(nil)
)

// DocumentStore reads and writes migrated documents on disk
type DocumentStore struct{}

// NewDocumentStore creates a new DocumentStore
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// Write renders doc to path, creating parent directories and overwriting
// whatever is already there.
func (s *DocumentStore) Write(path string, doc domain.Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(doc.Render()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Read parses a migrated document back into title, body and metadata
func (s *DocumentStore) Read(path string) (*domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseDocument(data)
}

// metadataOrder is the order the migrator writes known keys in
var metadataOrder = []string{
	domain.MetaSource,
	domain.MetaSID,
	domain.MetaCategory,
	domain.MetaOriginalExt,
	domain.MetaOriginalPath,
	domain.MetaMigratedAt,
}

// ParseDocument parses rendered document bytes. Known metadata keys come
// first in write order, unknown keys follow alphabetically.
func ParseDocument(data []byte) (*domain.Document, error) {
	var meta map[string]string
	rest, err := frontmatter.Parse(bytes.NewReader(requoteMetadata(data)), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	doc := &domain.Document{}
	seen := make(map[string]bool, len(meta))
	for _, key := range metadataOrder {
		if v, ok := meta[key]; ok {
			doc.Metadata = append(doc.Metadata, domain.MetaField{Key: key, Value: v})
			seen[key] = true
		}
	}
	var extra []string
	for key := range meta {
		if !seen[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		doc.Metadata = append(doc.Metadata, domain.MetaField{Key: key, Value: meta[key]})
	}

	body := strings.TrimLeft(string(rest), "\n")
	if heading, after, ok := strings.Cut(body, "\n"); ok && strings.HasPrefix(heading, "# ") {
		doc.Title = strings.TrimPrefix(heading, "# ")
		body = strings.TrimPrefix(after, "\n")
	}
	doc.Body = strings.TrimSuffix(body, "\n")

	return doc, nil
}

// metadataLine matches a `key: "value"` line as Render writes it
var metadataLine = regexp.MustCompile(`^([A-Za-z0-9_]+): "(.*)"$`)

// requoteMetadata rewrites the metadata block into valid YAML. Render only
// escapes `"`, so a backslash in a value would otherwise be read as a YAML
// escape sequence. Lines outside the block are left untouched.
func requoteMetadata(data []byte) []byte {
	lines := strings.SplitAfter(string(data), "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r\n") != domain.FrontmatterDelimiter {
		return data
	}

	var sb strings.Builder
	sb.WriteString(lines[0])
	inBlock := true
	for _, line := range lines[1:] {
		if inBlock {
			text := strings.TrimRight(line, "\r\n")
			if text == domain.FrontmatterDelimiter {
				inBlock = false
			} else if m := metadataLine.FindStringSubmatch(text); m != nil {
				value := strings.ReplaceAll(m[2], `\"`, `"`)
				line = m[1] + ": " + strconv.Quote(value) + line[len(text):]
			}
		}
		sb.WriteString(line)
	}
	return []byte(sb.String())
}
