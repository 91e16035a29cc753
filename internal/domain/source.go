package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// SourceType tags where a migrated item came from
type SourceType string

const (
	SourceNotion SourceType = "notion"
	SourceBox    SourceType = "box"
)

func (t SourceType) String() string {
	return string(t)
}

// MarkdownExt is the extension both exports use for text documents
const MarkdownExt = ".md"

// SourceItem is a single file found while walking a source root
type SourceItem struct {
	Path    string     // Absolute source path, the identity input
	RelPath string     // Path relative to the source root
	Title   string     // Filename stem, export suffixes removed
	Content string     // Raw text or a synthesized placeholder
	Type    SourceType // notion, box
	Ext     string     // Lower-cased original extension; empty for notion items
}

// Notion appends a 32 char hex block ID to exported page names
var exportSuffix = regexp.MustCompile(`\s+[a-f0-9]{32}$`)

// Stem returns the filename without its final extension
func Stem(filename string) string {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return base
	}
	return stem
}

// NotionTitle derives a page title from an exported filename,
// e.g. "Q3 Revenue Report 8f14e45fceea167a5a36dedd4bea2543.md" -> "Q3 Revenue Report"
func NotionTitle(filename string) string {
	return exportSuffix.ReplaceAllString(Stem(filename), "")
}

// PlaceholderBody is the body written for files that are not imported as text
func PlaceholderBody(filename, ext, sourcePath string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(Imported file: %s)\n\n", filename)
	fmt.Fprintf(&sb, "**Type:** %s\n\n", ext)
	fmt.Fprintf(&sb, "**Source Path:** %s\n\n", sourcePath)
	sb.WriteString("This file was imported from Box. ")
	sb.WriteString("The original file is available at the source location.\n")
	return sb.String()
}

// ReadErrorBody stands in for a markdown file that could not be read
func ReadErrorBody(err error) string {
	return fmt.Sprintf("(Error reading file: %v)\n", err)
}
