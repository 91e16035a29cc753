package commands

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"vaultmigrate/internal/ports"
)

// SearchResult wraps an indexed entry with a relevance score
type SearchResult struct {
	ports.IndexedEntry
	Score int
}

// SearchCommand searches migrated documents. By default matching is fuzzy
// over title, source file name and destination; Exact restricts it to
// case-insensitive substring matches answered by the index.
type SearchCommand struct {
	index ports.MappingIndex
	Query string
	Exact bool
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(index ports.MappingIndex, query string) *SearchCommand {
	return &SearchCommand{
		index: index,
		Query: query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	if len(c.Query) < 2 {
		return nil, nil
	}

	if c.Exact {
		entries, err := c.index.Search(c.Query)
		if err != nil {
			return nil, err
		}
		results := make([]SearchResult, 0, len(entries))
		for _, e := range entries {
			results = append(results, SearchResult{IndexedEntry: e, Score: bestScore(e, c.Query)})
		}
		return results, nil
	}

	entries, err := c.index.ListByCategory("")
	if err != nil {
		return nil, err
	}
	return FuzzySort(entries, c.Query), nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && isSeparator(target[i-1]) {
				score += 10
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

func isSeparator(b byte) bool {
	return b == ' ' || b == '.' || b == '-' || b == '_' || b == '/'
}

func bestScore(e ports.IndexedEntry, query string) int {
	return max(
		FuzzyScore(e.Title, query),
		FuzzyScore(filepath.Base(e.Source), query),
		FuzzyScore(e.Dest, query),
		FuzzyScore(e.ID.String(), query),
	)
}

// FuzzySort scores entries against the query, drops non-matches and
// sorts by relevance, then by title.
func FuzzySort(entries []ports.IndexedEntry, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(entries))

	for _, e := range entries {
		if best := bestScore(e, query); best > 0 {
			scored = append(scored, SearchResult{IndexedEntry: e, Score: best})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Title < scored[j].Title
	})

	return scored
}
