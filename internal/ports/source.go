package ports

import (
	"context"

	"vaultmigrate/internal/domain"
)

// ItemHandler receives each item found by a walker.
// Returning an error stops the walk and is returned from Walk.
type ItemHandler func(item domain.SourceItem) error

// SourceWalker enumerates the items of one source root
type SourceWalker interface {
	// Type returns the source type tag of the items it yields
	Type() domain.SourceType

	// Root returns the absolute source root
	Root() string

	// Walk visits every item in lexical order.
	// Unreadable items are counted by the walker, which either skips them
	// or yields a placeholder.
	Walk(ctx context.Context, fn ItemHandler) error

	// Unreadable returns the number of items the last Walk could not read
	Unreadable() int
}
