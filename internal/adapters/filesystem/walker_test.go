package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaultmigrate/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func collect(t *testing.T, walk func(context.Context, func(domain.SourceItem) error) error) []domain.SourceItem {
	t.Helper()
	var items []domain.SourceItem
	err := walk(context.Background(), func(item domain.SourceItem) error {
		items = append(items, item)
		return nil
	})
	require.NoError(t, err)
	return items
}

// makeUnreadable removes read permission, skipping the test when that has no
// effect (e.g. running as root).
func makeUnreadable(t *testing.T, path string) {
	t.Helper()
	if err := os.Chmod(path, 0000); err != nil {
		t.Skipf("cannot change permissions: %v", err)
	}
	t.Cleanup(func() { os.Chmod(path, 0644) })
	if f, err := os.Open(path); err == nil {
		f.Close()
		t.Skip("file is still readable, permissions are not enforced")
	}
}

func TestNotionWalker_MarkdownOnly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Q3 Revenue Report 8f14e45fceea167a5a36dedd4bea2543.md"), "Revenue grew")
	writeFile(t, filepath.Join(root, "Sub", "Plan.md"), "roadmap")
	writeFile(t, filepath.Join(root, "Sub", "diagram.png"), "binary")
	writeFile(t, filepath.Join(root, "UPPER.MD"), "not markdown for notion")

	w := NewNotionWalker(root, nil)
	items := collect(t, func(ctx context.Context, fn func(domain.SourceItem) error) error {
		return w.Walk(ctx, fn)
	})

	require.Len(t, items, 2)

	assert.Equal(t, "Q3 Revenue Report", items[0].Title)
	assert.Equal(t, "Revenue grew", items[0].Content)
	assert.Equal(t, domain.SourceNotion, items[0].Type)
	assert.Equal(t, filepath.Join(root, "Q3 Revenue Report 8f14e45fceea167a5a36dedd4bea2543.md"), items[0].Path)
	assert.Empty(t, items[0].Ext)

	assert.Equal(t, "Plan", items[1].Title)
	assert.Equal(t, filepath.Join("Sub", "Plan.md"), items[1].RelPath)
	assert.True(t, filepath.IsAbs(items[1].Path))
}

func TestNotionWalker_SkipsUnreadablePage(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Good.md"), "ok")
	bad := filepath.Join(root, "Locked.md")
	writeFile(t, bad, "secret")
	makeUnreadable(t, bad)

	w := NewNotionWalker(root, nil)
	items := collect(t, func(ctx context.Context, fn func(domain.SourceItem) error) error {
		return w.Walk(ctx, fn)
	})

	require.Len(t, items, 1)
	assert.Equal(t, "Good", items[0].Title)
	assert.Equal(t, 1, w.Unreadable())
}

func TestBoxWalker_AllFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "budget.xlsx"), "\x00\x01")
	writeFile(t, filepath.Join(root, "docs", "Guide.MD"), "# Guide\nhello")

	w := NewBoxWalker(root, nil)
	items := collect(t, func(ctx context.Context, fn func(domain.SourceItem) error) error {
		return w.Walk(ctx, fn)
	})

	require.Len(t, items, 2)

	budget := items[0]
	assert.Equal(t, "budget", budget.Title)
	assert.Equal(t, ".xlsx", budget.Ext)
	assert.Equal(t, domain.SourceBox, budget.Type)
	assert.Contains(t, budget.Content, "budget.xlsx")
	assert.Contains(t, budget.Content, budget.Path)
	assert.NotContains(t, budget.Content, "\x00")

	guide := items[1]
	assert.Equal(t, "Guide", guide.Title)
	assert.Equal(t, ".md", guide.Ext)
	assert.Equal(t, "# Guide\nhello", guide.Content)
}

func TestBoxWalker_PlaceholderForUnreadableMarkdown(t *testing.T) {
	root := t.TempDir()
	bad := filepath.Join(root, "Locked.md")
	writeFile(t, bad, "hidden")
	makeUnreadable(t, bad)

	w := NewBoxWalker(root, nil)
	items := collect(t, func(ctx context.Context, fn func(domain.SourceItem) error) error {
		return w.Walk(ctx, fn)
	})

	require.Len(t, items, 1)
	assert.Contains(t, items[0].Content, "(Error reading file:")
	assert.Equal(t, 1, w.Unreadable())
}

func TestNotionWalker_SkipsInvalidUTF8(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Good.md"), "café")
	writeFile(t, filepath.Join(root, "Latin1.md"), "caf\xe9 \xff")

	w := NewNotionWalker(root, nil)
	items := collect(t, func(ctx context.Context, fn func(domain.SourceItem) error) error {
		return w.Walk(ctx, fn)
	})

	require.Len(t, items, 1)
	assert.Equal(t, "Good", items[0].Title)
	assert.Equal(t, "café", items[0].Content)
	assert.Equal(t, 1, w.Unreadable())
}

func TestBoxWalker_PlaceholderForInvalidUTF8(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Latin1.md"), "caf\xe9 \xff")

	w := NewBoxWalker(root, nil)
	items := collect(t, func(ctx context.Context, fn func(domain.SourceItem) error) error {
		return w.Walk(ctx, fn)
	})

	require.Len(t, items, 1)
	assert.Contains(t, items[0].Content, "(Error reading file:")
	assert.Contains(t, items[0].Content, ErrInvalidText.Error())
	assert.NotContains(t, items[0].Content, "\xff")
	assert.Equal(t, 1, w.Unreadable())
}

func symlinkOrSkip(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
}

func TestBoxWalker_SymlinkedFile(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "box")
	other := filepath.Join(base, "other")
	writeFile(t, filepath.Join(other, "budget.xlsx"), "binary")
	writeFile(t, filepath.Join(other, "nested", "inner.md"), "inner")
	require.NoError(t, os.MkdirAll(root, 0755))
	symlinkOrSkip(t, filepath.Join(other, "budget.xlsx"), filepath.Join(root, "budget.xlsx"))
	symlinkOrSkip(t, filepath.Join(other, "nested"), filepath.Join(root, "linked-dir"))
	symlinkOrSkip(t, filepath.Join(other, "missing.md"), filepath.Join(root, "broken.md"))

	w := NewBoxWalker(root, nil)
	items := collect(t, func(ctx context.Context, fn func(domain.SourceItem) error) error {
		return w.Walk(ctx, fn)
	})

	require.Len(t, items, 1)
	assert.Equal(t, "budget", items[0].Title)
	assert.Equal(t, filepath.Join(root, "budget.xlsx"), items[0].Path)
	assert.Contains(t, items[0].Content, "budget.xlsx")
}

func TestNotionWalker_SymlinkedPage(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "notion")
	writeFile(t, filepath.Join(base, "shared", "Roadmap.md"), "next quarter")
	require.NoError(t, os.MkdirAll(root, 0755))
	symlinkOrSkip(t, filepath.Join(base, "shared", "Roadmap.md"), filepath.Join(root, "Roadmap.md"))

	w := NewNotionWalker(root, nil)
	items := collect(t, func(ctx context.Context, fn func(domain.SourceItem) error) error {
		return w.Walk(ctx, fn)
	})

	require.Len(t, items, 1)
	assert.Equal(t, "next quarter", items[0].Content)
}

func TestWalker_ExcludesMappingFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.md"), "a")
	writeFile(t, filepath.Join(root, "mapping.json"), "{}")

	w := NewBoxWalker(root, nil).Exclude(filepath.Join(root, "vault"), filepath.Join(root, "mapping.json"))
	items := collect(t, func(ctx context.Context, fn func(domain.SourceItem) error) error {
		return w.Walk(ctx, fn)
	})

	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].Title)
}

func TestWalker_ExcludesVault(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.md"), "a")
	writeFile(t, filepath.Join(root, "vault", "Knowledge", "b.md"), "b")

	w := NewBoxWalker(root, nil).Exclude(filepath.Join(root, "vault"))
	items := collect(t, func(ctx context.Context, fn func(domain.SourceItem) error) error {
		return w.Walk(ctx, fn)
	})

	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].Title)
}

func TestWalker_HandlerErrorStopsWalk(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.md"), "a")
	writeFile(t, filepath.Join(root, "b.md"), "b")

	w := NewNotionWalker(root, nil)
	calls := 0
	err := w.Walk(context.Background(), func(domain.SourceItem) error {
		calls++
		return os.ErrPermission
	})

	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Equal(t, 1, calls)
}

func TestWalker_CancelledContext(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.md"), "a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewNotionWalker(root, nil).Walk(ctx, func(domain.SourceItem) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
