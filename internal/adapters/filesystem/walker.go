package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"vaultmigrate/internal/domain"
	"vaultmigrate/internal/logging"
	"vaultmigrate/internal/ports"
)

// Ensure walkers implement SourceWalker
var (
	_ ports.SourceWalker = (*NotionWalker)(nil)
	_ ports.SourceWalker = (*BoxWalker)(nil)
)

// ErrInvalidText is returned for markdown files that are not valid UTF-8
var ErrInvalidText = errors.New("invalid UTF-8 text")

// walker holds the traversal shared by both exports
type walker struct {
	root       string
	exclude    []string
	logger     *zap.Logger
	unreadable int
}

func newWalker(root string, logger *zap.Logger) walker {
	return walker{root: absOrSelf(root), logger: logging.OrNop(logger)}
}

// walkFiles calls visit for every regular file under the root in lexical order,
// including symlinks to regular files. Symlinked directories are not followed.
// Directory read errors are logged and the directory is skipped.
func (w *walker) walkFiles(ctx context.Context, visit func(path, rel string) error) error {
	w.unreadable = 0
	return filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Warn("cannot read directory entry", zap.String("path", path), zap.Error(err))
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if w.excluded(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !w.isFile(path, d) {
			return nil
		}

		rel, err := filepath.Rel(w.root, path)
		if err != nil {
			rel = path
		}
		return visit(path, rel)
	})
}

func (w *walker) excluded(path string) bool {
	for _, ex := range w.exclude {
		if path == ex {
			return true
		}
	}
	return false
}

func (w *walker) addExclude(paths []string) {
	for _, p := range paths {
		if p != "" {
			w.exclude = append(w.exclude, absOrSelf(p))
		}
	}
}

// isFile reports whether the entry is a regular file or a symlink to one
func (w *walker) isFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		w.logger.Warn("skipping broken symlink", zap.String("path", path), zap.Error(err))
		return false
	}
	return info.Mode().IsRegular()
}

// readText reads a file that must hold UTF-8 text
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidText)
	}
	return string(data), nil
}

func (w *walker) Root() string {
	return w.root
}

func (w *walker) Unreadable() int {
	return w.unreadable
}

// NotionWalker yields the markdown pages of a Notion export
type NotionWalker struct {
	walker
}

// NewNotionWalker creates a walker for a Notion export root
func NewNotionWalker(root string, logger *zap.Logger) *NotionWalker {
	return &NotionWalker{walker: newWalker(root, logger)}
}

// Exclude skips the given directories and files (typically the vault and
// the mapping file) while walking
func (w *NotionWalker) Exclude(paths ...string) *NotionWalker {
	w.addExclude(paths)
	return w
}

func (w *NotionWalker) Type() domain.SourceType {
	return domain.SourceNotion
}

// Walk visits every .md file. Pages that cannot be read or are not valid
// UTF-8 are logged and skipped.
func (w *NotionWalker) Walk(ctx context.Context, fn ports.ItemHandler) error {
	return w.walkFiles(ctx, func(path, rel string) error {
		name := filepath.Base(path)
		if !strings.HasSuffix(name, domain.MarkdownExt) {
			return nil
		}

		content, err := readText(path)
		if err != nil {
			w.unreadable++
			w.logger.Warn("skipping unreadable page", zap.String("path", path), zap.Error(err))
			return nil
		}

		return fn(domain.SourceItem{
			Path:    path,
			RelPath: rel,
			Title:   domain.NotionTitle(name),
			Content: content,
			Type:    domain.SourceNotion,
		})
	})
}

// BoxWalker yields every file of a Box directory tree
type BoxWalker struct {
	walker
}

// NewBoxWalker creates a walker for a Box root
func NewBoxWalker(root string, logger *zap.Logger) *BoxWalker {
	return &BoxWalker{walker: newWalker(root, logger)}
}

// Exclude skips the given directories and files (typically the vault and
// the mapping file) while walking
func (w *BoxWalker) Exclude(paths ...string) *BoxWalker {
	w.addExclude(paths)
	return w
}

func (w *BoxWalker) Type() domain.SourceType {
	return domain.SourceBox
}

// Walk visits every file. Markdown is imported as text; anything else
// becomes a placeholder that points back at the original file.
func (w *BoxWalker) Walk(ctx context.Context, fn ports.ItemHandler) error {
	return w.walkFiles(ctx, func(path, rel string) error {
		name := filepath.Base(path)
		ext := strings.ToLower(filepath.Ext(name))

		var content string
		if ext == domain.MarkdownExt {
			text, err := readText(path)
			if err != nil {
				w.unreadable++
				w.logger.Warn("using placeholder for unreadable file", zap.String("path", path), zap.Error(err))
				content = domain.ReadErrorBody(err)
			} else {
				content = text
			}
		} else {
			content = domain.PlaceholderBody(name, ext, path)
		}

		return fn(domain.SourceItem{
			Path:    path,
			RelPath: rel,
			Title:   domain.Stem(name),
			Content: content,
			Type:    domain.SourceBox,
			Ext:     ext,
		})
	})
}

func absOrSelf(path string) string {
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
