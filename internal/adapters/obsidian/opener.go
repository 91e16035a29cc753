package obsidian

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"vaultmigrate/internal/ports"
)

// Ensure Opener implements ObsidianOpener
var _ ports.ObsidianOpener = (*Opener)(nil)

// Opener opens migrated documents through the obsidian:// URI scheme.
// The vault name Obsidian knows is the base name of the vault directory.
type Opener struct {
	vaultPath string
	vaultName string
}

// NewOpener creates a new Obsidian opener for the given vault path
func NewOpener(vaultPath string) *Opener {
	if abs, err := filepath.Abs(vaultPath); err == nil {
		vaultPath = abs
	}
	return &Opener{
		vaultPath: vaultPath,
		vaultName: filepath.Base(vaultPath),
	}
}

// OpenFile opens a migrated document. The file must exist inside the vault.
func (o *Opener) OpenFile(filePath string) error {
	uri, err := o.BuildURI(filePath)
	if err != nil {
		return err
	}
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("document missing, run migrate again: %w", err)
	}
	return o.openURI(uri)
}

// BuildURI constructs the obsidian:// URI for a file inside the vault
func (o *Opener) BuildURI(filePath string) (string, error) {
	if abs, err := filepath.Abs(filePath); err == nil {
		filePath = abs
	}

	relPath, err := filepath.Rel(o.vaultPath, filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get relative path: %w", err)
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("file is outside the vault: %s", filePath)
	}

	return fmt.Sprintf("obsidian://open?vault=%s&file=%s",
		escape(o.vaultName),
		escape(filepath.ToSlash(relPath)),
	), nil
}

// escape query-escapes s with spaces as %20, which Obsidian expects
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func (o *Opener) openURI(uri string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "linux":
		cmd = exec.Command("xdg-open", uri)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", uri)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return cmd.Run()
}
