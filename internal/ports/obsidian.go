package ports

// ObsidianOpener opens migrated documents in Obsidian
type ObsidianOpener interface {
	// OpenFile opens an absolute path inside the vault via the obsidian:// URI scheme
	OpenFile(filePath string) error
}
