package ports

// EditorOpener opens migrated documents in a terminal editor
type EditorOpener interface {
	// OpenFile blocks until the editor exits
	OpenFile(path string) error
}
