package ports

// EditorLauncher starts an external editor on a file without waiting for it
type EditorLauncher interface {
	// Launch starts editorPath with filePath as its argument. extraArgs, when
	// non-empty, is appended after a single space exactly as given.
	Launch(editorPath, filePath, extraArgs string) error
}
