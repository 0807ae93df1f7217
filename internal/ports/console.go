package ports

// KeyReader blocks until a single keystroke is available
type KeyReader interface {
	// ReadKey returns the key as typed (e.g. "3"). Named keys use their
	// name, e.g. "esc" or "ctrl+c".
	ReadKey() (string, error)
}

// Clipboard holds text for the user to paste elsewhere
type Clipboard interface {
	WriteAll(text string) error
}
