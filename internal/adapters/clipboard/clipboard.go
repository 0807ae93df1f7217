package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard implements ports.Clipboard using the system clipboard
type Clipboard struct{}

// New creates a system clipboard adapter
func New() *Clipboard {
	return &Clipboard{}
}

// WriteAll replaces the clipboard contents with text
func (c *Clipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}
