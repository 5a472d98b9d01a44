package shared

import "github.com/atotto/clipboard"

// Clipboard defines the interface for clipboard operations.
type Clipboard interface {
	Copy(text string) error
}

// SystemClipboard implements Clipboard using the system clipboard.
type SystemClipboard struct{}

// Copy copies text to the system clipboard.
func (SystemClipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// MemoryClipboard records the last copied text. Used in tests.
type MemoryClipboard struct {
	Text string
}

// Copy stores text.
func (c *MemoryClipboard) Copy(text string) error {
	c.Text = text
	return nil
}
