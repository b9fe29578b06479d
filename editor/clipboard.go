package editor

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; the editor ignores them.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (SystemClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }

// MemoryClipboard is a process-local clipboard.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

func (c *MemoryClipboard) ReadText() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

func (c *MemoryClipboard) WriteText(s string) error {
	c.mu.Lock()
	c.text = s
	c.mu.Unlock()
	return nil
}

// fallbackClipboard mirrors writes into memory so copy and paste keep
// working inside the editor when the system clipboard fails (no display,
// missing xclip).
type fallbackClipboard struct {
	system Clipboard
	mem    *MemoryClipboard
}

func (c fallbackClipboard) ReadText() (string, error) {
	if s, err := c.system.ReadText(); err == nil && s != "" {
		return s, nil
	}
	return c.mem.ReadText()
}

func (c fallbackClipboard) WriteText(s string) error {
	_ = c.mem.WriteText(s)
	_ = c.system.WriteText(s)
	return nil
}

// DefaultClipboard returns the system clipboard backed by an in-memory
// fallback, or only the in-memory clipboard where the platform has none.
func DefaultClipboard() Clipboard {
	if clipboard.Unsupported {
		return &MemoryClipboard{}
	}
	return fallbackClipboard{system: SystemClipboard{}, mem: &MemoryClipboard{}}
}
