// Package clip wraps the system clipboard. When the platform clipboard is
// unavailable (headless tests, missing display) it degrades to an
// in-process buffer so copy and paste still round-trip within the program.
package clip

import (
	"sync"

	"golang.design/x/clipboard"
)

var (
	once      sync.Once
	available bool

	mu       sync.Mutex
	fallback string
)

func ensure() bool {
	once.Do(func() {
		available = clipboard.Init() == nil
	})
	return available
}

// Read returns the current clipboard text.
func Read() string {
	if ensure() {
		return string(clipboard.Read(clipboard.FmtText))
	}
	mu.Lock()
	defer mu.Unlock()
	return fallback
}

// Write places text on the clipboard.
func Write(text string) {
	if ensure() {
		clipboard.Write(clipboard.FmtText, []byte(text))
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fallback = text
}
