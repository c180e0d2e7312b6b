package main

import (
	"log"
	"sync"

	"golang.design/x/clipboard"
)

// Clipboard writes text to the system clipboard. Init failures are logged
// once and turn every write into a no-op.
type Clipboard struct {
	once sync.Once
	ok   bool
}

func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// Write reports whether the text reached the clipboard.
func (c *Clipboard) Write(text string) bool {
	c.once.Do(func() {
		if err := clipboard.Init(); err != nil {
			log.Printf("clipboard: init: %v", err)
			return
		}
		c.ok = true
	})
	if !c.ok {
		return false
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return true
}
