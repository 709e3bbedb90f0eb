// Package clipboard wraps the system clipboard behind a small write-only
// interface so the packing pipeline can be tested without touching the real
// clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// Writer is a write-only UTF-8 text sink.
type Writer interface {
	Write(text string) error
}

type system struct{}

// System returns a Writer backed by the OS clipboard.
func System() Writer {
	return system{}
}

func (system) Write(text string) error {
	return clipboard.WriteAll(text)
}
