package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrNoPrimary is returned when a primary-selection operation is invoked
// on a provider without primary support.
var ErrNoPrimary = errors.New("clipboard: primary selection not supported")

// System is a Provider backed by the OS clipboard. The underlying
// clipboard is text-only, so selection metadata is dropped on write and
// absent on read.
type System struct{}

// NewSystem creates a system clipboard provider.
func NewSystem() *System {
	return &System{}
}

// Write places the item text on the system clipboard.
func (s *System) Write(item Item) error {
	return clipboard.WriteAll(item.Text)
}

// Read returns the current system clipboard text.
func (s *System) Read() (Item, bool) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return Item{}, false
	}
	return Item{Text: text}, true
}

// SupportsPrimary reports whether the OS exposes a primary selection.
// The underlying library routes through the clipboard on every platform,
// so the system provider never claims primary support.
func (s *System) SupportsPrimary() bool {
	return false
}

// WritePrimary always fails on the system provider.
func (s *System) WritePrimary(Item) error {
	return ErrNoPrimary
}

// ReadPrimary always reports no content on the system provider.
func (s *System) ReadPrimary() (Item, bool) {
	return Item{}, false
}
