package clipboard

import "sync"

// Memory is an in-process Provider used for tests and headless hosts.
// It preserves selection metadata and can optionally simulate a primary
// selection.
type Memory struct {
	mu         sync.Mutex
	item       Item
	hasItem    bool
	primary    Item
	hasPrimary bool

	// primarySupported controls SupportsPrimary.
	primarySupported bool
}

// NewMemory creates an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryWithPrimary creates an in-memory clipboard that also exposes
// a primary selection.
func NewMemoryWithPrimary() *Memory {
	return &Memory{primarySupported: true}
}

// Write stores the item as the clipboard content.
func (m *Memory) Write(item Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.item = item
	m.hasItem = true
	return nil
}

// Read returns the stored clipboard content.
func (m *Memory) Read() (Item, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.item, m.hasItem
}

// SupportsPrimary reports whether this instance simulates a primary
// selection.
func (m *Memory) SupportsPrimary() bool {
	return m.primarySupported
}

// WritePrimary stores the item as the primary-selection content.
func (m *Memory) WritePrimary(item Item) error {
	if !m.primarySupported {
		return ErrNoPrimary
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.primary = item
	m.hasPrimary = true
	return nil
}

// ReadPrimary returns the stored primary-selection content.
func (m *Memory) ReadPrimary() (Item, bool) {
	if !m.primarySupported {
		return Item{}, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.primary, m.hasPrimary
}

// Clear removes clipboard and primary content. Used by tests to model
// an empty system clipboard.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.item = Item{}
	m.hasItem = false
	m.primary = Item{}
	m.hasPrimary = false
}
