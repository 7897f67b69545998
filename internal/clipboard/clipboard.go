// Package clipboard abstracts the host system clipboard and, where the
// platform exposes one, the primary selection.
//
// The register router treats the clipboard as a weakly consulted external
// resource: reads and writes are synchronous, failures degrade to the
// router's internal registers, and primary-selection support is a runtime
// capability query rather than a build-time branch.
package clipboard

// Selection records the slice geometry of one originating cursor so a
// multi-cursor yank can be pasted back with the same shape.
type Selection struct {
	// Bytes is the length of this cursor's slice of the item text.
	Bytes int

	// IsEntireLine indicates the slice was a whole-line selection.
	IsEntireLine bool

	// FirstLineIndent is the leading indentation of the slice's first
	// line, used to re-indent on paste.
	FirstLineIndent int
}

// Item is a clipboard payload: text plus optional per-cursor selection
// metadata. Metadata does not survive the system clipboard, which is
// text-only; the in-memory provider carries it intact.
type Item struct {
	Text       string
	Selections []Selection
}

// Provider is the host clipboard accessor consumed by the register
// router.
type Provider interface {
	// Write places an item on the system clipboard.
	Write(item Item) error

	// Read returns the current clipboard item. The second return value
	// is false when the clipboard is empty or unavailable.
	Read() (Item, bool)

	// SupportsPrimary reports whether the platform exposes a primary
	// selection distinct from the clipboard.
	SupportsPrimary() bool

	// WritePrimary places an item on the primary selection. Providers
	// without primary support return ErrNoPrimary.
	WritePrimary(item Item) error

	// ReadPrimary returns the current primary-selection item.
	ReadPrimary() (Item, bool)
}
