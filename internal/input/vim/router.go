package vim

import (
	"strings"
	"sync"
	"unicode"

	"github.com/dshills/vimkit/internal/clipboard"
)

// ClipboardPolicy controls how implicit register writes and unnamed
// reads interact with the system clipboard.
type ClipboardPolicy uint8

const (
	// ClipboardNever keeps all register traffic internal.
	ClipboardNever ClipboardPolicy = iota

	// ClipboardOnYank mirrors yanks to the clipboard and prefers the
	// clipboard on read only when an external actor has changed it.
	ClipboardOnYank

	// ClipboardAlways routes every implicit write and unnamed read
	// through the system clipboard.
	ClipboardAlways
)

// String returns the configuration name of the policy.
func (p ClipboardPolicy) String() string {
	switch p {
	case ClipboardNever:
		return "never"
	case ClipboardOnYank:
		return "on_yank"
	case ClipboardAlways:
		return "always"
	default:
		return "unknown"
	}
}

// SelectionAccessor exposes the cursor state the router needs from the
// host editor: the file containing the newest cursor, for register %.
type SelectionAccessor interface {
	// FilePath returns the path of the buffer containing the newest
	// cursor. The second return value is false for unsaved buffers.
	FilePath() (string, bool)
}

// Router implements the register write/read policy: named and special
// register dispatch, numbered delete history, uppercase append, and
// system clipboard interop.
type Router struct {
	store     *RegisterStore
	clip      clipboard.Provider
	policy    func() ClipboardPolicy
	selection SelectionAccessor

	mu          sync.Mutex
	lastYank    string
	hasLastYank bool
}

// NewRouter creates a router over the given store and clipboard
// provider. The policy function is consulted on every write and read so
// configuration reloads take effect immediately; a nil policy function
// defaults to ClipboardOnYank.
func NewRouter(store *RegisterStore, clip clipboard.Provider, policy func() ClipboardPolicy) *Router {
	if policy == nil {
		policy = func() ClipboardPolicy { return ClipboardOnYank }
	}
	return &Router{
		store:  store,
		clip:   clip,
		policy: policy,
	}
}

// SetSelectionAccessor attaches the host cursor accessor used to derive
// register %.
func (rt *Router) SetSelectionAccessor(sel SelectionAccessor) {
	rt.selection = sel
}

// Store returns the underlying register store.
func (rt *Router) Store() *RegisterStore {
	return rt.store
}

// WriteRegister routes content into the register store and, depending
// on the register name and clipboard policy, the system clipboard.
// A zero name means no explicit register was given (an implicit write
// from a plain delete, change, or yank).
func (rt *Router) WriteRegister(content Register, name rune, isYank, linewise bool) {
	if name != 0 {
		rt.writeExplicit(content, name)
		return
	}
	rt.writeImplicit(content, isYank, linewise)
}

func (rt *Router) writeExplicit(content Register, name rune) {
	lower := unicode.ToLower(name)
	if lower != name {
		// Uppercase register: text-level append. Selection shapes are
		// dropped; append semantics with multiple cursors are undefined.
		prev, _ := rt.store.Get(lower)
		merged := Register{Text: prev.Text + content.Text}
		rt.store.Set(lower, merged)
		rt.store.Set('"', merged)
		return
	}

	switch lower {
	case '_':
		// Black hole: the write is discarded entirely.
	case ':', '.', '%', '#', '=', '/':
		// Read-only or derived registers never store a write, but the
		// unnamed register still tracks it.
		rt.store.Set('"', content)
	case '+':
		rt.store.Set('"', content)
		rt.writeClipboard(content)
	case '*':
		rt.store.Set('"', content)
		rt.writePrimary(content)
	case '"':
		// An explicit unnamed write behaves like a yank for chaining.
		rt.store.Set('"', content)
		rt.store.Set('0', content)
	default:
		rt.store.Set('"', content)
		rt.store.Set(lower, content)
	}
}

func (rt *Router) writeImplicit(content Register, isYank, linewise bool) {
	policy := rt.policy()
	if policy == ClipboardAlways || (policy == ClipboardOnYank && isYank) {
		rt.setLastYank(content.Text)
		rt.writeClipboard(content)
	} else {
		// Track the current clipboard text so a later read can tell an
		// external change from our own unmirrored yank.
		rt.readBackClipboard()
	}

	rt.store.Set('"', content)
	if isYank {
		rt.store.Set('0', content)
		return
	}

	multiline := strings.Contains(content.Text, "\n")
	if !multiline {
		rt.store.Set('-', content)
	}
	if linewise || multiline {
		// Shift the delete history: insert at 1, chain each displaced
		// entry into the next slot, discard whatever falls out of 9.
		moved := content
		for slot := '1'; slot <= '9'; slot++ {
			prev, ok := rt.store.Set(slot, moved)
			if !ok {
				break
			}
			moved = prev
		}
	}
}

// ReadRegister resolves a register name to content. A zero name means
// no explicit register was given; it reads the unnamed register subject
// to the clipboard policy. The second return value is false when the
// register has no content.
func (rt *Router) ReadRegister(name rune) (Register, bool) {
	if name == 0 || name == '"' {
		switch rt.policy() {
		case ClipboardAlways:
			if reg, ok := rt.readClipboard(); ok {
				return reg, true
			}
			// Unavailable or empty clipboard falls back to the store.
		case ClipboardOnYank:
			if rt.clipboardIsNewer() {
				return rt.readClipboard()
			}
		}
		return rt.store.Get('"')
	}

	lower := unicode.ToLower(name)
	switch lower {
	case '_', ':', '.', '#', '=':
		return Register{}, false
	case '+':
		return rt.readClipboard()
	case '*':
		return rt.readPrimary()
	case '%':
		if rt.selection == nil {
			return Register{}, false
		}
		path, ok := rt.selection.FilePath()
		if !ok {
			return Register{}, false
		}
		return Register{Text: path}, true
	default:
		return rt.store.Get(lower)
	}
}

// clipboardIsNewer reports whether the system clipboard holds text that
// this router did not write itself. An unreadable clipboard is never
// newer; a clipboard read before any tracked yank always is.
func (rt *Router) clipboardIsNewer() bool {
	if rt.clip == nil {
		return false
	}
	item, ok := rt.clip.Read()
	if !ok {
		return false
	}
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if !rt.hasLastYank {
		return true
	}
	return item.Text != rt.lastYank
}

func (rt *Router) setLastYank(text string) {
	rt.mu.Lock()
	rt.lastYank = text
	rt.hasLastYank = true
	rt.mu.Unlock()
}

func (rt *Router) readBackClipboard() {
	if rt.clip == nil {
		return
	}
	item, ok := rt.clip.Read()
	rt.mu.Lock()
	rt.lastYank = item.Text
	rt.hasLastYank = ok
	rt.mu.Unlock()
}

func (rt *Router) writeClipboard(content Register) {
	if rt.clip == nil {
		return
	}
	// Clipboard failures degrade to internal registers.
	_ = rt.clip.Write(content.Item())
}

func (rt *Router) writePrimary(content Register) {
	if rt.clip == nil {
		return
	}
	if rt.clip.SupportsPrimary() {
		_ = rt.clip.WritePrimary(content.Item())
		return
	}
	_ = rt.clip.Write(content.Item())
}

func (rt *Router) readClipboard() (Register, bool) {
	if rt.clip == nil {
		return Register{}, false
	}
	item, ok := rt.clip.Read()
	if !ok {
		return Register{}, false
	}
	return RegisterFromItem(item), true
}

func (rt *Router) readPrimary() (Register, bool) {
	if rt.clip == nil {
		return Register{}, false
	}
	if rt.clip.SupportsPrimary() {
		item, ok := rt.clip.ReadPrimary()
		if !ok {
			return Register{}, false
		}
		return RegisterFromItem(item), true
	}
	return rt.readClipboard()
}
