package vim

import (
	"sync"

	"github.com/dshills/vimkit/internal/clipboard"
)

// Register holds previously yanked, deleted, or changed text plus
// optional per-cursor selection shapes. A Register value is never
// mutated in place; writes replace the stored value wholesale.
type Register struct {
	// Text is the register content.
	Text string

	// Selections records one slice shape per originating cursor so a
	// multi-cursor paste can reconstruct its geometry. Nil when the
	// content came from a single cursor or an external source.
	Selections []clipboard.Selection
}

// Item converts the register into a clipboard payload.
func (r Register) Item() clipboard.Item {
	return clipboard.Item{Text: r.Text, Selections: cloneSelections(r.Selections)}
}

// RegisterFromItem converts a clipboard payload into a register value.
func RegisterFromItem(item clipboard.Item) Register {
	return Register{Text: item.Text, Selections: cloneSelections(item.Selections)}
}

// clone returns a copy that shares no mutable state with the receiver.
func (r Register) clone() Register {
	return Register{Text: r.Text, Selections: cloneSelections(r.Selections)}
}

func cloneSelections(sels []clipboard.Selection) []clipboard.Selection {
	if sels == nil {
		return nil
	}
	out := make([]clipboard.Selection, len(sels))
	copy(out, sels)
	return out
}

// RegisterStore maps single-character register names to their contents.
// It performs no name validation; routing policy lives in the Router.
type RegisterStore struct {
	mu        sync.Mutex
	registers map[rune]Register
}

// NewRegisterStore creates an empty register store.
func NewRegisterStore() *RegisterStore {
	return &RegisterStore{
		registers: make(map[rune]Register),
	}
}

// Get returns the register stored under name.
func (rs *RegisterStore) Get(name rune) (Register, bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	reg, ok := rs.registers[name]
	if !ok {
		return Register{}, false
	}
	return reg.clone(), true
}

// Set replaces the register stored under name and returns the displaced
// value. The returned value lets the numbered-register shift chain each
// displaced entry into the next slot.
func (rs *RegisterStore) Set(name rune, reg Register) (Register, bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	prev, ok := rs.registers[name]
	rs.registers[name] = reg.clone()
	return prev, ok
}

// Names returns the register names currently populated. Used by hosts
// to render a register listing.
func (rs *RegisterStore) Names() []rune {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	names := make([]rune, 0, len(rs.registers))
	for name := range rs.registers {
		names = append(names, name)
	}
	return names
}
