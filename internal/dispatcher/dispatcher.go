// Package dispatcher routes actions to handlers by namespace.
//
// The dispatcher is the single command entry point of the engine: live
// keystrokes, dot-repeat, and macro playback all submit actions through
// Dispatch, so replayed actions have no privileged semantics.
package dispatcher

import (
	"strings"
	"sync"

	"github.com/dshills/vimkit/internal/input"
)

// Dispatcher routes actions to registered handlers.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// New creates an empty dispatcher.
func New() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string]Handler),
	}
}

// Register binds a handler to a namespace (the action-name segment
// before the first dot; "editor.delete" belongs to "editor"). A later
// registration for the same namespace replaces the earlier one.
func (d *Dispatcher) Register(namespace string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[namespace] = h
}

// Unregister removes the handler for a namespace.
func (d *Dispatcher) Unregister(namespace string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.handlers, namespace)
}

// Dispatch routes the action to its namespace handler and returns the
// handler's result. Actions with no registered handler produce an error
// result rather than a panic so replay can skip them and continue.
func (d *Dispatcher) Dispatch(action input.Action) Result {
	namespace := actionNamespace(action.Name)

	d.mu.RLock()
	h, ok := d.handlers[namespace]
	d.mu.RUnlock()

	if !ok || !h.CanHandle(action.Name) {
		return Errorf("no handler for action %q", action.Name)
	}
	return h.Handle(action)
}

// actionNamespace extracts the namespace from an action name.
func actionNamespace(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}
