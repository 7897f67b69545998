package dispatcher

import "github.com/dshills/vimkit/internal/input"

// Handler processes the actions of one namespace.
type Handler interface {
	// Handle executes the action and returns a result.
	Handle(action input.Action) Result

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool
}

// HandlerFunc adapts a function to the Handler interface. It accepts
// every action routed to it; the registry ensures correct routing.
type HandlerFunc func(action input.Action) Result

// Handle implements Handler.Handle.
func (f HandlerFunc) Handle(action input.Action) Result {
	if f == nil {
		return Errorf("handler function is nil")
	}
	return f(action)
}

// CanHandle implements Handler.CanHandle.
func (f HandlerFunc) CanHandle(string) bool {
	return true
}
