package input

// ActionSource indicates the origin of an action.
type ActionSource uint8

const (
	// SourceKeyboard indicates the action originated from keyboard input.
	SourceKeyboard ActionSource = iota
	// SourceReplay indicates the action originated from dot-repeat or
	// macro playback.
	SourceReplay
	// SourceAPI indicates the action originated from an API call.
	SourceAPI
)

// String returns a string representation of the action source.
func (s ActionSource) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceReplay:
		return "replay"
	case SourceAPI:
		return "api"
	default:
		return "unknown"
	}
}

// ActionArgs holds arguments for an action.
type ActionArgs struct {
	// Register is the explicit register for yank/delete/paste operations
	// (a-z, 0-9, ", +, *, etc.). Zero means no register was given.
	Register rune

	// Text for insert/replace operations.
	Text string

	// Extra holds additional key-value pairs for extensibility.
	Extra map[string]any
}

// Get retrieves a value from Extra.
func (a ActionArgs) Get(key string) (any, bool) {
	if a.Extra == nil {
		return nil, false
	}
	v, ok := a.Extra[key]
	return v, ok
}

// GetString retrieves a string value from Extra.
func (a ActionArgs) GetString(key string) string {
	if v, ok := a.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetInt retrieves an int value from Extra.
func (a ActionArgs) GetInt(key string) int {
	if v, ok := a.Get(key); ok {
		switch n := v.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}

// Action represents a command to be executed by the dispatcher.
// An Action is an opaque identity-plus-parameters value: the replay log
// captures it without inspecting its internals and re-dispatches it
// through the same entry point used for live input.
type Action struct {
	// Name is the command identifier (e.g., "editor.delete", "cursor.left").
	Name string

	// Args contains command-specific arguments.
	Args ActionArgs

	// Source indicates where this action originated.
	Source ActionSource

	// Count is the repeat count (from a count prefix). 0 means 1.
	Count int
}

// Clone returns a deep copy of the action. The Extra map is copied so
// a recorded action cannot be mutated by later dispatches.
func (a Action) Clone() Action {
	if a.Args.Extra != nil {
		extra := make(map[string]any, len(a.Args.Extra))
		for k, v := range a.Args.Extra {
			extra[k] = v
		}
		a.Args.Extra = extra
	}
	return a
}

// WithCount returns a copy of the action with the specified count.
func (a Action) WithCount(count int) Action {
	a.Count = count
	return a
}

// WithRegister returns a copy of the action with the specified register.
func (a Action) WithRegister(register rune) Action {
	a.Args.Register = register
	return a
}
