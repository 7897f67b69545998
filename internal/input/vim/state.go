package vim

// SelectionKind tags the shape of a recorded visual selection.
type SelectionKind uint8

const (
	// SelectionNone means no visual operation has been recorded.
	SelectionNone SelectionKind = iota

	// SelectionVisual is a charwise selection spanning rows and cols.
	SelectionVisual

	// SelectionSingleLine is a charwise selection within one line.
	SelectionSingleLine

	// SelectionVisualBlock is a blockwise selection.
	SelectionVisualBlock

	// SelectionVisualLine is a linewise selection.
	SelectionVisualLine
)

// RecordedSelection captures the shape of the most recent visual-mode
// operation so a dot-repeat can reconstruct an equivalent selection
// without re-deriving it from motion semantics. Rows and Cols are
// meaningful per kind: SingleLine uses only Cols, VisualLine only Rows.
type RecordedSelection struct {
	Kind SelectionKind
	Rows uint32
	Cols uint32
}

// Direction is a search direction.
type Direction uint8

const (
	// DirForward searches toward the end of the buffer.
	DirForward Direction = iota

	// DirBackward searches toward the start of the buffer.
	DirBackward
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirForward:
		return "forward"
	case DirBackward:
		return "backward"
	default:
		return "unknown"
	}
}

// Range is a half-open offset range within a buffer.
type Range struct {
	Start int
	End   int
}

// SearchState carries the context of an in-flight search-and-resume
// workflow: created when a search-driven operator sequence begins,
// consumed when the search resolves or is cancelled.
type SearchState struct {
	// Direction is the search direction.
	Direction Direction

	// Count is the repeat count attached to the search.
	Count int

	// InitialQuery is the query text the search began with.
	InitialQuery string

	// PriorSelections are the selections to restore if the search is
	// cancelled.
	PriorSelections []Range

	// PriorOperator is the operator that was pending when the search
	// began, if any.
	PriorOperator *Operator

	// PriorMode is the mode to return to when the search resolves.
	PriorMode Mode
}
