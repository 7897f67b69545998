package vim

// Mode represents the active editing mode.
type Mode uint8

const (
	// ModeNormal is command mode, the default.
	ModeNormal Mode = iota

	// ModeInsert inserts typed text into the buffer.
	ModeInsert

	// ModeReplace overwrites text under the cursor.
	ModeReplace

	// ModeVisual is charwise visual selection.
	ModeVisual

	// ModeVisualLine is linewise visual selection.
	ModeVisualLine

	// ModeVisualBlock is blockwise visual selection.
	ModeVisualBlock
)

// String returns the status-line display name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeReplace:
		return "REPLACE"
	case ModeVisual:
		return "VISUAL"
	case ModeVisualLine:
		return "VISUAL LINE"
	case ModeVisualBlock:
		return "VISUAL BLOCK"
	default:
		return "UNKNOWN"
	}
}

// IsVisual returns true for the visual mode variants.
func (m Mode) IsVisual() bool {
	switch m {
	case ModeVisual, ModeVisualLine, ModeVisualBlock:
		return true
	default:
		return false
	}
}
