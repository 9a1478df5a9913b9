// Package grid models the read-only cell grid handed over by a terminal
// emulation state machine once per frame: styled cells grouped into rows,
// a cursor descriptor, and the scrollback display offset.
package grid

// Mode is the subset of terminal display modes this core reacts to.
type Mode uint8

const (
	// ModeShowCursor mirrors DECTCEM (ESC[?25h/l). TUI programs hide the
	// terminal cursor and render their own as styled grid cells.
	ModeShowCursor Mode = 1 << iota
)

func (m Mode) Contains(flag Mode) bool {
	return m&flag == flag
}

type CursorShape int

const (
	CursorShapeBlock CursorShape = iota
	CursorShapeHollowBlock
	CursorShapeBeam
	CursorShapeUnderline
	CursorShapeHidden
)

func (s CursorShape) String() string {
	switch s {
	case CursorShapeBlock:
		return "block"
	case CursorShapeHollowBlock:
		return "hollow_block"
	case CursorShapeBeam:
		return "beam"
	case CursorShapeUnderline:
		return "underline"
	case CursorShapeHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Cursor describes the grid cursor as reported by the emulator. X/Y are in
// cells; Y is relative to the active screen, so the display offset must be
// added to place it in viewport rows. Rune is the character under the
// cursor, used for inverted repaint under a block cursor.
type Cursor struct {
	X     int
	Y     int
	Shape CursorShape
	Rune  rune
}

// Snapshot is one frame's immutable view of the grid.
type Snapshot struct {
	Rows []Row

	Cursor Cursor

	// DisplayOffset is the scrollback position: how many rows the viewport
	// is shifted from the active screen.
	DisplayOffset int

	Mode Mode
}
