package grid

import (
	"github.com/hnimtadd/gridview/view/style"
	dw "github.com/mattn/go-runewidth"
)

type Wide int

const (
	// Not a wide character, cell width 1
	WideNarrow Wide = iota

	// WideWide character, cell width 2
	WideWide

	// Spacer after wide character. Do not render.
	WideSpacerTail
)

// Cell is one character cell of a grid snapshot. Cells are produced by the
// terminal emulation state machine and are read-only here.
type Cell struct {
	Rune  rune
	Style style.Style
	Wide  Wide
}

// NewCell classifies the rune's display width the same way the emulator
// does, so spacer cells line up with what was written to the grid.
func NewCell(r rune, st style.Style) Cell {
	wide := WideNarrow
	if dw.RuneWidth(r) == 2 {
		wide = WideWide
	}
	return Cell{Rune: r, Style: st, Wide: wide}
}

// SpacerCell returns the continuation cell placed after a wide cell.
func SpacerCell(st style.Style) Cell {
	return Cell{Style: st, Wide: WideSpacerTail}
}

// The width in grid cells that this cell takes up.
func (c Cell) Width() int {
	if c.Wide == WideWide {
		return 2
	}
	return 1
}

// IsBlank reports whether the cell has no text to render. Spacer tails are
// blank: the wide rune before them owns the glyph.
func (c Cell) IsBlank() bool {
	return c.Rune == 0 || c.Rune == ' ' || c.Wide == WideSpacerTail
}

// Row is one horizontal slice of a grid snapshot. Index is the display row,
// zero-based from the top of the viewport.
type Row struct {
	Index int
	Cells []Cell
}
