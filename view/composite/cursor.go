package composite

import (
	"github.com/hnimtadd/gridview/view/geom"
	"github.com/hnimtadd/gridview/view/grid"
)

const (
	beamWidth       = 2.0
	underlineHeight = 2.0
	hollowStroke    = 1.0
)

// CursorGeometry is the paint geometry for the grid cursor. Rects are the
// rectangles to fill for the resolved shape. Rune, when non-zero, is the
// character under a block cursor to repaint on top in the inverted color so
// text stays legible.
type CursorGeometry struct {
	Shape  grid.CursorShape
	Bounds geom.Rect
	Rects  []geom.Rect
	Rune   rune
}

// ComposeCursor builds the cursor overlay for a snapshot, or nil when the
// cursor should not be drawn: the display mode hides it, or its shape is the
// explicit hidden variant. An unfocused host downgrades any shape to a
// hollow outline.
func ComposeCursor(snap grid.Snapshot, focused bool, m Metrics) *CursorGeometry {
	if !snap.Mode.Contains(grid.ModeShowCursor) {
		return nil
	}
	if snap.Cursor.Shape == grid.CursorShapeHidden {
		return nil
	}

	// Cursor coordinates are active-screen relative; the display offset
	// shifts them into viewport rows.
	row := snap.Cursor.Y + snap.DisplayOffset
	x := m.Origin.X + float64(snap.Cursor.X)*m.CellWidth
	y := m.Origin.Y + float64(row)*m.LineHeight
	bounds := geom.NewRect(x, y, m.CellWidth, m.LineHeight)

	shape := snap.Cursor.Shape
	if !focused {
		shape = grid.CursorShapeHollowBlock
	}

	g := &CursorGeometry{Shape: shape, Bounds: bounds}
	switch shape {
	case grid.CursorShapeBlock:
		g.Rects = []geom.Rect{bounds}
		if r := snap.Cursor.Rune; r != 0 && r != ' ' {
			g.Rune = r
		}
	case grid.CursorShapeHollowBlock:
		g.Rects = []geom.Rect{
			geom.NewRect(x, y, m.CellWidth, hollowStroke),
			geom.NewRect(x, y+m.LineHeight-hollowStroke, m.CellWidth, hollowStroke),
			geom.NewRect(x, y, hollowStroke, m.LineHeight),
			geom.NewRect(x+m.CellWidth-hollowStroke, y, hollowStroke, m.LineHeight),
		}
	case grid.CursorShapeBeam:
		g.Rects = []geom.Rect{geom.NewRect(x, y, beamWidth, m.LineHeight)}
	case grid.CursorShapeUnderline:
		g.Rects = []geom.Rect{
			geom.NewRect(x, y+m.LineHeight-underlineHeight, m.CellWidth, underlineHeight),
		}
	case grid.CursorShapeHidden:
		// Handled above; kept for exhaustiveness.
		return nil
	}
	return g
}
