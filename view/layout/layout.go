// Package layout is the geometry and offset translator: it maps screen
// points back to logical text positions and logical ranges forward to pixel
// rectangles, always over the visible window only.
package layout

import (
	"math"

	"github.com/hnimtadd/gridview/view/geom"
	"github.com/hnimtadd/gridview/view/textpos"
	"github.com/hnimtadd/gridview/view/utils"
	"github.com/hnimtadd/gridview/view/wrap"
)

// CursorWidth is the painted width of the editor caret.
const CursorWidth = 2.0

// Info is the layout computed by the last pass, carried explicitly between
// the render pass and the mouse handlers that consume it. It is a value, not
// ambient state: handlers receive the Info that produced what is on screen.
type Info struct {
	OriginX    float64
	OriginY    float64
	LineHeight float64
	CharWidth  float64

	// FirstVisible is the absolute index of the first visible visual line.
	FirstVisible int

	// WrapWidth the pass wrapped with, so handlers can rebuild the same
	// visual lines.
	WrapWidth int
}

// PositionForPoint maps a pixel point to the logical position under it.
// Points outside the content clamp to the nearest valid line and column; the
// only false return is an empty layout, which callers treat as "nothing to
// show".
func PositionForPoint(pt geom.Point, info Info, visual []wrap.VisualLine) (textpos.Position, bool) {
	if len(visual) == 0 || info.LineHeight <= 0 || info.CharWidth <= 0 {
		return textpos.Position{}, false
	}

	row := int(math.Floor((pt.Y-info.OriginY)/info.LineHeight)) + info.FirstVisible
	row = utils.Clamp(row, 0, len(visual)-1)
	seg := visual[row]

	col := int(math.Round((pt.X - info.OriginX) / info.CharWidth))
	col = utils.Clamp(col, 0, len(seg.Text))

	return textpos.Position{Line: seg.Line, Column: seg.Offset + col}, true
}

// CursorRect returns the caret rectangle for a cursor position, scanning the
// visible visual lines [first, last). The segment end is inclusive so the
// caret can sit past the last character of a wrapped segment. ok is false
// when the cursor is outside the visible window.
func CursorRect(cursor textpos.Position, info Info, visual []wrap.VisualLine, first, last int) (geom.Rect, bool) {
	if last > len(visual) {
		last = len(visual)
	}
	for idx := first; idx < last; idx++ {
		seg := visual[idx]
		if seg.Line != cursor.Line || cursor.Column < seg.Offset || cursor.Column > seg.End() {
			continue
		}
		x := info.OriginX + float64(cursor.Column-seg.Offset)*info.CharWidth
		y := info.OriginY + float64(idx-first)*info.LineHeight
		return geom.NewRect(x, y, CursorWidth, info.LineHeight), true
	}
	return geom.Rect{}, false
}

// SelectionRects builds one highlight rectangle per visible visual line the
// normalized selection [start, end] touches. The start line clips the left
// edge, the end line clips the right edge, and fully interior lines span the
// whole segment. A zero-width intersection is widened to one character cell
// so line-boundary selections remain visible.
func SelectionRects(start, end textpos.Position, info Info, visual []wrap.VisualLine, first, last int) []geom.Rect {
	if last > len(visual) {
		last = len(visual)
	}
	var rects []geom.Rect
	for idx := first; idx < last; idx++ {
		seg := visual[idx]
		if seg.Line < start.Line || seg.Line > end.Line {
			continue
		}

		selStart := 0
		if seg.Line == start.Line {
			selStart = utils.Clamp(start.Column-seg.Offset, 0, len(seg.Text))
		}
		selEnd := len(seg.Text)
		if seg.Line == end.Line {
			if end.Column <= seg.Offset {
				selEnd = 0
			} else {
				selEnd = utils.Min(end.Column-seg.Offset, len(seg.Text))
			}
		}

		interior := seg.Line > start.Line && seg.Line < end.Line
		if selStart >= selEnd && !interior {
			continue
		}

		y := info.OriginY + float64(idx-first)*info.LineHeight
		startX := info.OriginX + float64(selStart)*info.CharWidth
		endX := info.OriginX + float64(utils.Max(selEnd, selStart+1))*info.CharWidth
		rects = append(rects, geom.FromCorners(
			geom.NewPoint(startX, y),
			geom.NewPoint(endX, y+info.LineHeight),
		))
	}
	return rects
}
