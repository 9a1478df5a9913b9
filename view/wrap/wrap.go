// Package wrap implements the soft-wrap layout: splitting logical lines
// into visual segments that fit a wrap width. It is a leaf package; layouts
// are recomputed fully on every pass and never persisted.
package wrap

import "strings"

// MinWidth is the floor callers apply to viewport-derived wrap widths so
// very narrow viewports do not degenerate into one-byte columns.
const MinWidth = 20

// VisualLine is a contiguous slice of one logical line that fits within the
// wrap width. Offset is a byte count from the start of the logical line, so
// concatenating a line's segments reproduces the line exactly.
type VisualLine struct {
	Line   int
	Offset int
	Text   string
}

// End returns the byte offset just past the segment.
func (v VisualLine) End() int { return v.Offset + len(v.Text) }

// Line splits one logical line into visual segments. A blank line produces
// exactly one empty segment, never zero. Breaks happen after the last space
// inside the width window, keeping the space as trailing content so column
// math stays contiguous; without a space the break is a hard one at the
// width boundary.
func Line(text string, line, width int) []VisualLine {
	if width < 1 {
		width = 1
	}
	if len(text) <= width {
		return []VisualLine{{Line: line, Text: text}}
	}

	segments := make([]VisualLine, 0, len(text)/width+1)
	remaining := text
	offset := 0
	for len(remaining) > 0 {
		if len(remaining) <= width {
			segments = append(segments, VisualLine{Line: line, Offset: offset, Text: remaining})
			break
		}
		breakAt := width
		if i := strings.LastIndexByte(remaining[:width], ' '); i >= 0 {
			breakAt = i + 1
		}
		segments = append(segments, VisualLine{Line: line, Offset: offset, Text: remaining[:breakAt]})
		offset += breakAt
		remaining = remaining[breakAt:]
	}
	return segments
}

// Document wraps every logical line and flattens the result in order.
func Document(lines []string, width int) []VisualLine {
	visual := make([]VisualLine, 0, len(lines))
	for i, line := range lines {
		visual = append(visual, Line(line, i, width)...)
	}
	return visual
}

// RowForPosition returns the index of the visual line containing the given
// logical line and byte column. The segment end is inclusive so a cursor can
// sit after the last character of a segment; on a wrap boundary the earlier
// segment wins.
func RowForPosition(visual []VisualLine, line, column int) (int, bool) {
	for i, vl := range visual {
		if vl.Line != line {
			continue
		}
		if column >= vl.Offset && column <= vl.End() {
			return i, true
		}
	}
	return 0, false
}
