package layout

import (
	"strings"
	"testing"

	"github.com/hnimtadd/gridview/view/geom"
	"github.com/hnimtadd/gridview/view/textpos"
	"github.com/hnimtadd/gridview/view/wrap"
	"github.com/stretchr/testify/assert"
)

var testInfo = Info{
	OriginX:    50,
	OriginY:    50,
	LineHeight: 16,
	CharWidth:  8,
	WrapWidth:  20,
}

func TestPositionForPoint_ContentOriginMapsToColumnZero(t *testing.T) {
	visual := wrap.Document([]string{"hello", "world"}, 20)

	pos, ok := PositionForPoint(geom.NewPoint(50, 50), testInfo, visual)
	assert.True(t, ok)
	assert.Equal(t, textpos.Position{Line: 0, Column: 0}, pos)
}

func TestPositionForPoint_RowAndColumn(t *testing.T) {
	visual := wrap.Document([]string{"hello", "world"}, 20)

	pos, ok := PositionForPoint(geom.NewPoint(50+3*8, 50+16), testInfo, visual)
	assert.True(t, ok)
	assert.Equal(t, textpos.Position{Line: 1, Column: 3}, pos)
}

func TestPositionForPoint_RoundsToNearestColumn(t *testing.T) {
	visual := wrap.Document([]string{"hello"}, 20)

	// 4.6 character widths in rounds to column 5.
	pos, ok := PositionForPoint(geom.NewPoint(50+4.6*8, 50), testInfo, visual)
	assert.True(t, ok)
	assert.Equal(t, 5, pos.Column)
}

func TestPositionForPoint_OutsideContentClamps(t *testing.T) {
	visual := wrap.Document([]string{"hi", "there"}, 20)

	pos, ok := PositionForPoint(geom.NewPoint(-1000, -1000), testInfo, visual)
	assert.True(t, ok)
	assert.Equal(t, textpos.Position{Line: 0, Column: 0}, pos)

	pos, ok = PositionForPoint(geom.NewPoint(1e6, 1e6), testInfo, visual)
	assert.True(t, ok)
	assert.Equal(t, textpos.Position{Line: 1, Column: 5}, pos)
}

func TestPositionForPoint_WrappedSegmentAddsOffset(t *testing.T) {
	visual := wrap.Document([]string{strings.Repeat("a", 30)}, 20)
	assert.Len(t, visual, 2)

	pos, ok := PositionForPoint(geom.NewPoint(50+2*8, 50+16), testInfo, visual)
	assert.True(t, ok)
	assert.Equal(t, textpos.Position{Line: 0, Column: 22}, pos)
}

func TestPositionForPoint_ScrolledWindow(t *testing.T) {
	visual := wrap.Document([]string{"a", "b", "c", "d", "e"}, 20)
	info := testInfo
	info.FirstVisible = 2

	pos, ok := PositionForPoint(geom.NewPoint(50, 50), info, visual)
	assert.True(t, ok)
	assert.Equal(t, textpos.Position{Line: 2, Column: 0}, pos)
}

func TestPositionForPoint_NoLayout(t *testing.T) {
	_, ok := PositionForPoint(geom.NewPoint(50, 50), testInfo, nil)
	assert.False(t, ok)
}

func TestCursorRect_PlacesCaret(t *testing.T) {
	visual := wrap.Document([]string{"hello", "world"}, 20)

	rect, ok := CursorRect(textpos.Position{Line: 1, Column: 2}, testInfo, visual, 0, len(visual))
	assert.True(t, ok)
	assert.Equal(t, geom.NewRect(50+2*8, 50+16, CursorWidth, 16), rect)
}

func TestCursorRect_EndOfSegmentInclusive(t *testing.T) {
	visual := wrap.Document([]string{strings.Repeat("a", 25)}, 20)

	// Column 20 sits at the end of the first segment, not the start of
	// the second.
	rect, ok := CursorRect(textpos.Position{Line: 0, Column: 20}, testInfo, visual, 0, len(visual))
	assert.True(t, ok)
	assert.Equal(t, 50.0, rect.Origin.Y)
	assert.Equal(t, 50+20*8.0, rect.Origin.X)
}

func TestCursorRect_OutsideWindow(t *testing.T) {
	visual := wrap.Document([]string{"a", "b", "c"}, 20)

	_, ok := CursorRect(textpos.Position{Line: 2, Column: 0}, testInfo, visual, 0, 2)
	assert.False(t, ok)
}

func TestSelectionRects_SingleLineClipsBothEdges(t *testing.T) {
	visual := wrap.Document([]string{"hello world"}, 20)

	rects := SelectionRects(
		textpos.Position{Line: 0, Column: 2},
		textpos.Position{Line: 0, Column: 7},
		testInfo, visual, 0, len(visual),
	)
	assert.Len(t, rects, 1)
	assert.Equal(t, geom.NewRect(50+2*8, 50, 5*8, 16), rects[0])
}

func TestSelectionRects_ScopedToSelectedLines(t *testing.T) {
	lines := []string{"aaa", "bbb", "ccc", "ddd", "eee"}
	visual := wrap.Document(lines, 20)

	rects := SelectionRects(
		textpos.Position{Line: 1, Column: 1},
		textpos.Position{Line: 3, Column: 2},
		testInfo, visual, 0, len(visual),
	)
	assert.Len(t, rects, 3)
	// No rectangle may sit on rows for lines 0 or 4.
	for _, r := range rects {
		assert.GreaterOrEqual(t, r.Origin.Y, 50+1*16.0)
		assert.Less(t, r.Origin.Y, 50+4*16.0)
	}
}

func TestSelectionRects_InteriorBlankLineStillHighlighted(t *testing.T) {
	visual := wrap.Document([]string{"aa", "", "bb"}, 20)

	rects := SelectionRects(
		textpos.Position{Line: 0, Column: 0},
		textpos.Position{Line: 2, Column: 2},
		testInfo, visual, 0, len(visual),
	)
	assert.Len(t, rects, 3)
	// The empty middle line keeps a visible minimum-width highlight.
	assert.Equal(t, 8.0, rects[1].Size.Width)
	assert.Equal(t, 50+16.0, rects[1].Origin.Y)
}

func TestSelectionRects_EndLineBeforeSegmentSkipped(t *testing.T) {
	// Line 0 wraps into two segments; the selection ends inside the
	// first one, so the second contributes nothing.
	visual := wrap.Document([]string{strings.Repeat("a", 30)}, 20)

	rects := SelectionRects(
		textpos.Position{Line: 0, Column: 0},
		textpos.Position{Line: 0, Column: 10},
		testInfo, visual, 0, len(visual),
	)
	assert.Len(t, rects, 1)
}

func TestSelectionRects_WindowLimitsOutput(t *testing.T) {
	lines := []string{"aaa", "bbb", "ccc", "ddd"}
	visual := wrap.Document(lines, 20)

	rects := SelectionRects(
		textpos.Position{Line: 0, Column: 0},
		textpos.Position{Line: 3, Column: 3},
		testInfo, visual, 1, 3,
	)
	assert.Len(t, rects, 2)
}
