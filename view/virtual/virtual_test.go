package virtual

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestWindow_TopOfContent(t *testing.T) {
	first, last := Window(0, 20, 100, 50)
	assert.Equal(t, 0, first)
	// ceil(100/20)+1 rows to cover a partially visible trailing row.
	assert.Equal(t, 6, last)
}

func TestWindow_ScrolledMidContent(t *testing.T) {
	first, last := Window(45, 20, 100, 50)
	assert.Equal(t, 2, first)
	assert.Equal(t, 8, last)
}

func TestWindow_ClampsToTotal(t *testing.T) {
	first, last := Window(90, 20, 100, 7)
	assert.Equal(t, 4, first)
	assert.Equal(t, 7, last)
}

func TestWindow_EmptyContent(t *testing.T) {
	first, last := Window(100, 20, 100, 0)
	assert.Equal(t, 0, first)
	assert.Equal(t, 0, last)
}

func TestWindow_ZeroLineHeight(t *testing.T) {
	first, last := Window(0, 0, 100, 10)
	assert.Equal(t, 0, first)
	assert.Equal(t, 0, last)
}

func TestClampScroll(t *testing.T) {
	assert.Equal(t, 0.0, ClampScroll(-5, 1000, 100))
	assert.Equal(t, 900.0, ClampScroll(2000, 1000, 100))
	assert.Equal(t, 300.0, ClampScroll(300, 1000, 100))
	// Content shorter than the viewport pins the scroll at zero.
	assert.Equal(t, 0.0, ClampScroll(50, 80, 100))
}

func TestEnsureVisible_AboveViewport(t *testing.T) {
	scroll := EnsureVisible(200, 60, 20, 100)
	assert.Equal(t, 60.0, scroll)
}

func TestEnsureVisible_BelowViewport(t *testing.T) {
	scroll := EnsureVisible(0, 180, 20, 100)
	assert.Equal(t, 100.0, scroll)
}

func TestEnsureVisible_AlreadyVisibleUnchanged(t *testing.T) {
	assert.Equal(t, 40.0, EnsureVisible(40, 60, 20, 100))
}

func TestEnsureVisible_Containment(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lineHeight := float64(rapid.IntRange(1, 40).Draw(rt, "lineHeight"))
		visible := float64(rapid.IntRange(1, 50).Draw(rt, "visibleRows")) * lineHeight
		row := rapid.IntRange(0, 5000).Draw(rt, "row")
		scroll := float64(rapid.IntRange(0, 100000).Draw(rt, "scroll"))

		rowTop := float64(row) * lineHeight
		adjusted := EnsureVisible(scroll, rowTop, lineHeight, visible)

		assert.GreaterOrEqual(rt, rowTop, adjusted)
		assert.LessOrEqual(rt, rowTop+lineHeight, adjusted+visible)
	})
}
