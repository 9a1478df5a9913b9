// Package virtual selects the visible sub-range of rows for a scroll
// position. Everything here is a pure function recomputed from scratch each
// pass; cost downstream is bounded by viewport size, not document size.
package virtual

import "math"

// Window returns the half-open row range [first, last) visible for the given
// scroll offset. The count includes one extra row to cover a partially
// visible trailing row.
func Window(scrollOffset, lineHeight, visibleHeight float64, total int) (first, last int) {
	if total <= 0 || lineHeight <= 0 {
		return 0, 0
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}
	first = int(math.Floor(scrollOffset / lineHeight))
	if first > total {
		first = total
	}
	count := int(math.Ceil(visibleHeight/lineHeight)) + 1
	last = first + count
	if last > total {
		last = total
	}
	return first, last
}

// ContentHeight is the pixel height of the fully laid out content.
func ContentHeight(total int, lineHeight float64) float64 {
	if total < 0 {
		return 0
	}
	return float64(total) * lineHeight
}

// ClampScroll enforces 0 <= scroll <= max(0, contentHeight-visibleHeight).
func ClampScroll(scroll, contentHeight, visibleHeight float64) float64 {
	maxScroll := contentHeight - visibleHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if scroll < 0 {
		return 0
	}
	if scroll > maxScroll {
		return maxScroll
	}
	return scroll
}

// EnsureVisible returns the minimal scroll adjustment that brings the row
// spanning [rowTop, rowTop+lineHeight) fully inside the viewport. When the
// row is already visible the scroll offset is returned unchanged.
func EnsureVisible(scroll, rowTop, lineHeight, visibleHeight float64) float64 {
	if rowTop < scroll {
		scroll = rowTop
	} else if rowTop+lineHeight > scroll+visibleHeight {
		scroll = rowTop + lineHeight - visibleHeight
	}
	if scroll < 0 {
		scroll = 0
	}
	return scroll
}
