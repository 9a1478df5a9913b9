// Package composite compresses a styled grid row into paint units: one
// background rectangle per non-default cell and maximal text runs of
// uniform style. This bounds downstream shaping work by the number of style
// transitions in a row rather than the number of cells.
package composite

import (
	"strings"

	"github.com/hnimtadd/gridview/view/color"
	"github.com/hnimtadd/gridview/view/geom"
	"github.com/hnimtadd/gridview/view/grid"
	"github.com/hnimtadd/gridview/view/style"
)

// Run is a maximal horizontal span of cells sharing foreground color and
// attributes, used as a single shaping/paint unit. Ephemeral, rebuilt every
// frame.
type Run struct {
	Row      int
	StartCol int
	Text     string
	FG       color.RGB
	Attrs    style.Attributes
}

// BackgroundRect covers exactly one cell whose resolved background differs
// from the default. Rectangles are not merged across cells; simplicity over
// coverage.
type BackgroundRect struct {
	Bounds geom.Rect
	Color  color.RGB
}

// Metrics are the per-cell pixel dimensions and the content origin the host
// measured for the current frame.
type Metrics struct {
	Origin     geom.Point
	CellWidth  float64
	LineHeight float64
}

// Defaults is the color context runs are resolved against.
type Defaults struct {
	Foreground color.RGB
	Background color.RGB
	Palette    *color.Palette
}

func (d Defaults) palette() *color.Palette {
	if d.Palette != nil {
		return d.Palette
	}
	return &color.DefaultPalette
}

// ComposeRow scans one grid row left to right and returns its background
// rectangles and merged text runs. Reverse video swaps the resolved
// foreground/background pair before either is used.
func ComposeRow(row grid.Row, m Metrics, d Defaults) ([]BackgroundRect, []Run) {
	var rects []BackgroundRect
	var runs []Run

	palette := d.palette()
	y := m.Origin.Y + float64(row.Index)*m.LineHeight

	var pending strings.Builder
	pendingStart := 0
	pendingFG := d.Foreground
	var pendingAttrs style.Attributes

	flush := func() {
		if pending.Len() == 0 {
			return
		}
		runs = append(runs, Run{
			Row:      row.Index,
			StartCol: pendingStart,
			Text:     pending.String(),
			FG:       pendingFG,
			Attrs:    pendingAttrs,
		})
		pending.Reset()
	}

	for col, cell := range row.Cells {
		fg := cell.Style.FG(palette, d.Foreground)
		bg := cell.Style.BG(palette, d.Background)
		if cell.Style.Attrs.Inverse {
			fg, bg = bg, fg
		}

		if bg != d.Background {
			rects = append(rects, BackgroundRect{
				Bounds: geom.NewRect(
					m.Origin.X+float64(col)*m.CellWidth, y,
					m.CellWidth, m.LineHeight,
				),
				Color: bg,
			})
		}

		if cell.IsBlank() {
			flush()
			continue
		}

		if pending.Len() > 0 && (fg != pendingFG || !cell.Style.Attrs.Equals(pendingAttrs)) {
			flush()
		}
		if pending.Len() == 0 {
			pendingStart = col
			pendingFG = fg
			pendingAttrs = cell.Style.Attrs
		}
		pending.WriteRune(cell.Rune)
	}
	flush()

	return rects, runs
}

// ComposeRows composes the rows in the half-open range [first, last),
// appending in row order. Rows outside the range cost nothing.
func ComposeRows(rows []grid.Row, first, last int, m Metrics, d Defaults) ([]BackgroundRect, []Run) {
	var rects []BackgroundRect
	var runs []Run
	for i := first; i < last && i < len(rows); i++ {
		if i < 0 {
			continue
		}
		r, rr := ComposeRow(rows[i], m, d)
		rects = append(rects, r...)
		runs = append(runs, rr...)
	}
	return rects, runs
}
