// Package termview turns per-frame grid snapshots from a terminal emulation
// state machine into paint geometry, and maps pointer positions back to
// grid cells for mouse reporting.
package termview

import (
	"math"

	"github.com/hnimtadd/gridview/logger"
	"github.com/hnimtadd/gridview/view/composite"
	"github.com/hnimtadd/gridview/view/coordinate"
	"github.com/hnimtadd/gridview/view/geom"
	"github.com/hnimtadd/gridview/view/grid"
	"github.com/hnimtadd/gridview/view/size"
	"github.com/hnimtadd/gridview/view/utils"
	"github.com/hnimtadd/gridview/view/virtual"
)

type Options struct {
	Defaults composite.Defaults
	Logger   logger.Logger
}

// View holds the small cross-frame state of one terminal pane: focus, the
// last measured metrics, and the last grid dimensions for hit testing.
type View struct {
	focused       bool
	metrics       composite.Metrics
	visibleHeight float64
	defaults      composite.Defaults

	lastRows int
	lastCols int

	log logger.Logger
}

// Frame is the paint geometry of one snapshot. Rows outside [First, Last)
// were skipped entirely.
type Frame struct {
	Backgrounds []composite.BackgroundRect
	Runs        []composite.Run
	Cursor      *composite.CursorGeometry
	First, Last int
}

func New(opts Options) *View {
	log := opts.Logger
	if log == nil {
		log = logger.DefaultLogger
	}
	return &View{defaults: opts.Defaults, focused: true, log: log}
}

func (v *View) SetFocused(focused bool) { v.focused = focused }

func (v *View) Focused() bool { return v.focused }

// SetMetrics records the host's measured cell metrics and the pixel height
// of the visible content area.
func (v *View) SetMetrics(m composite.Metrics, visibleHeight float64) {
	v.metrics = m
	v.visibleHeight = visibleHeight
}

// Frame composes the snapshot into backgrounds, text runs, and the cursor
// overlay. Only rows within the visible window are processed.
func (v *View) Frame(snap grid.Snapshot) Frame {
	v.lastRows = len(snap.Rows)
	v.lastCols = 0
	for _, row := range snap.Rows {
		if len(row.Cells) > v.lastCols {
			v.lastCols = len(row.Cells)
		}
	}

	first, last := virtual.Window(0, v.metrics.LineHeight, v.visibleHeight, len(snap.Rows))
	rects, runs := composite.ComposeRows(snap.Rows, first, last, v.metrics, v.defaults)
	cursor := composite.ComposeCursor(snap, v.focused, v.metrics)

	return Frame{
		Backgrounds: rects,
		Runs:        runs,
		Cursor:      cursor,
		First:       first,
		Last:        last,
	}
}

// CellForPoint maps a pixel point to the grid cell under it, clamped to the
// dimensions of the last composed snapshot. X is the column and Y the row.
// ok is false before any frame has been composed.
func (v *View) CellForPoint(pt geom.Point) (cell coordinate.Point[size.CellCountInt], ok bool) {
	if v.lastRows == 0 || v.lastCols == 0 ||
		v.metrics.LineHeight <= 0 || v.metrics.CellWidth <= 0 {
		return coordinate.Point[size.CellCountInt]{}, false
	}
	row := int(math.Floor((pt.Y - v.metrics.Origin.Y) / v.metrics.LineHeight))
	col := int(math.Floor((pt.X - v.metrics.Origin.X) / v.metrics.CellWidth))
	row = utils.Clamp(row, 0, v.lastRows-1)
	col = utils.Clamp(col, 0, v.lastCols-1)
	return coordinate.NewPoint(size.CellCountInt(col), size.CellCountInt(row)), true
}
