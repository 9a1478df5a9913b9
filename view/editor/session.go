// Package editor owns the per-session state that survives across render
// passes: the document lines, cursor, selection anchor, and scroll offset.
// Everything it derives (visual lines, rectangles) is rebuilt per pass and
// returned to the host, never cached.
package editor

import (
	"math"
	"strings"

	"github.com/hnimtadd/gridview/logger"
	"github.com/hnimtadd/gridview/view/geom"
	"github.com/hnimtadd/gridview/view/layout"
	"github.com/hnimtadd/gridview/view/textpos"
	"github.com/hnimtadd/gridview/view/utils"
	"github.com/hnimtadd/gridview/view/virtual"
	"github.com/hnimtadd/gridview/view/wrap"
	"golang.org/x/text/encoding/unicode"
)

type Options struct {
	Text   string
	Logger logger.Logger
}

// Metrics are the host's per-frame measurements of the content area.
type Metrics struct {
	Origin     geom.Point
	Width      float64
	Height     float64
	LineHeight float64
	CharWidth  float64
}

// Frame is the output of one layout pass: the visible visual lines and the
// cursor/selection geometry to paint. Lines[0] is visual line First.
type Frame struct {
	Lines     []wrap.VisualLine
	First     int
	Total     int
	Cursor    *geom.Rect
	Selection []geom.Rect
	Info      layout.Info
}

// Session is single-threaded by contract: the host dispatches input events
// and layout passes one at a time on its render thread.
type Session struct {
	lines  []string
	cursor textpos.Position
	anchor *textpos.Position

	scroll        float64
	visibleHeight float64

	// Layout of the last render pass, consumed by the mouse, keyboard
	// and IME handlers. Nil until the first pass has run; handlers then
	// have nothing to act on, which is not an error.
	last *layout.Info

	marked *[2]int // composition range in byte offsets

	log logger.Logger
}

func NewSession(opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = logger.DefaultLogger
	}
	s := &Session{log: log}
	s.SetText(opts.Text)
	return s
}

// SetText replaces the document. The text is run through a UTF-8 decoder so
// invalid sequences become replacement characters before any byte-offset
// math happens on them.
func (s *Session) SetText(text string) {
	dec := unicode.UTF8.NewDecoder()
	if clean, err := dec.String(text); err == nil {
		text = clean
	} else {
		s.log.Warn("editor: keeping raw text, utf-8 scrub failed", "err", err)
	}
	s.lines = strings.Split(text, "\n")
	s.cursor = s.cursor.Clamp(s.lines)
	s.anchor = nil
	s.marked = nil
}

func (s *Session) Text() string { return strings.Join(s.lines, "\n") }

func (s *Session) Lines() []string { return s.lines }

func (s *Session) Cursor() textpos.Position { return s.cursor }

func (s *Session) Selection() textpos.Selection {
	return textpos.Selection{Anchor: s.anchor, Cursor: s.cursor}
}

func (s *Session) ScrollOffset() float64 { return s.scroll }

// LastLayout returns the layout of the most recent pass, if any.
func (s *Session) LastLayout() (layout.Info, bool) {
	if s.last == nil {
		return layout.Info{}, false
	}
	return *s.last, true
}

// Layout runs one full pass: wrap, virtualize, and build geometry for the
// visible window. The returned frame is ephemeral; the session keeps only
// the layout info needed by the event handlers.
func (s *Session) Layout(m Metrics) Frame {
	wrapWidth := wrap.MinWidth
	if m.CharWidth > 0 {
		wrapWidth = utils.Max(int(m.Width/m.CharWidth), wrap.MinWidth)
	}
	visual := wrap.Document(s.lines, wrapWidth)

	// Very small bounds show up during initial host layout; fall back to a
	// few lines so the first pass still produces something sensible.
	effHeight := math.Max(m.Height, m.LineHeight*5)
	s.scroll = virtual.ClampScroll(s.scroll,
		virtual.ContentHeight(len(visual), m.LineHeight), effHeight)
	first, last := virtual.Window(s.scroll, m.LineHeight, effHeight, len(visual))

	info := layout.Info{
		OriginX:      m.Origin.X,
		OriginY:      m.Origin.Y,
		LineHeight:   m.LineHeight,
		CharWidth:    m.CharWidth,
		FirstVisible: first,
		WrapWidth:    wrapWidth,
	}

	frame := Frame{
		Lines: visual[first:last],
		First: first,
		Total: len(visual),
		Info:  info,
	}
	if start, end, ok := s.Selection().Normalized(); ok {
		frame.Selection = layout.SelectionRects(start, end, info, visual, first, last)
	}
	if rect, ok := layout.CursorRect(s.cursor, info, visual, first, last); ok {
		frame.Cursor = &rect
	}

	s.last = &info
	s.visibleHeight = effHeight
	return frame
}

// ScrollBy applies a wheel delta, clamped to the content bounds.
func (s *Session) ScrollBy(delta float64) {
	info := s.last
	if info == nil {
		return
	}
	visual := wrap.Document(s.lines, info.WrapWidth)
	s.scroll = virtual.ClampScroll(s.scroll+delta,
		virtual.ContentHeight(len(visual), info.LineHeight), s.visibleHeight)
}

// EnsureCursorVisible scrolls the minimal amount that puts the cursor's
// visual row fully inside the viewport.
func (s *Session) EnsureCursorVisible() {
	info := s.last
	if info == nil {
		return
	}
	visual := wrap.Document(s.lines, info.WrapWidth)
	row, ok := wrap.RowForPosition(visual, s.cursor.Line, s.cursor.Column)
	if !ok {
		return
	}
	rowTop := float64(row) * info.LineHeight
	s.scroll = virtual.EnsureVisible(s.scroll, rowTop, info.LineHeight, s.visibleHeight)
	s.scroll = virtual.ClampScroll(s.scroll,
		virtual.ContentHeight(len(visual), info.LineHeight), s.visibleHeight)
}

// MouseDown places the cursor under the point. A plain press collapses the
// selection to an anchor at the new position so a following drag extends
// from it; extend keeps the existing anchor (shift-click).
func (s *Session) MouseDown(pt geom.Point, extend bool) {
	pos, ok := s.positionForPoint(pt)
	if !ok {
		return
	}
	if extend {
		if s.anchor == nil {
			anchor := s.cursor
			s.anchor = &anchor
		}
	} else {
		anchor := pos
		s.anchor = &anchor
	}
	s.cursor = pos
}

// MouseDrag extends the selection from the press anchor to the point.
func (s *Session) MouseDrag(pt geom.Point) {
	pos, ok := s.positionForPoint(pt)
	if !ok {
		return
	}
	if s.anchor == nil {
		anchor := s.cursor
		s.anchor = &anchor
	}
	s.cursor = pos
	s.EnsureCursorVisible()
}

func (s *Session) positionForPoint(pt geom.Point) (textpos.Position, bool) {
	info := s.last
	if info == nil {
		return textpos.Position{}, false
	}
	visual := wrap.Document(s.lines, info.WrapWidth)
	return layout.PositionForPoint(pt, *info, visual)
}
