// Package textpos holds logical text positions, selections, and the
// UTF-8/UTF-16 offset translation used for input-method integration.
package textpos

// Position addresses a point in the logical document. Line is the logical
// line index and Column a byte offset within that line, both zero-based.
type Position struct {
	Line   int
	Column int
}

func (p Position) Before(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Column < o.Column
}

// Clamp snaps the position into the document: line into [0, len(lines)-1]
// and column into [0, len(line)]. An empty document clamps to the origin.
func (p Position) Clamp(lines []string) Position {
	if len(lines) == 0 {
		return Position{}
	}
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(lines) {
		p.Line = len(lines) - 1
	}
	if p.Column < 0 {
		p.Column = 0
	}
	if max := len(lines[p.Line]); p.Column > max {
		p.Column = max
	}
	return p
}

// Selection is an anchor/cursor pair. The anchor is where the selection
// started, not necessarily the smaller position; Normalized orders them.
type Selection struct {
	Anchor *Position
	Cursor Position
}

func (s Selection) IsEmpty() bool {
	return s.Anchor == nil || *s.Anchor == s.Cursor
}

// Normalized returns the selection as an ordered (start, end) pair. ok is
// false for an empty selection.
func (s Selection) Normalized() (start, end Position, ok bool) {
	if s.IsEmpty() {
		return Position{}, Position{}, false
	}
	if s.Anchor.Before(s.Cursor) {
		return *s.Anchor, s.Cursor, true
	}
	return s.Cursor, *s.Anchor, true
}
