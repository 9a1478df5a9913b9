package editor

import "github.com/hnimtadd/gridview/view/textpos"

// Input-method integration. The host's IME layer speaks UTF-16 code unit
// offsets over the whole document text (lines joined by "\n"); this file is
// the only authority for translating those to logical positions and back.
// Misaligned offsets snap to the preceding boundary, they never fail.

// ByteOffset flattens a position to a byte offset into Text().
func (s *Session) ByteOffset(p textpos.Position) int {
	p = p.Clamp(s.lines)
	off := 0
	for i := 0; i < p.Line; i++ {
		off += len(s.lines[i]) + 1 // +1 for the newline
	}
	return off + p.Column
}

// PositionForByteOffset is the inverse of ByteOffset, clamped to the
// document end.
func (s *Session) PositionForByteOffset(off int) textpos.Position {
	if off < 0 {
		off = 0
	}
	for i, line := range s.lines {
		if off <= len(line) {
			return textpos.Position{Line: i, Column: off}
		}
		off -= len(line) + 1
	}
	last := len(s.lines) - 1
	return textpos.Position{Line: last, Column: len(s.lines[last])}
}

// UTF16Offset converts a position to a UTF-16 code unit offset into Text().
func (s *Session) UTF16Offset(p textpos.Position) int {
	return textpos.ByteToUTF16(s.Text(), s.ByteOffset(p))
}

// PositionForUTF16Offset converts a UTF-16 code unit offset to a position.
func (s *Session) PositionForUTF16Offset(units int) textpos.Position {
	return s.PositionForByteOffset(textpos.UTF16ToByte(s.Text(), units))
}

// SelectedUTF16Range reports the normalized selection in UTF-16 units. An
// empty selection reports the caret as a zero-length range.
func (s *Session) SelectedUTF16Range() (start, end int) {
	ns, ne, ok := s.Selection().Normalized()
	if !ok {
		u := s.UTF16Offset(s.cursor)
		return u, u
	}
	return s.UTF16Offset(ns), s.UTF16Offset(ne)
}

// SetSelectedUTF16Range replaces the selection with the given UTF-16 range.
func (s *Session) SetSelectedUTF16Range(start, end int) {
	anchor := s.PositionForUTF16Offset(start)
	s.anchor = &anchor
	s.cursor = s.PositionForUTF16Offset(end)
	if *s.anchor == s.cursor {
		s.anchor = nil
	}
}

// SetMarkedUTF16Range records the composition (pre-edit) range.
func (s *Session) SetMarkedUTF16Range(start, end int) {
	text := s.Text()
	s.marked = &[2]int{
		textpos.UTF16ToByte(text, start),
		textpos.UTF16ToByte(text, end),
	}
}

// MarkedUTF16Range reports the composition range, if one is active.
func (s *Session) MarkedUTF16Range() (start, end int, ok bool) {
	if s.marked == nil {
		return 0, 0, false
	}
	text := s.Text()
	return textpos.ByteToUTF16(text, s.marked[0]), textpos.ByteToUTF16(text, s.marked[1]), true
}

func (s *Session) ClearMarked() { s.marked = nil }

// ReplaceUTF16Range splices text over a UTF-16 range, used by the IME to
// commit or update composition text.
func (s *Session) ReplaceUTF16Range(start, end int, replacement string) {
	s.ReplaceRange(
		s.PositionForUTF16Offset(start),
		s.PositionForUTF16Offset(end),
		replacement,
	)
	s.marked = nil
}
