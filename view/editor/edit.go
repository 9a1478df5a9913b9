package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/hnimtadd/gridview/view/textpos"
	"github.com/hnimtadd/gridview/view/utils"
)

// Cursor movement steps whole code points; the column stays a byte offset.

// MoveLeft moves the cursor one code point left, crossing to the previous
// line end at column zero.
func (s *Session) MoveLeft(selecting bool) {
	s.updateAnchor(selecting)
	if s.cursor.Column > 0 {
		line := s.lines[s.cursor.Line]
		_, n := utf8.DecodeLastRuneInString(line[:s.cursor.Column])
		s.cursor.Column -= n
	} else if s.cursor.Line > 0 {
		s.cursor.Line--
		s.cursor.Column = len(s.lines[s.cursor.Line])
	}
	s.collapseIfPlain(selecting)
	s.EnsureCursorVisible()
}

// MoveRight moves the cursor one code point right, crossing to the next
// line start at the line end.
func (s *Session) MoveRight(selecting bool) {
	s.updateAnchor(selecting)
	line := s.lines[s.cursor.Line]
	if s.cursor.Column < len(line) {
		_, n := utf8.DecodeRuneInString(line[s.cursor.Column:])
		s.cursor.Column += n
	} else if s.cursor.Line < len(s.lines)-1 {
		s.cursor.Line++
		s.cursor.Column = 0
	}
	s.collapseIfPlain(selecting)
	s.EnsureCursorVisible()
}

// MoveVertical moves the cursor by whole logical lines, clamping the column
// and snapping it back onto a code point boundary.
func (s *Session) MoveVertical(deltaLines int, selecting bool) {
	s.updateAnchor(selecting)
	s.cursor.Line = utils.Clamp(s.cursor.Line+deltaLines, 0, len(s.lines)-1)
	line := s.lines[s.cursor.Line]
	s.cursor.Column = utils.Clamp(s.cursor.Column, 0, len(line))
	for s.cursor.Column > 0 && s.cursor.Column < len(line) && !utf8.RuneStart(line[s.cursor.Column]) {
		s.cursor.Column--
	}
	s.collapseIfPlain(selecting)
	s.EnsureCursorVisible()
}

// MoveToLineStart moves to column zero of the current line.
func (s *Session) MoveToLineStart(selecting bool) {
	s.updateAnchor(selecting)
	s.cursor.Column = 0
	s.collapseIfPlain(selecting)
	s.EnsureCursorVisible()
}

// MoveToLineEnd moves past the last byte of the current line.
func (s *Session) MoveToLineEnd(selecting bool) {
	s.updateAnchor(selecting)
	s.cursor.Column = len(s.lines[s.cursor.Line])
	s.collapseIfPlain(selecting)
	s.EnsureCursorVisible()
}

func (s *Session) updateAnchor(selecting bool) {
	if selecting && s.anchor == nil {
		anchor := s.cursor
		s.anchor = &anchor
	}
}

func (s *Session) collapseIfPlain(selecting bool) {
	if !selecting {
		s.anchor = nil
	}
}

// InsertText replaces the selection (or inserts at the cursor) with text.
// Embedded newlines split lines.
func (s *Session) InsertText(text string) {
	start, end := s.cursor, s.cursor
	if ns, ne, ok := s.Selection().Normalized(); ok {
		start, end = ns, ne
	}
	s.ReplaceRange(start, end, text)
}

// DeleteBackward removes the selection, or the code point before the cursor
// when the selection is empty.
func (s *Session) DeleteBackward() {
	if start, end, ok := s.Selection().Normalized(); ok {
		s.ReplaceRange(start, end, "")
		return
	}
	start := s.cursor
	if start.Column > 0 {
		line := s.lines[start.Line]
		_, n := utf8.DecodeLastRuneInString(line[:start.Column])
		start.Column -= n
	} else if start.Line > 0 {
		start.Line--
		start.Column = len(s.lines[start.Line])
	} else {
		return
	}
	s.ReplaceRange(start, s.cursor, "")
}

// ReplaceRange splices text over the ordered byte range [start, end]. The
// cursor lands after the inserted text and the selection collapses. Out of
// range positions clamp rather than fail; mutation policy beyond that (for
// example read-only documents) belongs to the editing layer above.
func (s *Session) ReplaceRange(start, end textpos.Position, text string) {
	start = start.Clamp(s.lines)
	end = end.Clamp(s.lines)
	if end.Before(start) {
		start, end = end, start
	}

	prefix := s.lines[start.Line][:start.Column]
	suffix := s.lines[end.Line][end.Column:]
	spliced := prefix + text + suffix

	replacement := strings.Split(spliced, "\n")
	updated := make([]string, 0, len(s.lines)-(end.Line-start.Line)+len(replacement)-1)
	updated = append(updated, s.lines[:start.Line]...)
	updated = append(updated, replacement...)
	updated = append(updated, s.lines[end.Line+1:]...)
	s.lines = updated

	inserted := strings.Split(text, "\n")
	cursor := textpos.Position{
		Line:   start.Line + len(inserted) - 1,
		Column: len(inserted[len(inserted)-1]),
	}
	if len(inserted) == 1 {
		cursor.Column += start.Column
	}
	s.cursor = cursor.Clamp(s.lines)
	s.anchor = nil
	s.EnsureCursorVisible()
}
